// Package options implements the option/banlist compiler: a YAML-decoded
// option surface compiled into the extra requirement overrides, ban set,
// starting-inventory set, vanilla pre-placements, and item-placement-limit
// restrictions that pkg/rando feeds into pkg/logic and pkg/placement.
// Parsing the permalink/CLI/GUI option surface itself is out of scope;
// only the already-decoded Options struct is.
package options
