// Package pfile implements the placement-file artifact spec.md §6
// describes: the JSON document handed to the game-patcher external
// collaborator, its hash-string derivation, and an optional SVG debug
// dump of the finished reachability graph and item placement.
package pfile
