// Package placement implements the Placement store (spec.md C5, §4.5): the
// bidirectional location/item and exit/entrance maps the logic façade
// mutates during randomization, plus the starting-item set, the unplaced-item
// set, and the per-item area-prefix restriction used by item_placement_limit.
package placement
