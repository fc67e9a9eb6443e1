package placement

import "errors"

// ErrAlreadyTaken is returned by PlaceItem when the target location already
// holds an item.
var ErrAlreadyTaken = errors.New("placement: location already taken")

// ErrAlreadyPlaced is returned by PlaceItem when the item is already
// assigned to some location.
var ErrAlreadyPlaced = errors.New("placement: item already placed")

// ErrConflict is returned by Union when the two placements disagree on the
// assignment of a shared key.
var ErrConflict = errors.New("placement: conflicting assignment")

// ErrUnknownLocation reports a location that holds no item. ReplaceItem
// does not return it: it installs the item whether or not the location
// held one.
var ErrUnknownLocation = errors.New("placement: location holds no item")

// ErrUnknownEntrance reports an entrance that holds no exit pairing.
// ReplaceExit does not return it: it installs the pairing whether or not
// the entrance held one.
var ErrUnknownEntrance = errors.New("placement: entrance holds no exit")
