package labmap

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMaze is returned when a Map is constructed without a maze.
	ErrNilMaze = errors.New("labmap: maze reference is nil")

	// ErrZeroSize is returned when a Map is constructed with a zero extent.
	ErrZeroSize = errors.New("labmap: map size must be at least 1x1")

	// ErrNoDirection is returned when a wall query or update gives no
	// direction: "no direction" cannot select one of the four wall flags.
	ErrNoDirection = errors.New("labmap: wall operations require a direction")

	// ErrOutOfRange is returned when a coordinate lies outside the grid
	// valid for the operation, in either coordinate space.
	ErrOutOfRange = errors.New("labmap: coordinate out of range")

	// ErrKindMismatch is the capability-mismatch error: a room-only
	// operation was invoked on a border cell or vice versa. It signals a
	// caller bug, not a runtime condition; check IsRoom() before
	// dispatching kind-specific operations.
	ErrKindMismatch = errors.New("labmap: operation does not match cell kind (check IsRoom first)")

	// ErrNotARoom specializes ErrKindMismatch: the coordinate addresses a
	// border where a room was required.
	ErrNotARoom = fmt.Errorf("coordinate is a border, not a room: %w", ErrKindMismatch)

	// ErrNotABorder specializes ErrKindMismatch: the coordinate addresses
	// a room where a border was required.
	ErrNotABorder = fmt.Errorf("coordinate is a room, not a border: %w", ErrKindMismatch)
)
