// Package labmap renders a textual map of a labyrinth and keeps it
// synchronized with the labyrinth's state.
//
// The map lives on a doubled-plus-one lattice: for a labyrinth of X by Y
// rooms the map grid is (2X+1) by (2Y+1) cells, where cells with two odd
// coordinates are rooms and every other cell is part of the border
// structure between and around rooms. A cell is always exactly one of the
// two kinds; the kind is determined purely by coordinate parity.
package labmap

import "github.com/carlsonchan/labyrinth/internal/world"

// Cell is one slot of the map grid, either a room or a border. Every
// operation belongs to one kind; invoking a room-only operation on a
// border (or the reverse) fails with ErrKindMismatch and leaves the cell
// untouched. IsRoom never fails and is the way to dispatch safely.
type Cell interface {
	// IsRoom reports whether this cell is a room. Available on every
	// cell without failing.
	IsRoom() bool

	// Border-only operations.
	IsWall(d world.Direction) (bool, error)
	SetWall(d world.Direction, exists bool) error
	IsExit() (bool, error)
	SetExit(b bool) error

	// Room-only operations.
	Inhabitant() (world.Inhabitant, error)
	SetInhabitant(inh world.Inhabitant) error
	Item() (world.Item, error)
	SetItem(itm world.Item) error
}

// BorderCell is the boundary between two rooms, the corner between four
// rooms, or a cell of the outermost wall. Wall flags default to true so
// an untouched grid reads as a fully walled maze; notably the outer wall
// never needs explicit initialization.
type BorderCell struct {
	walls [4]bool // indexed by Direction - 1, in Cardinal order
	exit  bool
}

// NewBorderCell returns a border with all four walls present and no exit.
func NewBorderCell() *BorderCell {
	return &BorderCell{walls: [4]bool{true, true, true, true}}
}

// IsRoom reports false: a border is never a room.
func (b *BorderCell) IsRoom() bool {
	return false
}

// IsWall reports whether the border has a wall on side d.
// Fails with ErrNoDirection if d is None.
func (b *BorderCell) IsWall(d world.Direction) (bool, error) {
	if d == world.None {
		return false, ErrNoDirection
	}
	return b.walls[d-1], nil
}

// SetWall sets the wall flag on side d. Setting a flag to its current
// value is a valid no-op.
// Fails with ErrNoDirection if d is None.
func (b *BorderCell) SetWall(d world.Direction, exists bool) error {
	if d == world.None {
		return ErrNoDirection
	}
	b.walls[d-1] = exists
	return nil
}

// IsExit reports whether the labyrinth's exit is at this border.
func (b *BorderCell) IsExit() (bool, error) {
	return b.exit, nil
}

// SetExit records whether the labyrinth's exit is at this border.
func (b *BorderCell) SetExit(v bool) error {
	b.exit = v
	return nil
}

// Inhabitant fails: borders have no inhabitant.
func (b *BorderCell) Inhabitant() (world.Inhabitant, error) {
	return world.NoInhabitant, ErrNotARoom
}

// SetInhabitant fails: borders have no inhabitant.
func (b *BorderCell) SetInhabitant(world.Inhabitant) error {
	return ErrNotARoom
}

// Item fails: borders hold no item.
func (b *BorderCell) Item() (world.Item, error) {
	return world.NoItem, ErrNotARoom
}

// SetItem fails: borders hold no item.
func (b *BorderCell) SetItem(world.Item) error {
	return ErrNotARoom
}

// RoomCell mirrors the contents of one labyrinth room: its inhabitant
// and its item, both defaulting to none.
type RoomCell struct {
	inhabitant world.Inhabitant
	item       world.Item
}

// NewRoomCell returns an empty room cell.
func NewRoomCell() *RoomCell {
	return &RoomCell{}
}

// IsRoom reports true.
func (r *RoomCell) IsRoom() bool {
	return true
}

// IsWall fails: rooms have no wall flags.
func (r *RoomCell) IsWall(world.Direction) (bool, error) {
	return false, ErrNotABorder
}

// SetWall fails: rooms have no wall flags.
func (r *RoomCell) SetWall(world.Direction, bool) error {
	return ErrNotABorder
}

// IsExit fails: the exit sits on a border, never in a room.
func (r *RoomCell) IsExit() (bool, error) {
	return false, ErrNotABorder
}

// SetExit fails: the exit sits on a border, never in a room.
func (r *RoomCell) SetExit(bool) error {
	return ErrNotABorder
}

// Inhabitant returns the room's inhabitant.
func (r *RoomCell) Inhabitant() (world.Inhabitant, error) {
	return r.inhabitant, nil
}

// SetInhabitant sets the room's inhabitant. Setting the current value,
// including NoInhabitant, is a valid no-op.
func (r *RoomCell) SetInhabitant(inh world.Inhabitant) error {
	r.inhabitant = inh
	return nil
}

// Item returns the room's item.
func (r *RoomCell) Item() (world.Item, error) {
	return r.item, nil
}

// SetItem sets the room's item. Setting the current value, including
// NoItem, is a valid no-op.
func (r *RoomCell) SetItem(itm world.Item) error {
	r.item = itm
	return nil
}
