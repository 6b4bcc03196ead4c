package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabyrinthValidation(t *testing.T) {
	for _, tc := range []struct{ x, y int }{
		{0, 5}, {5, 0}, {-1, 3}, {21, 5}, {5, 21},
	} {
		_, err := NewLabyrinth(tc.x, tc.y)
		assert.ErrorIs(t, err, ErrInvalidSize, "dimensions %dx%d", tc.x, tc.y)
	}

	l, err := NewLabyrinth(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.XSize())
	assert.Equal(t, 1, l.YSize())
}

func TestNewLabyrinthFullyWalled(t *testing.T) {
	l, err := NewLabyrinth(3, 2)
	require.NoError(t, err)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			for _, d := range Cardinal {
				assert.True(t, l.WallExists(C(x, y), d), "room (%d,%d) side %v", x, y, d)
			}
			assert.Equal(t, NoInhabitant, l.InhabitantAt(C(x, y)))
			assert.Equal(t, NoItem, l.ItemAt(C(x, y)))
		}
	}
}

func TestSetWallSymmetric(t *testing.T) {
	l, err := NewLabyrinth(2, 2)
	require.NoError(t, err)

	l.SetWall(C(0, 0), East, false)
	assert.False(t, l.WallExists(C(0, 0), East))
	assert.False(t, l.WallExists(C(1, 0), West), "adjacent room's flag must follow")

	l.SetWall(C(1, 0), West, true)
	assert.True(t, l.WallExists(C(0, 0), East), "restoring from the other side must follow too")
}

func TestAccessorsAreTotal(t *testing.T) {
	l, err := NewLabyrinth(2, 2)
	require.NoError(t, err)

	// The outside reads as solid wall and empty content.
	assert.True(t, l.WallExists(C(-1, 0), East))
	assert.True(t, l.WallExists(C(0, 5), North))
	assert.True(t, l.WallExists(C(0, 0), None))
	assert.Equal(t, NoInhabitant, l.InhabitantAt(C(9, 9)))
	assert.Equal(t, NoItem, l.ItemAt(C(-3, 1)))

	// Writes outside the grid are dropped, not panics.
	l.SetWall(C(5, 5), North, false)
	l.SetInhabitant(C(5, 5), Minotaur)
	l.SetItem(C(-1, -1), Treasure)
}

func TestSetExitReplacesPrevious(t *testing.T) {
	l, err := NewLabyrinth(3, 3)
	require.NoError(t, err)

	l.SetExit(C(0, 0), North)
	assert.False(t, l.WallExists(C(0, 0), North))

	l.SetExit(C(2, 2), East)
	room, side := l.Exit()
	assert.Equal(t, C(2, 2), room)
	assert.Equal(t, East, side)
	assert.False(t, l.WallExists(C(2, 2), East))
	assert.True(t, l.WallExists(C(0, 0), North), "old exit wall must close again")
}

func TestCanMove(t *testing.T) {
	l, err := NewLabyrinth(2, 1)
	require.NoError(t, err)

	assert.False(t, l.CanMove(C(0, 0), East), "wall still present")

	l.SetWall(C(0, 0), East, false)
	assert.True(t, l.CanMove(C(0, 0), East))
	assert.True(t, l.CanMove(C(1, 0), West))

	// An open exit wall leads outside, which is not a room-to-room move.
	l.SetExit(C(0, 0), West)
	assert.False(t, l.CanMove(C(0, 0), West))
}

func TestDirectionHelpers(t *testing.T) {
	for _, d := range Cardinal {
		assert.Equal(t, d, d.Opposite().Opposite())

		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
	assert.Equal(t, None, None.Opposite())

	assert.Equal(t, C(3, 2), C(3, 3).Step(North), "north decreases y")
	assert.Equal(t, C(4, 3), C(3, 3).Step(East))
	assert.Equal(t, C(3, 3), C(3, 3).Step(None))
}
