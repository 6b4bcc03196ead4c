// Package entity provides the entities moving through the labyrinth.
package entity

import "github.com/carlsonchan/labyrinth/internal/world"

// Player is the adventurer exploring the labyrinth. The map never renders
// the player; only the interactive view overlays it.
type Player struct {
	Pos      world.Coordinate
	Bullets  int
	Treasure bool
	Alive    bool
}

// NewPlayer creates a living, empty-handed player at the given room.
func NewPlayer(pos world.Coordinate) *Player {
	return &Player{Pos: pos, Alive: true}
}

// MoveTo places the player in the given room.
func (p *Player) MoveTo(pos world.Coordinate) {
	p.Pos = pos
}

// PickUp adds the item to the player's inventory. Picking up NoItem
// changes nothing.
func (p *Player) PickUp(itm world.Item) {
	switch itm {
	case world.Bullet:
		p.Bullets++
	case world.Treasure:
		p.Treasure = true
	}
}

// FireBullet consumes one bullet. Returns false if none is held.
func (p *Player) FireBullet() bool {
	if p.Bullets == 0 {
		return false
	}
	p.Bullets--
	return true
}

// Kill marks the player dead.
func (p *Player) Kill() {
	p.Alive = false
}
