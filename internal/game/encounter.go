package game

import "github.com/carlsonchan/labyrinth/internal/world"

// resolveRoom handles whatever the player just walked into: first the
// inhabitant, then, if the player still stands, the item on the floor.
func (g *Game) resolveRoom() {
	rc := g.player.Pos

	switch g.lab.InhabitantAt(rc) {
	case world.Minotaur:
		g.fightMinotaur(rc)
	case world.Mirror:
		g.lab.SetInhabitant(rc, world.MirrorCracked)
		g.minotaurDistracted = true
		g.message = "The mirror cracks under your touch. Somewhere, the minotaur turns toward the sound."
	}
	if g.state != StatePlaying {
		return
	}

	switch itm := g.lab.ItemAt(rc); itm {
	case world.Bullet:
		g.player.PickUp(itm)
		g.lab.SetItem(rc, world.NoItem)
		g.message = "You pocket a bullet."
	case world.Treasure:
		g.player.PickUp(itm)
		g.lab.SetItem(rc, world.NoItem)
		g.message = "The treasure is yours. Now find the exit."
	}
}

// fightMinotaur resolves sharing a room with a live minotaur: a held
// bullet fires and kills it, otherwise the player dies.
func (g *Game) fightMinotaur(rc world.Coordinate) {
	if g.player.FireBullet() {
		g.lab.SetInhabitant(rc, world.MinotaurDead)
		g.message = "Your bullet fells the minotaur."
		g.log.WithField("room", rc.String()).Info("minotaur shot")
		return
	}
	g.player.Kill()
	g.state = StateLost
	g.message = "Horns out of the dark. The minotaur gores you."
	g.log.WithField("room", rc.String()).Info("player killed")
}

// minotaurTurn moves the minotaur one random legal step after the
// player's move. A cracked mirror buys the player one quiet turn.
func (g *Game) minotaurTurn() {
	if g.lab.InhabitantAt(g.minotaurRoom) != world.Minotaur {
		return // dead, or never placed
	}
	if g.minotaurDistracted {
		g.minotaurDistracted = false
		return
	}

	candidates := make([]world.Coordinate, 0, 4)
	for _, d := range world.Cardinal {
		target := g.minotaurRoom.Step(d)
		if g.lab.CanMove(g.minotaurRoom, d) && g.lab.InhabitantAt(target) == world.NoInhabitant {
			candidates = append(candidates, target)
		}
	}
	if len(candidates) == 0 {
		return
	}

	target := candidates[g.rng.Intn(len(candidates))]
	g.lab.SetInhabitant(g.minotaurRoom, world.NoInhabitant)
	g.lab.SetInhabitant(target, world.Minotaur)
	g.minotaurRoom = target

	if target == g.player.Pos {
		g.fightMinotaur(target)
	}
}
