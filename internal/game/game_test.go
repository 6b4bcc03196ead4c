package game

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/carlsonchan/labyrinth/internal/entity"
	"github.com/carlsonchan/labyrinth/internal/labmap"
	"github.com/carlsonchan/labyrinth/internal/world"
)

// newCorridorGame builds a 3x1 labyrinth with all interior walls open
// and the player in the west room. No screen is attached; tests drive
// playerMove directly.
func newCorridorGame(t *testing.T) *Game {
	t.Helper()

	l, err := world.NewLabyrinth(3, 1)
	if err != nil {
		t.Fatalf("NewLabyrinth failed: %v", err)
	}
	l.SetWall(world.C(0, 0), world.East, false)
	l.SetWall(world.C(1, 0), world.East, false)

	m, err := labmap.New(l, 3, 1)
	if err != nil {
		t.Fatalf("labmap.New failed: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Game{
		log:    logger.WithField("test", t.Name()),
		rng:    rand.New(rand.NewSource(1)),
		lab:    l,
		labMap: m,
		player: entity.NewPlayer(world.C(0, 0)),
		state:  StatePlaying,
	}
}

func TestWallBlocksMovement(t *testing.T) {
	g := newCorridorGame(t)
	g.lab.SetWall(world.C(0, 0), world.East, true)

	g.playerMove(context.Background(), world.East)
	if g.player.Pos != world.C(0, 0) {
		t.Errorf("player moved through a wall to %v", g.player.Pos)
	}

	g.playerMove(context.Background(), world.North)
	if g.player.Pos != world.C(0, 0) {
		t.Errorf("player moved through the outer wall to %v", g.player.Pos)
	}
}

func TestItemPickup(t *testing.T) {
	g := newCorridorGame(t)
	g.lab.SetItem(world.C(1, 0), world.Bullet)

	g.playerMove(context.Background(), world.East)

	if g.player.Bullets != 1 {
		t.Errorf("bullets = %d after pickup, want 1", g.player.Bullets)
	}
	if g.lab.ItemAt(world.C(1, 0)) != world.NoItem {
		t.Error("bullet still lies in the room after pickup")
	}
}

func TestFightMinotaurWithBullet(t *testing.T) {
	g := newCorridorGame(t)
	g.lab.SetInhabitant(world.C(1, 0), world.Minotaur)
	g.minotaurRoom = world.C(1, 0)
	g.player.Bullets = 1

	g.playerMove(context.Background(), world.East)

	if g.state != StatePlaying {
		t.Fatalf("state = %v, want playing", g.state)
	}
	if g.lab.InhabitantAt(world.C(1, 0)) != world.MinotaurDead {
		t.Error("minotaur should be dead after the bullet fired")
	}
	if g.player.Bullets != 0 {
		t.Errorf("bullets = %d after firing, want 0", g.player.Bullets)
	}
	if !g.player.Alive {
		t.Error("player should survive an armed encounter")
	}
}

func TestFightMinotaurUnarmed(t *testing.T) {
	g := newCorridorGame(t)
	g.lab.SetInhabitant(world.C(1, 0), world.Minotaur)
	g.minotaurRoom = world.C(1, 0)

	g.playerMove(context.Background(), world.East)

	if g.state != StateLost {
		t.Fatalf("state = %v, want lost", g.state)
	}
	if g.player.Alive {
		t.Error("player should be dead")
	}
	if g.lab.InhabitantAt(world.C(1, 0)) != world.Minotaur {
		t.Error("minotaur should still be alive")
	}
}

func TestMirrorDistractsMinotaur(t *testing.T) {
	l, err := world.NewLabyrinth(2, 2)
	if err != nil {
		t.Fatalf("NewLabyrinth failed: %v", err)
	}
	l.SetWall(world.C(0, 0), world.East, false)
	l.SetWall(world.C(1, 0), world.South, false)
	l.SetWall(world.C(1, 1), world.West, false)
	l.SetInhabitant(world.C(1, 0), world.Mirror)
	l.SetInhabitant(world.C(1, 1), world.Minotaur)

	m, err := labmap.New(l, 2, 2)
	if err != nil {
		t.Fatalf("labmap.New failed: %v", err)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	g := &Game{
		log:          logger.WithField("test", t.Name()),
		rng:          rand.New(rand.NewSource(1)),
		lab:          l,
		labMap:       m,
		player:       entity.NewPlayer(world.C(0, 0)),
		minotaurRoom: world.C(1, 1),
		state:        StatePlaying,
	}

	// Entering the mirror room cracks it and costs the minotaur its turn.
	g.playerMove(context.Background(), world.East)
	if g.lab.InhabitantAt(world.C(1, 0)) != world.MirrorCracked {
		t.Error("mirror should crack when entered")
	}
	if g.minotaurRoom != world.C(1, 1) {
		t.Errorf("distracted minotaur moved to %v", g.minotaurRoom)
	}

	// Next turn the minotaur prowls again. Its only open, unoccupied
	// neighbor is (0,1).
	g.playerMove(context.Background(), world.West)
	if g.minotaurRoom != world.C(0, 1) {
		t.Errorf("minotaur room = %v after the distraction wore off, want (0,1)", g.minotaurRoom)
	}
}

func TestEscapeRequiresTreasure(t *testing.T) {
	g := newCorridorGame(t)
	g.lab.SetExit(world.C(0, 0), world.West)

	g.playerMove(context.Background(), world.West)
	if g.state != StatePlaying {
		t.Fatalf("state = %v, player left without the treasure", g.state)
	}
	if g.player.Pos != world.C(0, 0) {
		t.Errorf("player position = %v, want unchanged", g.player.Pos)
	}

	g.player.Treasure = true
	g.playerMove(context.Background(), world.West)
	if g.state != StateWon {
		t.Errorf("state = %v, want won", g.state)
	}
}

func TestNewGamePlacement(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	g, err := New(context.Background(), Config{Seed: 42, Scenario: "closet"}, logger)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var minotaurs, mirrors, treasures, bullets int
	occupied := map[world.Coordinate]bool{g.player.Pos: true}
	for y := 0; y < g.lab.YSize(); y++ {
		for x := 0; x < g.lab.XSize(); x++ {
			c := world.C(x, y)
			switch g.lab.InhabitantAt(c) {
			case world.Minotaur:
				minotaurs++
				if occupied[c] {
					t.Errorf("minotaur shares room %v", c)
				}
				occupied[c] = true
			case world.Mirror:
				mirrors++
				if occupied[c] {
					t.Errorf("mirror shares room %v", c)
				}
				occupied[c] = true
			}
			switch g.lab.ItemAt(c) {
			case world.Treasure:
				treasures++
			case world.Bullet:
				bullets++
			}
		}
	}

	if minotaurs != 1 || mirrors != 1 || treasures != 1 {
		t.Errorf("placement = %d minotaurs, %d mirrors, %d treasures; want one of each",
			minotaurs, mirrors, treasures)
	}
	if bullets != 1 {
		t.Errorf("bullets placed = %d, want 1 for the closet scenario", bullets)
	}
	if g.State() != StatePlaying {
		t.Errorf("fresh game state = %v, want playing", g.State())
	}

	// The generated exit must be usable from inside.
	room, side := g.lab.Exit()
	if side == world.None {
		t.Fatal("no exit generated")
	}
	if g.lab.WallExists(room, side) {
		t.Error("exit wall still closed")
	}
}
