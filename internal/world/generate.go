package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/carlsonchan/labyrinth/internal/telemetry"
)

// Generate carves a uniform spanning-tree maze over the room grid using
// Wilson's algorithm (loop-erased random walks), then opens one random
// outer wall and records it as the exit. The result is a perfect maze:
// every pair of rooms is connected by exactly one path.
// Deterministic for a fixed rng seed.
func (l *Labyrinth) Generate(ctx context.Context, rng *rand.Rand) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "labyrinth.generate")
	defer span.End()

	startTime := time.Now()

	visited := make(map[Coordinate]struct{}, l.xSize*l.ySize)
	start := l.randomRoom(rng)
	visited[start] = struct{}{}

	for len(visited) < l.xSize*l.ySize {
		for from, d := range l.randomWalk(rng, visited) {
			l.SetWall(from, d, false)
			visited[from] = struct{}{}
		}
	}

	l.openExit(rng)

	span.SetAttributes(
		attribute.Int("labyrinth.x_size", l.xSize),
		attribute.Int("labyrinth.y_size", l.ySize),
		attribute.String("labyrinth.exit_room", l.exitRoom.String()),
		attribute.String("labyrinth.exit_side", l.exitSide.String()),
		attribute.Int64("labyrinth.generation_us", time.Since(startTime).Microseconds()),
	)
}

// randomRoom picks a uniformly random room coordinate.
func (l *Labyrinth) randomRoom(rng *rand.Rand) Coordinate {
	return Coordinate{X: rng.Intn(l.xSize), Y: rng.Intn(l.ySize)}
}

// randomUnvisitedRoom picks a random room not yet part of the maze tree.
func (l *Labyrinth) randomUnvisitedRoom(rng *rand.Rand, visited map[Coordinate]struct{}) Coordinate {
	for {
		c := l.randomRoom(rng)
		if _, ok := visited[c]; !ok {
			return c
		}
	}
}

// neighborSides returns the directions from c that stay in bounds,
// in Cardinal order so rng consumption is reproducible.
func (l *Labyrinth) neighborSides(c Coordinate) []Direction {
	sides := make([]Direction, 0, 4)
	for _, d := range Cardinal {
		if l.InBounds(c.Step(d)) {
			sides = append(sides, d)
		}
	}
	return sides
}

// randomWalk walks randomly from an unvisited room until it hits the
// visited set. Overwriting the chosen direction on revisits erases loops,
// leaving one simple path to carve.
func (l *Labyrinth) randomWalk(rng *rand.Rand, visited map[Coordinate]struct{}) map[Coordinate]Direction {
	path := make(map[Coordinate]Direction)
	c := l.randomUnvisitedRoom(rng, visited)

	for {
		sides := l.neighborSides(c)
		d := sides[rng.Intn(len(sides))]
		path[c] = d
		next := c.Step(d)
		if _, ok := visited[next]; ok {
			return path
		}
		c = next
	}
}

// openExit opens one random wall on the outer boundary as the exit.
func (l *Labyrinth) openExit(rng *rand.Rand) {
	// Walk the perimeter: top, bottom, left, right.
	perimeter := 2*l.xSize + 2*l.ySize
	n := rng.Intn(perimeter)
	switch {
	case n < l.xSize:
		l.SetExit(Coordinate{X: n, Y: 0}, North)
	case n < 2*l.xSize:
		l.SetExit(Coordinate{X: n - l.xSize, Y: l.ySize - 1}, South)
	case n < 2*l.xSize+l.ySize:
		l.SetExit(Coordinate{X: 0, Y: n - 2*l.xSize}, West)
	default:
		l.SetExit(Coordinate{X: l.xSize - 1, Y: n - 2*l.xSize - l.ySize}, East)
	}
}
