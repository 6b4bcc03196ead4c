package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carlsonchan/labyrinth/internal/entity"
	"github.com/carlsonchan/labyrinth/internal/gamedata"
	"github.com/carlsonchan/labyrinth/internal/labmap"
	"github.com/carlsonchan/labyrinth/internal/telemetry"
	"github.com/carlsonchan/labyrinth/internal/ui"
	"github.com/carlsonchan/labyrinth/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg   Config
	log   *logrus.Entry
	runID uuid.UUID
	rng   *rand.Rand

	lab    *world.Labyrinth
	labMap *labmap.Map
	player *entity.Player

	minotaurRoom       world.Coordinate
	minotaurDistracted bool

	state   State
	message string

	screen   *ui.Screen
	renderer *ui.Renderer
	running  bool
}

// New builds a game from the configuration: it generates the labyrinth,
// scatters the scenario's contents and prepares the map. The screen is
// not touched yet; print-only runs never need one.
func New(ctx context.Context, cfg Config, logger *logrus.Logger) (*Game, error) {
	runID := uuid.New()

	registry, err := gamedata.LoadScenarioRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading scenarios: %w", err)
	}
	scenario := registry.GetByID(cfg.Scenario)
	if scenario == nil {
		logger.WithField("scenario", cfg.Scenario).Warn("unknown scenario, using default")
		scenario = registry.Default()
	}

	width, height := scenario.Width, scenario.Height
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log := logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"scenario": scenario.ID,
	})

	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")
	defer initSpan.End()
	initSpan.SetAttributes(
		attribute.String("game.run_id", runID.String()),
		attribute.String("game.scenario", scenario.ID),
		attribute.Int("game.width", width),
		attribute.Int("game.height", height),
		attribute.Int64("game.seed", seed),
	)

	lab, err := world.NewLabyrinth(width, height)
	if err != nil {
		return nil, fmt.Errorf("building labyrinth: %w", err)
	}
	lab.Generate(ctx, rng)

	labMap, err := labmap.New(lab, width, height)
	if err != nil {
		return nil, fmt.Errorf("building map: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		log:    log,
		runID:  runID,
		rng:    rng,
		lab:    lab,
		labMap: labMap,
		state:  StatePlaying,
	}
	g.placeContents(scenario)

	log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"seed":   seed,
	}).Info("labyrinth ready")

	return g, nil
}

// placeContents scatters the player, the minotaur, the mirror, the
// treasure and the scenario's bullets over distinct random rooms.
func (g *Game) placeContents(scenario *gamedata.ScenarioDef) {
	rooms := make([]world.Coordinate, 0, g.lab.XSize()*g.lab.YSize())
	for y := 0; y < g.lab.YSize(); y++ {
		for x := 0; x < g.lab.XSize(); x++ {
			rooms = append(rooms, world.C(x, y))
		}
	}
	g.rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})

	next := func() (world.Coordinate, bool) {
		if len(rooms) == 0 {
			return world.Coordinate{}, false
		}
		c := rooms[0]
		rooms = rooms[1:]
		return c, true
	}

	start, _ := next()
	g.player = entity.NewPlayer(start)

	if c, ok := next(); ok {
		g.lab.SetInhabitant(c, world.Minotaur)
		g.minotaurRoom = c
	}
	if c, ok := next(); ok {
		g.lab.SetInhabitant(c, world.Mirror)
	}
	if c, ok := next(); ok {
		g.lab.SetItem(c, world.Treasure)
	}
	for i := 0; i < scenario.Bullets; i++ {
		c, ok := next()
		if !ok {
			break
		}
		g.lab.SetItem(c, world.Bullet)
	}
}

// PrintMap renders the map once to its configured output. This is the
// print-only path; it never initializes the terminal.
func (g *Game) PrintMap(ctx context.Context) error {
	return g.labMap.Display(ctx)
}

// Run executes the interactive game loop until the player quits or the
// hunt ends and the end screen is dismissed.
func (g *Game) Run(ctx context.Context) error {
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return fmt.Errorf("loading theme: %w", err)
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, theme)
	g.running = true
	g.message = "Find the treasure and escape. The minotaur is listening."

	for g.running {
		g.renderer.Render(g.labMap, g.player.Pos, g.statusLine(), g.message)
		g.handleInput(ctx)
	}

	g.screen.Close()
	g.log.WithField("state", g.state.String()).Info("game over")
	return nil
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// statusLine summarizes the player's situation below the map.
func (g *Game) statusLine() string {
	switch g.state {
	case StateWon:
		return "You escaped with the treasure! Press q to leave."
	case StateLost:
		return "You are dead. Press q to leave."
	}
	treasure := "no"
	if g.player.Treasure {
		treasure = "yes"
	}
	return fmt.Sprintf("bullets: %d   treasure: %s", g.player.Bullets, treasure)
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Arrow keys and hjkl move.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.playerMove(ctx, world.North)
	case tcell.KeyDown:
		g.playerMove(ctx, world.South)
	case tcell.KeyLeft:
		g.playerMove(ctx, world.West)
	case tcell.KeyRight:
		g.playerMove(ctx, world.East)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.playerMove(ctx, world.North)
		case 'j':
			g.playerMove(ctx, world.South)
		case 'h':
			g.playerMove(ctx, world.West)
		case 'l':
			g.playerMove(ctx, world.East)
		}
	}
}

// playerMove advances one turn: the player steps in direction d if the
// labyrinth allows it, the room is resolved, then the minotaur answers.
func (g *Game) playerMove(ctx context.Context, d world.Direction) {
	if g.state != StatePlaying {
		return
	}

	from := g.player.Pos
	exitRoom, exitSide := g.lab.Exit()

	if from == exitRoom && d == exitSide && !g.lab.WallExists(from, d) {
		if g.player.Treasure {
			g.state = StateWon
			g.message = "Daylight. You squeeze through the opening, treasure in hand."
		} else {
			g.message = "You feel the draft of the exit, but you will not leave without the treasure."
		}
		return
	}

	if !g.lab.CanMove(from, d) {
		g.message = "A wall blocks the way " + d.String() + "."
		return
	}

	g.player.MoveTo(from.Step(d))
	g.log.WithFields(logrus.Fields{
		"from": from.String(),
		"to":   g.player.Pos.String(),
	}).Debug("player moved")

	g.resolveRoom()
	if g.state == StatePlaying {
		g.minotaurTurn()
	}
}
