// Package main is the entry point for the labyrinth game.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carlsonchan/labyrinth/internal/game"
	"github.com/carlsonchan/labyrinth/internal/telemetry"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load .env for local development. Not fatal; env vars may be set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not loaded")
	}

	cfg := game.FromEnv()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "labyrinth width in rooms (0 = scenario default)")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "labyrinth height in rooms (0 = scenario default)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed (0 = time-based)")
	flag.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "scenario id (classic, grand, closet)")
	flag.BoolVar(&cfg.PrintOnly, "print", cfg.PrintOnly, "print the map once to stdout and exit")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.PrintOnly {
		// Keep stdout clean for the rendered map.
		log.SetOutput(os.Stderr)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed; running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("telemetry shutdown failed")
			}
		}()
	}

	g, err := game.New(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize game")
	}

	if cfg.PrintOnly {
		if err := g.PrintMap(ctx); err != nil {
			log.WithError(err).Fatal("failed to print map")
		}
		return
	}

	if err := g.Run(ctx); err != nil {
		log.WithError(err).Fatal("game error")
	}
}
