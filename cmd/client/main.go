package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
)

var errNoServer = errors.New("server url is empty")

func main() {
	var (
		server   = flag.String("server", "ws://localhost:2345/ws", "arena websocket url")
		name     = flag.String("name", "pilot", "player name sent in HELLO")
		logLevel = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()
	if *server == "" {
		log.Fatal(errNoServer)
	}

	logger, err := simulation.NewLogger(*logLevel, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	game := NewGame(ctx, *server, *name, simulation.DefaultConfig().CaptureHalfExtent, logger)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Boids Arena")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
