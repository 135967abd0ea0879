package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-robot-arena/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-robot-arena/pkg/view"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "JSON or YAML configuration file")
	schemaFile := flag.String("schema", "configs/config.schema.json", "JSON schema of the configuration")
	savePath := flag.String("save", "arena.txt", "file used by the Save and Load buttons")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configFile, *schemaFile)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := simulation.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	a, err := simulation.BuildArena(cfg, logger.Named("arena"))
	if err != nil {
		logger.Fatal("failed to build arena", zap.Error(err))
	}

	ctx := context.Background()
	// Buffer to avoid blocking
	snapshotCh := make(chan *simulation.Snapshot, 10)
	client, err := simulation.StartArena(ctx, a, cfg, snapshotCh, logger.Named("actor"))
	if err != nil {
		logger.Fatal("failed to start arena", zap.Error(err))
	}
	defer func() { _ = client.Stop(ctx) }()

	game := view.NewGame(ctx, cfg, client, snapshotCh, *savePath, logger.Named("view"))

	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Robot Arena: Predators vs Preys")
	ebiten.SetTPS(cfg.TicksPerSecond)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game stopped", zap.Error(err))
	}
}
