// Command headless runs the predator/prey arena without a window and prints
// the final dump.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-robot-arena/pkg/simulation"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "JSON or YAML configuration file")
	schemaFile := flag.String("schema", "configs/config.schema.json", "JSON schema of the configuration")
	ticks := flag.Int("ticks", 100, "number of ticks to run")
	purge := flag.Bool("purge", false, "run step-and-purge ticks instead of full updates")
	load := flag.String("load", "", "start from a saved arena instead of the configured one")
	save := flag.String("save", "", "save the final arena to this file")
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

	if err := run(cfg, logger, *ticks, *purge, *load, *save); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *simulation.Config, logger *zap.Logger, ticks int, purge bool, load, save string) error {
	ctx := context.Background()

	a, err := simulation.BuildArena(cfg, logger.Named("arena"))
	if err != nil {
		return err
	}
	client, err := simulation.StartArena(ctx, a, cfg, nil, logger.Named("actor"))
	if err != nil {
		return err
	}
	defer func() { _ = client.Stop(ctx) }()

	if load != "" {
		if err := client.Do(ctx, simulation.LoadFrom(load)); err != nil {
			return fmt.Errorf("loading %s: %w", load, err)
		}
	}

	dt := time.Second / time.Duration(cfg.TicksPerSecond)
	start := time.Now()
	for i := 0; i < ticks; i++ {
		if purge {
			err = client.Command(ctx, simulation.CmdStepAndPurge)
		} else {
			err = client.Tick(ctx, dt)
		}
		if err != nil {
			return err
		}
	}

	dump, err := client.Dump(ctx)
	if err != nil {
		return err
	}
	logger.Info("run finished", zap.Int("ticks", ticks), zap.Duration("elapsed", time.Since(start)))
	fmt.Print(dump)

	if save != "" {
		if err := client.Do(ctx, simulation.SaveTo(save)); err != nil {
			return fmt.Errorf("saving %s: %w", save, err)
		}
	}
	return nil
}
