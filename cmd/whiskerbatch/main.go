// Command whiskerbatch runs many whisker test-mode sessions at once and
// reports how often the robot reaches the goal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/lao-tseu-is-alive/go-robot-arena/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-robot-arena/pkg/whisker"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "JSON or YAML configuration file")
	schemaFile := flag.String("schema", "configs/config.schema.json", "JSON schema of the configuration")
	sessions := flag.Int("sessions", 100, "number of sessions")
	maxTicks := flag.Int("ticks", 5000, "ticks before a session is given up")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "sessions running at once")
	verbose := flag.Bool("v", false, "print every session")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(os.Getpid())
	}
	results, err := whisker.RunBatch(ctx, whisker.BatchConfig{
		Setup:    cfg.WhiskerSetup(),
		Sessions: *sessions,
		MaxTicks: *maxTicks,
		Workers:  *workers,
		Seed:     seed,
	}, logger.Named("whisker"))
	if err != nil {
		logger.Error("batch failed", zap.Error(err))
		os.Exit(1)
	}

	if *verbose {
		for _, r := range results {
			fmt.Printf("%s %-4s %d\n", r.Session, r.Outcome, r.Ticks)
		}
	}
	counts := whisker.Tally(results)
	fmt.Printf("sessions: %d  win: %d  lose: %d  none: %d  (seed %d)\n",
		len(results), counts[whisker.Win], counts[whisker.Lose], counts[whisker.None], seed)
}
