package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/spawnkit/internal/core/observability/log"
	"github.com/zeusync/spawnkit/internal/core/spawn"
	"github.com/zeusync/spawnkit/pkg/concurrent"
)

func main() {
	level := flag.String("level", "info", "log level: debug, info, warn, error")
	seed := flag.String("seed", "", "seed name overriding every table's seed")
	workers := flag.Int("workers", 4, "tables planned in parallel")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: spawnplan [flags] table.yaml [table.json ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(log.ParseLevel(*level))
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	director := spawn.NewDirector(logger)
	plans, err := concurrent.MapErr(ctx, flag.Args(), *workers, func(_ context.Context, path string) (*spawn.Plan, error) {
		return planFile(director, path, *seed)
	})
	if err != nil {
		logger.Error("planning failed", log.Error(err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(plans); err != nil {
		logger.Error("writing plans failed", log.Error(err))
		os.Exit(1)
	}
}

func planFile(director *spawn.Director, path, seed string) (*spawn.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := spawn.Load(path, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if seed != "" {
		table.Seed = seed
	}
	return director.Plan(table)
}
