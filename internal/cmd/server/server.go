// Package server parses service flags and starts the carrier API runtime.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/api"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/board"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/fmcsa"
	entrypoint "github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/cmd"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/random"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage/sqlite"
)

// Config holds carrier API command configuration.
type Config struct {
	Addr         string `env:"CARRIER_HTTP_ADDR" envDefault:":8000"`
	APIKey       string `env:"CARRIER_API_KEY" envDefault:"local-dev-api-key"`
	DBPath       string `env:"CARRIER_DB_PATH" envDefault:"data/carrier.db"`
	FMCSAWebKey  string `env:"CARRIER_FMCSA_WEBKEY"`
	FMCSABaseURL string `env:"CARRIER_FMCSA_BASE_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds storage, builds the load board, and serves the API until the
// context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAPI, func(ctx context.Context) error {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create storage dir: %w", err)
			}
		}

		store, err := sqlite.Open(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		if err := store.SeedLoads(ctx, board.SeedLoads()); err != nil {
			return fmt.Errorf("seed loads: %w", err)
		}
		loads, err := store.ListLoads(ctx)
		if err != nil {
			return fmt.Errorf("list loads: %w", err)
		}
		loadBoard, err := board.New(loads)
		if err != nil {
			return fmt.Errorf("build load board: %w", err)
		}
		log.Printf("load board ready loads=%d db=%s", loadBoard.Len(), cfg.DBPath)

		rng, err := random.NewRand()
		if err != nil {
			return fmt.Errorf("seed random source: %w", err)
		}

		var carrierOpts []fmcsa.Option
		if cfg.FMCSABaseURL != "" {
			carrierOpts = append(carrierOpts, fmcsa.WithBaseURL(cfg.FMCSABaseURL))
		}
		carriers := fmcsa.New(cfg.FMCSAWebKey, carrierOpts...)

		server, err := api.New(api.Config{
			Addr:     cfg.Addr,
			APIKey:   cfg.APIKey,
			Board:    loadBoard,
			Carriers: carriers,
			Store:    store,
			Rand:     rng,
			Now:      time.Now,
		})
		if err != nil {
			return fmt.Errorf("build api server: %w", err)
		}
		return server.ListenAndServe(ctx)
	})
}
