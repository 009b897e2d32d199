// Package cmd provides the shared entrypoint helpers for service binaries:
// environment-backed configuration, flag parsing, and telemetry lifecycle.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers used for startup telemetry and log prefixes.
const (
	ServiceAPI   = "carrier-api"
	ServiceBoard = "board-cli"
)

// RunOptions controls shared entrypoint behavior.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseArgs parses command-line flags on top of environment defaults.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry configures tracing and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// telemetryConfig resolves the tracing exporter settings from the
// environment. Tracing stays off unless an endpoint is set, and
// CARRIER_OTEL_ENABLED=false forces it off regardless.
type telemetryConfig struct {
	Endpoint string `env:"CARRIER_OTEL_ENDPOINT"`
	Enabled  string `env:"CARRIER_OTEL_ENABLED" envDefault:"true"`
}

// RunWithTelemetryAndOptions configures tracing with explicit options and
// executes a service run loop. The telemetry provider is flushed after the
// run function returns.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	var tcfg telemetryConfig
	if err := ParseConfig(&tcfg); err != nil {
		return err
	}
	shutdown, err := otel.Setup(ctx, service, otel.Config{
		Endpoint: tcfg.Endpoint,
		Enabled:  !strings.EqualFold(strings.TrimSpace(tcfg.Enabled), "false"),
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
