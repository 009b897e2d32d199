package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Addr   string `env:"ENTRYPOINT_TEST_ADDR" envDefault:"127.0.0.1:8080"`
	APIKey string `env:"ENTRYPOINT_TEST_API_KEY" envDefault:"local-dev-api-key"`
}

func TestParseConfigReadsEnvThenFlags(t *testing.T) {
	t.Setenv("ENTRYPOINT_TEST_ADDR", "env:9000")
	t.Setenv("ENTRYPOINT_TEST_API_KEY", "env-key")

	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "api key")
	if err := ParseArgs(fs, []string{"-addr", "flag:9001"}); err != nil {
		t.Fatalf("parse args: %v", err)
	}

	if cfg.Addr != "flag:9001" {
		t.Fatalf("addr = %q, want flag override", cfg.Addr)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("api key = %q, want env value", cfg.APIKey)
	}
}

func TestParseConfigAppliesDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Fatalf("addr = %q, want default", cfg.Addr)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	t.Parallel()

	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestRunWithTelemetryRequiresServiceAndRun(t *testing.T) {
	t.Parallel()

	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceAPI, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryHonorsDisabledFlag(t *testing.T) {
	t.Setenv("CARRIER_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("CARRIER_OTEL_ENABLED", "false")

	ran := false
	err := RunWithTelemetry(context.Background(), ServiceAPI, func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ran {
		t.Fatal("run function did not execute")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceAPI, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
