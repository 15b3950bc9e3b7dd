package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress string

	// StoreLatency is the artificial delay applied to every store operation,
	// standing in for a network round trip. Zero disables it.
	StoreLatency time.Duration

	// PollInterval and InitialDelay drive the job subscription feed: the
	// first snapshot is delivered after InitialDelay, then on every tick.
	PollInterval time.Duration
	InitialDelay time.Duration

	// StrictTransitions rejects job assignment on non-pending jobs and any
	// backward status move. Disable to reproduce trust-the-caller behaviour.
	StrictTransitions bool

	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultStoreLatency    = 300 * time.Millisecond
	defaultPollInterval    = 10 * time.Second
	defaultInitialDelay    = 500 * time.Millisecond
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		StoreLatency:      getDuration(lookup, "STORE_LATENCY", defaultStoreLatency),
		PollInterval:      getDuration(lookup, "POLL_INTERVAL", defaultPollInterval),
		InitialDelay:      getDuration(lookup, "SUBSCRIBE_INITIAL_DELAY", defaultInitialDelay),
		StrictTransitions: getBool(lookup, "STRICT_TRANSITIONS", true),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("darzi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		storeLatencyStr    = cfg.StoreLatency.String()
		pollIntervalStr    = cfg.PollInterval.String()
		initialDelayStr    = cfg.InitialDelay.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		permissive         = !cfg.StrictTransitions
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&storeLatencyStr, "store-latency", storeLatencyStr, "Artificial latency per store operation")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between subscription polls")
	fs.StringVar(&initialDelayStr, "initial-delay", initialDelayStr, "Delay before first subscription snapshot")
	fs.BoolVar(&permissive, "permissive-status", permissive, "Allow any job status transition")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	cfg.StrictTransitions = !permissive

	var err error

	if cfg.StoreLatency, err = time.ParseDuration(storeLatencyStr); err != nil {
		return nil, fmt.Errorf("invalid store latency: %w", err)
	}

	if cfg.PollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.InitialDelay, err = time.ParseDuration(initialDelayStr); err != nil {
		return nil, fmt.Errorf("invalid initial delay: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.StoreLatency < 0 {
		cfg.StoreLatency = 0
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}

	if cfg.InitialDelay < 0 {
		cfg.InitialDelay = defaultInitialDelay
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
