package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/interviewdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags listed in the package doc are considered; everything else
// in args is filtered out with flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-p", "-d", "-r", "-t", "-x", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend")
	fs.StringVar(&cfg.StoragePath, "p", cfg.StoragePath, "sqlite DSN or store file path")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	authDelay := fs.Int("t", int(cfg.AuthDelay.Milliseconds()), "simulated auth latency (in milliseconds)")
	fs.StringVar(&cfg.PasswordScheme, "x", cfg.PasswordScheme, "password scheme")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t has millisecond resolution; leave finer values from other sources alone unless it was given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.AuthDelay = time.Duration(*authDelay) * time.Millisecond
		}
	})
}
