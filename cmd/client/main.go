package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/interviewdesk/internal/buildinfo"
	"github.com/dmitrijs2005/interviewdesk/internal/client/cli"
	"github.com/dmitrijs2005/interviewdesk/internal/client/config"
	"github.com/dmitrijs2005/interviewdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	// Ctrl-C keeps its default behaviour; Ctrl-D ends the REPL cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	reg := prometheus.NewRegistry()

	app, err := cli.NewApp(ctx, cfg, logger, reg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.MetricsAddr != "" {
		cli.StartMetricsServer(ctx, cfg.MetricsAddr, reg, logger)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
