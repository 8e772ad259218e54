package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/lnd-rest/internal/app"
	"github.com/samvad-hq/lnd-rest/internal/config"
	"github.com/samvad-hq/lnd-rest/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lndrest: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("lndrest starting", "config", map[string]any{
		"env":         cfg.Env,
		"host":        cfg.Host,
		"timeout":     cfg.Timeout.String(),
		"socks_proxy": cfg.SocksProxy != "",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewRootCommand(cfg, log).ExecuteContext(ctx); err != nil {
		logger.ErrorObj("lndrest command failed", "error", err.Error())
		return err
	}
	return nil
}
