// Package main is the entry point for the Helios solar-system renderer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/helios/internal/config"
	"github.com/Faultbox/helios/internal/game"
	"github.com/Faultbox/helios/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Helios ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	defer logger.Sync()

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("main loop failed", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
