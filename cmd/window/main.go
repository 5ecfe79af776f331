package main

import (
	"fmt"
	"os"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/Mshel/blockfall/internal/window"
)

func main() {
	cfg, err := game.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
	logger, closer, err := game.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	logger.Info("Starting blockfall window", "frame_rate", cfg.FrameRate, "seed", cfg.Seed)
	if err := window.Run(cfg, logger); err != nil {
		logger.Error("Window closed with error", "error", err)
		closer.Close()
		os.Exit(1)
	}
	logger.Info("Stopping blockfall window")
}
