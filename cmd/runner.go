package main

import (
	"fmt"
	"os"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/Mshel/blockfall/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := game.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("Starting blockfall", "frame_rate", cfg.FrameRate, "seed", cfg.Seed)
	p := tea.NewProgram(ui.NewControllerModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		// bubbletea restores the terminal before Run returns
		logger.Error("Game loop failed", "error", err)
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info("Stopping blockfall")
	return nil
}
