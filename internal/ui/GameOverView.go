package ui

import (
	"fmt"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/charmbracelet/lipgloss"
)

// GameOverState holds the local state for rendering the game over screen.
type GameOverState struct {
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))
)

// RenderGameOverScreen draws the final stats and the Restart/Exit buttons.
func (g *GameOverState) RenderGameOverScreen(snap game.Snapshot) string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Padding(1, 5).
		Align(lipgloss.Center)

	title := messageStyle.Render("G A M E   O V E R")

	stats := fmt.Sprintf("\nFinal Stats:\nScore: %d\nLevel: %d\nLines: %d\n", snap.Score, snap.Level, snap.Lines)

	restartButton := gameOverButtonStyle.Render("RESTART")
	exitButton := gameOverButtonStyle.Render("EXIT")
	if g.SelectedButton == 0 {
		restartButton = selectedButtonStyle.Render("RESTART")
	} else {
		exitButton = selectedButtonStyle.Render("EXIT")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, restartButton, exitButton)
	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, buttons)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 2).Render(content),
	)
}
