package ui

import (
	"github.com/Mshel/blockfall/internal/game"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap is the static key table. There is no remapping.
type keyMap struct {
	MoveLeft               key.Binding
	MoveRight              key.Binding
	SoftDrop               key.Binding
	RotateClockwise        key.Binding
	RotateCounterClockwise key.Binding
	HardDrop               key.Binding
	Pause                  key.Binding
	Quit                   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		MoveLeft:               key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		MoveRight:              key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		SoftDrop:               key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "soft drop")),
		RotateClockwise:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "rotate")),
		RotateCounterClockwise: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "rotate back")),
		HardDrop:               key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "hard drop")),
		Pause:                  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:                   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) actionFor(msg tea.KeyMsg) game.Action {
	switch {
	case key.Matches(msg, k.MoveLeft):
		return game.ActionMoveLeft
	case key.Matches(msg, k.MoveRight):
		return game.ActionMoveRight
	case key.Matches(msg, k.SoftDrop):
		return game.ActionSoftDrop
	case key.Matches(msg, k.RotateClockwise):
		return game.ActionRotateClockwise
	case key.Matches(msg, k.RotateCounterClockwise):
		return game.ActionRotateCounterClockwise
	case key.Matches(msg, k.HardDrop):
		return game.ActionHardDrop
	case key.Matches(msg, k.Pause):
		return game.ActionPause
	case key.Matches(msg, k.Quit):
		return game.ActionQuit
	}
	return game.ActionNone
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveLeft, k.MoveRight, k.RotateClockwise, k.HardDrop, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveLeft, k.MoveRight, k.SoftDrop},
		{k.RotateClockwise, k.RotateCounterClockwise, k.HardDrop},
		{k.Pause, k.Quit},
	}
}
