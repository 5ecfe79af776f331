package ui

import (
	"testing"

	"github.com/Mshel/blockfall/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updateController(t *testing.T, m ControllerModel, msg tea.Msg) (ControllerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ControllerModel)
	require.True(t, ok)
	return model, cmd
}

func TestControllerStartsOnIntro(t *testing.T) {
	m := NewControllerModel(game.DefaultConfig(), nil)

	assert.Equal(t, IntroScreen, m.CurrentScreen)
	assert.Contains(t, m.View(), "Start Game")
}

func TestControllerIntroStartsGame(t *testing.T) {
	m := NewControllerModel(game.DefaultConfig(), nil)

	m, cmd := updateController(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, cmd = updateController(t, m, resolveMsg(cmd))

	assert.Equal(t, GameScreen, m.CurrentScreen)
	assert.NotNil(t, cmd)
	gm, ok := m.GameModel.(GameViewModel)
	require.True(t, ok)
	assert.Equal(t, int64(1), gm.GameID)
	assert.Contains(t, m.View(), "SCORE")
}

func TestControllerIntroQuit(t *testing.T) {
	m := NewControllerModel(game.DefaultConfig(), nil)

	m, _ = updateController(t, m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := updateController(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = updateController(t, m, resolveMsg(cmd))
	assert.True(t, isQuit(cmd))
}

func TestControllerRestart(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 10
	m := NewControllerModel(cfg, nil)
	m, _ = updateController(t, m, IntroSubmitMsg(0))

	m, _ = updateController(t, m, RestartGameMsg{})

	gm, ok := m.GameModel.(GameViewModel)
	require.True(t, ok)
	assert.Equal(t, int64(2), gm.GameID)
	assert.Equal(t, 0, gm.state.Score)
	assert.False(t, gm.state.Over)
}

func TestControllerCtrlC(t *testing.T) {
	m := NewControllerModel(game.DefaultConfig(), nil)

	_, cmd := updateController(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestControllerForwardsWindowSize(t *testing.T) {
	m := NewControllerModel(game.DefaultConfig(), nil)
	m, _ = updateController(t, m, IntroSubmitMsg(0))

	m, _ = updateController(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, 100, m.ScreenWidth)
	gm := m.GameModel.(GameViewModel)
	assert.Equal(t, 50, gm.ScreenHeight)
}
