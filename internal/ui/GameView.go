package ui

import (
	"io"
	"time"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	defaultScreenWidth  = 80
	defaultScreenHeight = 30
)

// FrameMsg is delivered once per frame. GameID keeps the tick chain of a
// finished game from driving its replacement.
type FrameMsg struct {
	Time   time.Time
	GameID int64
}

// RestartGameMsg asks the controller for a fresh game.
type RestartGameMsg struct{}

func frameTick(d time.Duration, gameID int64) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, GameID: gameID}
	})
}

// GameViewModel drives one game: frame ticks feed gravity, key presses go
// through the InputHandler, and View renders a snapshot.
type GameViewModel struct {
	GameID       int64
	ScreenWidth  int
	ScreenHeight int

	state  *game.GameState
	input  *game.InputHandler
	keys   keyMap
	help   help.Model
	logger *log.Logger
	clock  func() time.Time

	frameDuration   time.Duration
	keyReleaseGap   time.Duration
	lastDrop        time.Time
	lastHardDropKey time.Time

	gameOverState GameOverState
}

func NewGameModel(gameID int64, state *game.GameState, cfg game.Config, logger *log.Logger, screenWidth, screenHeight int) GameViewModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameViewModel{
		GameID:        gameID,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
		state:         state,
		input:         game.NewInputHandler(logger),
		keys:          defaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		clock:         time.Now,
		frameDuration: cfg.FrameDuration(),
		keyReleaseGap: cfg.KeyReleaseGap,
		gameOverState: GameOverState{
			ScreenWidth:    screenWidth,
			ScreenHeight:   screenHeight,
			SelectedButton: 0,
		},
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return frameTick(m.frameDuration, m.GameID)
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		m.gameOverState.ScreenWidth, m.gameOverState.ScreenHeight = msg.Width, msg.Height
		return m, nil

	case FrameMsg:
		if msg.GameID != m.GameID {
			return m, nil
		}
		m.advance(msg.Time)
		return m, frameTick(m.frameDuration, m.GameID)

	case tea.KeyMsg:
		if m.state.Over {
			switch msg.String() {
			case "left":
				m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
				return m, nil
			case "right":
				m.gameOverState.SelectedButton = min(1, m.gameOverState.SelectedButton+1)
				return m, nil
			case "enter":
				// 0: Restart, 1: Exit
				if m.gameOverState.SelectedButton == 0 {
					m.logger.Debug("Restart requested", "game", m.GameID)
					return m, func() tea.Msg { return RestartGameMsg{} }
				}
				m.logger.Debug("Exit requested", "game", m.GameID)
				return m, tea.Quit
			}
		}

		action := m.keys.actionFor(msg)
		if action == game.ActionNone {
			return m, nil
		}
		now := m.clock()
		if action == game.ActionHardDrop {
			m.lastHardDropKey = now
		}
		if !m.input.Press(m.state, action, now) {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// advance runs the per-frame work: gravity and the synthetic hard-drop key
// release. Terminals never report key-up, so a quiet gap counts as release.
func (m *GameViewModel) advance(now time.Time) {
	if m.lastDrop.IsZero() {
		m.lastDrop = now
	}

	switch m.state.Status() {
	case game.StatusActive:
		if now.Sub(m.lastDrop) > m.state.DropDelay() {
			m.state.DropPiece()
			m.lastDrop = now
		}
	case game.StatusPaused:
		m.lastDrop = now
	}

	if !m.input.HardDropArmed() && now.Sub(m.lastHardDropKey) > m.keyReleaseGap {
		m.input.Release(game.ActionHardDrop)
	}
}

func (m GameViewModel) View() string {
	width, height := m.ScreenWidth, m.ScreenHeight
	if width <= 0 || height <= 0 {
		width, height = defaultScreenWidth, defaultScreenHeight
	}

	snap := m.state.Snapshot()
	if snap.Over {
		overState := m.gameOverState
		overState.ScreenWidth, overState.ScreenHeight = width, height
		return overState.RenderGameOverScreen(snap)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		renderPlayfield(snap),
		m.help.View(m.keys),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
