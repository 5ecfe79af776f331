package ui

import (
	"io"

	"github.com/Mshel/blockfall/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	GameScreen
)

// IntroSubmitMsg carries the selected intro button: 0 starts a game, 1 quits.
type IntroSubmitMsg int

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	GameModel  tea.Model

	Config       game.Config
	Logger       *log.Logger
	ScreenWidth  int
	ScreenHeight int

	gamesStarted int64
}

func NewControllerModel(cfg game.Config, logger *log.Logger) ControllerModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return ControllerModel{
		CurrentScreen: IntroScreen,
		IntroModel:    NewIntroModel(defaultScreenWidth, defaultScreenHeight),
		Config:        cfg,
		Logger:        logger,
		ScreenWidth:   defaultScreenWidth,
		ScreenHeight:  defaultScreenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

// startGame builds a new GameState. A fixed seed gives every restart its own
// but reproducible sequence.
func (m ControllerModel) startGame() (ControllerModel, tea.Cmd) {
	seed := m.Config.Seed
	if seed != 0 {
		seed += m.gamesStarted
	}
	m.gamesStarted++

	state := game.NewGameState(game.WithLogger(m.Logger), game.WithSeed(seed))
	m.Logger.Info("Starting new game", "game", m.gamesStarted, "seed", seed)

	m.CurrentScreen = GameScreen
	m.GameModel = NewGameModel(m.gamesStarted, state, m.Config, m.Logger, m.ScreenWidth, m.ScreenHeight)
	return m, m.GameModel.Init()
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth, m.ScreenHeight = msg.Width, msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		return m, nil

	case IntroSubmitMsg:
		if msg == 0 {
			return m.startGame()
		}
		return m, tea.Quit

	case RestartGameMsg:
		return m.startGame()

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}
