package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Start Game, 1: Quit
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			m.selected = 1 - m.selected
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var blockfallAscii = `
█▀▀▄ █    ▄▀▀▄ ▄▀▀▀ █ ▄▀ █▀▀▀ ▄▀▀▄ █    █
█▀▀▄ █    █  █ █    █▀▄  █▀▀  █▀▀█ █    █
▀▀▀  ▀▀▀▀  ▀▀   ▀▀▀ ▀  ▀ ▀    ▀  ▀ ▀▀▀▀ ▀▀▀▀
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("51")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(blockfallAscii))
	sb.WriteString("\n")

	start := introButtonStyle.Render("Start Game")
	quit := introButtonStyle.Render("Quit")
	if m.selected == 0 {
		start = introSelectedButtonStyle.Render("Start Game")
	} else {
		quit = introSelectedButtonStyle.Render("Quit")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, start, quit)
	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		width, height = defaultScreenWidth, defaultScreenHeight
	}
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
