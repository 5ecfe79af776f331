package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth    = 2
	previewCells = 4

	filledRune = "██"
	ghostRune  = "░░"
	emptyRune  = "  "
)

var (
	// ANSI 256 colours per colour id
	pieceColors = map[int]lipgloss.Color{
		1: lipgloss.Color("51"),
		2: lipgloss.Color("226"),
		3: lipgloss.Color("129"),
		4: lipgloss.Color("46"),
		5: lipgloss.Color("196"),
		6: lipgloss.Color("21"),
		7: lipgloss.Color("208"),
	}

	boardViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	emptyCellStyle = lipgloss.NewStyle().Background(lipgloss.Color("233"))
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	pausedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1)
)

type layer int

const (
	layerEmpty layer = iota
	layerGhost
	layerSolid
)

type frameCell struct {
	layer layer
	color int
}

func renderCell(c frameCell) string {
	switch c.layer {
	case layerSolid:
		return lipgloss.NewStyle().Foreground(pieceColors[c.color]).Render(filledRune)
	case layerGhost:
		return lipgloss.NewStyle().Foreground(pieceColors[c.color]).Faint(true).Render(ghostRune)
	default:
		return emptyCellStyle.Render(emptyRune)
	}
}

// composeFrame stacks locked cells, the ghost and the falling piece.
func composeFrame(snap game.Snapshot) [game.BoardHeight][game.BoardWidth]frameCell {
	var frame [game.BoardHeight][game.BoardWidth]frameCell
	for y, row := range snap.Grid {
		for x, cell := range row {
			if cell != game.EmptyCell {
				frame[y][x] = frameCell{layer: layerSolid, color: cell}
			}
		}
	}
	if snap.Current == nil {
		return frame
	}

	stamp := func(pos game.Position, l layer) {
		for dy, row := range snap.Current.Shape {
			for dx, cell := range row {
				x, y := pos.X+dx, pos.Y+dy
				if cell == 0 || y < 0 || y >= game.BoardHeight || x < 0 || x >= game.BoardWidth {
					continue
				}
				if l == layerGhost && frame[y][x].layer != layerEmpty {
					continue
				}
				frame[y][x] = frameCell{layer: l, color: snap.Current.Color}
			}
		}
	}
	if !snap.Over {
		stamp(snap.Ghost, layerGhost)
	}
	stamp(snap.Position, layerSolid)
	return frame
}

func renderBoard(snap game.Snapshot) string {
	width := game.BoardWidth * cellWidth
	if snap.Paused {
		// hide the stack while paused
		paused := lipgloss.Place(width, game.BoardHeight, lipgloss.Center, lipgloss.Center, pausedStyle.Render("PAUSED"))
		return boardViewStyle.Render(paused)
	}

	frame := composeFrame(snap)
	var sb strings.Builder
	for y, row := range frame {
		for _, c := range row {
			sb.WriteString(renderCell(c))
		}
		if y < len(frame)-1 {
			sb.WriteString("\n")
		}
	}
	return boardViewStyle.Render(sb.String())
}

// trimBitmap drops empty outer rows and columns so previews sit centred.
func trimBitmap(b game.Bitmap) game.Bitmap {
	top, bottom, left, right := len(b), -1, len(b), -1
	for y, row := range b {
		for x, cell := range row {
			if cell == 0 {
				continue
			}
			top, bottom = min(top, y), max(bottom, y)
			left, right = min(left, x), max(right, x)
		}
	}
	if bottom < 0 {
		return game.Bitmap{}
	}
	trimmed := make(game.Bitmap, 0, bottom-top+1)
	for y := top; y <= bottom; y++ {
		trimmed = append(trimmed, b[y][left:right+1])
	}
	return trimmed
}

func renderPiecePreview(piece *game.Tetromino) string {
	var sb strings.Builder
	if piece != nil {
		shape := trimBitmap(piece.Shape)
		for y, row := range shape {
			for _, cell := range row {
				if cell != 0 {
					sb.WriteString(renderCell(frameCell{layer: layerSolid, color: piece.Color}))
				} else {
					sb.WriteString(emptyRune)
				}
			}
			if y < len(shape)-1 {
				sb.WriteString("\n")
			}
		}
	}
	return lipgloss.Place(previewCells*cellWidth, previewCells/2+1, lipgloss.Center, lipgloss.Center, sb.String())
}

func renderNextPanel(snap game.Snapshot) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		labelStyle.Render("NEXT"),
		renderPiecePreview(snap.Next),
	)
	return panelStyle.Render(content)
}

func renderScorePanel(snap game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("SCORE") + "\n")
	sb.WriteString(fmt.Sprintf("%d\n\n", snap.Score))
	sb.WriteString(labelStyle.Render("LEVEL") + "\n")
	sb.WriteString(fmt.Sprintf("%d\n\n", snap.Level))
	sb.WriteString(labelStyle.Render("LINES") + "\n")
	sb.WriteString(fmt.Sprintf("%d", snap.Lines))
	return panelStyle.Width(12).Render(sb.String())
}

// renderPlayfield lays out score panel, board and next-piece preview.
func renderPlayfield(snap game.Snapshot) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderScorePanel(snap),
		" ",
		renderBoard(snap),
		" ",
		renderNextPanel(snap),
	)
}
