package ui

import (
	"strings"
	"testing"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestComposeFrameLayers(t *testing.T) {
	state := game.NewGameState(game.WithFirstPieces(game.ShapeO, game.ShapeT))
	state.Board.Grid[game.BoardHeight-1][0] = 6

	frame := composeFrame(state.Snapshot())

	assert.Equal(t, frameCell{layer: layerSolid, color: 6}, frame[game.BoardHeight-1][0])
	assert.Equal(t, frameCell{layer: layerSolid, color: 2}, frame[0][4])
	assert.Equal(t, frameCell{layer: layerSolid, color: 2}, frame[1][5])
	assert.Equal(t, frameCell{layer: layerGhost, color: 2}, frame[game.BoardHeight-1][4])
	assert.Equal(t, frameCell{layer: layerGhost, color: 2}, frame[game.BoardHeight-2][5])
	assert.Equal(t, layerEmpty, frame[10][0].layer)
}

func TestComposeFramePieceOverGhost(t *testing.T) {
	state := game.NewGameState(game.WithFirstPieces(game.ShapeO, game.ShapeT))
	state.HardDrop()
	for state.MovePiece(0, 1) {
	}

	frame := composeFrame(state.Snapshot())

	ghosts := 0
	for _, row := range frame {
		for _, c := range row {
			if c.layer == layerGhost {
				ghosts++
			}
		}
	}
	assert.Equal(t, 0, ghosts)
}

func TestRenderBoard(t *testing.T) {
	state := game.NewGameState(game.WithFirstPieces(game.ShapeT, game.ShapeI))
	state.Board.Grid[game.BoardHeight-1][9] = 1

	out := renderBoard(state.Snapshot())

	assert.Equal(t, 5, strings.Count(out, filledRune))
	assert.Equal(t, 4, strings.Count(out, ghostRune))
	assert.NotContains(t, out, "PAUSED")
}

func TestRenderBoardPaused(t *testing.T) {
	state := game.NewGameState(game.WithFirstPieces(game.ShapeT, game.ShapeI))
	state.TogglePause()

	out := renderBoard(state.Snapshot())

	assert.Contains(t, out, "PAUSED")
	assert.Equal(t, 0, strings.Count(out, filledRune))
}

func TestTrimBitmap(t *testing.T) {
	assert.Equal(t, game.Bitmap{{1, 1, 1, 1}}, trimBitmap(game.NewTetromino(game.ShapeI).Shape))
	assert.Equal(t, game.Bitmap{{0, 1, 0}, {1, 1, 1}}, trimBitmap(game.NewTetromino(game.ShapeT).Shape))
	assert.Equal(t, game.Bitmap{{1, 1}, {1, 1}}, trimBitmap(game.NewTetromino(game.ShapeO).Shape))
	assert.Equal(t, game.Bitmap{}, trimBitmap(game.Bitmap{{0, 0}, {0, 0}}))
}

func TestRenderPlayfield(t *testing.T) {
	state := game.NewGameState(game.WithFirstPieces(game.ShapeO, game.ShapeJ))
	state.Score = 1234
	state.Level = 3
	state.LinesCleared = 27

	out := renderPlayfield(state.Snapshot())

	for _, want := range []string{"SCORE", "1234", "LEVEL", "3", "LINES", "27", "NEXT"} {
		assert.Contains(t, out, want)
	}
	// falling O plus the J preview
	assert.Equal(t, 8, strings.Count(out, filledRune))
}

func TestRenderGameOverScreen(t *testing.T) {
	state := game.NewGameState(game.WithFirstPieces(game.ShapeO))
	state.Score = 4200
	state.Over = true
	over := GameOverState{ScreenWidth: 80, ScreenHeight: 30}

	out := over.RenderGameOverScreen(state.Snapshot())

	assert.Contains(t, out, "G A M E   O V E R")
	assert.Contains(t, out, "Score: 4200")
	assert.Contains(t, out, "RESTART")
	assert.Contains(t, out, "EXIT")
}
