package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(b *Board, y, color int) {
	for x := 0; x < BoardWidth; x++ {
		b.Grid[y][x] = color
	}
}

func TestIsValidMove(t *testing.T) {
	board := NewBoard()
	board.Grid[BoardHeight-1][4] = 3
	o := NewTetromino(ShapeO)
	i := NewTetromino(ShapeI) // occupied cells on bitmap row 1

	tests := []struct {
		name  string
		piece *Tetromino
		x, y  int
		want  bool
	}{
		{"inside", o, 0, 0, true},
		{"right edge", o, BoardWidth - 2, 0, true},
		{"past left wall", o, -1, 0, false},
		{"past right wall", o, BoardWidth - 1, 0, false},
		{"on floor", o, 0, BoardHeight - 2, true},
		{"below floor", o, 0, BoardHeight - 1, false},
		{"overlaps stack", o, 3, BoardHeight - 2, false},
		{"above board", o, 0, -2, true},
		{"partly above board", o, 0, -1, true},
		{"empty bitmap rows may leave the board", i, 0, BoardHeight - 2, true},
		{"empty bitmap columns ignored", NewTetromino(ShapeT).WithShape(Bitmap{{0, 1, 0}, {0, 1, 1}, {0, 1, 0}}, 1), -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, board.IsValidMove(tt.piece, tt.x, tt.y))
		})
	}
}

func TestIsValidMoveIgnoresStackAboveBoard(t *testing.T) {
	board := NewBoard()
	fillRow(board, 0, 1)

	assert.True(t, board.IsValidMove(NewTetromino(ShapeO), 4, -2))
	assert.False(t, board.IsValidMove(NewTetromino(ShapeO), 4, -1))
}

func TestPlacePiece(t *testing.T) {
	board := NewBoard()
	piece := NewTetromino(ShapeT)

	board.PlacePiece(piece, 3, 5)

	assert.Equal(t, 3, board.Cell(4, 5))
	assert.Equal(t, 3, board.Cell(3, 6))
	assert.Equal(t, 3, board.Cell(4, 6))
	assert.Equal(t, 3, board.Cell(5, 6))
	assert.Equal(t, EmptyCell, board.Cell(3, 5))
	assert.Equal(t, EmptyCell, board.Cell(4, 7))
}

func TestPlacePieceDropsCellsAboveBoard(t *testing.T) {
	board := NewBoard()

	board.PlacePiece(NewTetromino(ShapeO), 0, -1)

	assert.Equal(t, 2, board.Cell(0, 0))
	assert.Equal(t, 2, board.Cell(1, 0))
	assert.Equal(t, EmptyCell, board.Cell(0, 1))
}

func TestClearLinesEmptyBoard(t *testing.T) {
	board := NewBoard()
	board.Grid[BoardHeight-1][0] = 5
	before := board.GridCopy()

	assert.Equal(t, 0, board.ClearLines())
	assert.Equal(t, before, board.Grid)
}

func TestClearLinesSingleRow(t *testing.T) {
	board := NewBoard()
	fillRow(board, BoardHeight-1, 1)
	board.Grid[BoardHeight-2][2] = 4
	board.Grid[BoardHeight-3][7] = 6

	assert.Equal(t, 1, board.ClearLines())

	var want [BoardWidth]int
	want[2] = 4
	assert.Equal(t, want, board.Grid[BoardHeight-1])
	assert.Equal(t, 6, board.Cell(7, BoardHeight-2))
	assert.Equal(t, [BoardWidth]int{}, board.Grid[0])
}

func TestClearLinesAdjacentFullRows(t *testing.T) {
	board := NewBoard()
	fillRow(board, BoardHeight-1, 1)
	fillRow(board, BoardHeight-2, 2)
	fillRow(board, BoardHeight-3, 3)
	board.Grid[BoardHeight-4][0] = 7

	assert.Equal(t, 3, board.ClearLines())
	assert.Equal(t, 7, board.Cell(0, BoardHeight-1))
	for y := 0; y < BoardHeight-1; y++ {
		assert.Equal(t, [BoardWidth]int{}, board.Grid[y], "row %d", y)
	}
}

func TestClearLinesSplitFullRows(t *testing.T) {
	board := NewBoard()
	fillRow(board, BoardHeight-1, 1)
	board.Grid[BoardHeight-2][9] = 2
	fillRow(board, BoardHeight-3, 3)
	board.Grid[BoardHeight-4][5] = 4

	assert.Equal(t, 2, board.ClearLines())
	assert.Equal(t, 2, board.Cell(9, BoardHeight-1))
	assert.Equal(t, 4, board.Cell(5, BoardHeight-2))
	assert.Equal(t, [BoardWidth]int{}, board.Grid[BoardHeight-3])
}

func TestClearLinesTetris(t *testing.T) {
	board := NewBoard()
	for y := BoardHeight - 4; y < BoardHeight; y++ {
		fillRow(board, y, 1)
	}
	assert.Equal(t, 4, board.ClearLines())
	assert.Equal(t, Grid{}, board.Grid)
}

func TestGhostPosition(t *testing.T) {
	board := NewBoard()
	piece := NewTetromino(ShapeO)

	assert.Equal(t, BoardHeight-2, board.GhostPosition(piece, 0, 0))

	board.Grid[10][1] = 1
	assert.Equal(t, 8, board.GhostPosition(piece, 0, 0))
	assert.Equal(t, BoardHeight-2, board.GhostPosition(piece, 0, 11))
}

func TestIsGameOver(t *testing.T) {
	board := NewBoard()
	assert.False(t, board.IsGameOver())

	board.Grid[1][3] = 2
	assert.False(t, board.IsGameOver())

	board.Grid[0][9] = 2
	assert.True(t, board.IsGameOver())

	board.Reset()
	assert.False(t, board.IsGameOver())
}
