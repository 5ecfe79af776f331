package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTetromino(t *testing.T) {
	piece := NewTetromino(ShapeT)

	assert.Equal(t, ShapeT, piece.Name)
	assert.Equal(t, 3, piece.Color)
	assert.Equal(t, 0, piece.Rotation)
	assert.Equal(t, 3, piece.Width())
	assert.Equal(t, 3, piece.Height())
	assert.Equal(t, "Tetromino(T)", piece.String())
}

func TestNewTetrominoOwnsItsShape(t *testing.T) {
	a := NewTetromino(ShapeL)
	a.Shape[0][0] = 1

	b := NewTetromino(ShapeL)
	assert.Equal(t, 0, b.Shape[0][0])
}

func TestNewTetrominoUnknownShapePanics(t *testing.T) {
	assert.Panics(t, func() { NewTetromino(ShapeName("X")) })
}

func TestEveryShapeHasFourCellsAndDistinctColor(t *testing.T) {
	colors := make(map[int]ShapeName)
	for _, name := range ShapeNames {
		piece := NewTetromino(name)
		assert.Equal(t, 4, piece.Shape.CellCount(), "shape %s", name)
		assert.Equal(t, piece.Width(), piece.Height(), "shape %s must be square", name)
		assert.GreaterOrEqual(t, piece.Color, 1)
		assert.LessOrEqual(t, piece.Color, 7)

		_, dup := colors[piece.Color]
		assert.False(t, dup, "color %d reused by %s", piece.Color, name)
		colors[piece.Color] = name
	}
}

func TestRandomTetrominoCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[ShapeName]bool)
	for i := 0; i < 500; i++ {
		seen[RandomTetromino(rng).Name] = true
	}
	assert.Len(t, seen, len(ShapeNames))
}

func TestRotateClockwiseDoesNotMutate(t *testing.T) {
	piece := NewTetromino(ShapeT)
	original := piece.Shape.Clone()

	rotated := piece.RotateClockwise()

	assert.True(t, piece.Shape.Equal(original))
	assert.Equal(t, Bitmap{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}, rotated)
}

func TestRotateCounterClockwise(t *testing.T) {
	piece := NewTetromino(ShapeT)

	assert.Equal(t, Bitmap{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	}, piece.RotateCounterClockwise())
}

func TestFourClockwiseRotationsAreIdentity(t *testing.T) {
	for _, name := range ShapeNames {
		t.Run(string(name), func(t *testing.T) {
			piece := NewTetromino(name)
			original := piece.Shape.Clone()
			for i := 0; i < 4; i++ {
				piece.Shape = piece.RotateClockwise()
			}
			assert.True(t, piece.Shape.Equal(original))
		})
	}
}

func TestClockwiseThenCounterClockwiseIsIdentity(t *testing.T) {
	for _, name := range ShapeNames {
		t.Run(string(name), func(t *testing.T) {
			piece := NewTetromino(name)
			original := piece.Shape.Clone()
			piece.Shape = piece.RotateClockwise()
			piece.Shape = piece.RotateCounterClockwise()
			assert.True(t, piece.Shape.Equal(original))
		})
	}
}

func TestWallKickTests(t *testing.T) {
	i := NewTetromino(ShapeI)
	assert.Equal(t, []Offset{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}, i.WallKickTests(1))

	for _, name := range []ShapeName{ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL} {
		piece := NewTetromino(name)
		assert.Equal(t, []Offset{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}, piece.WallKickTests(2), "shape %s", name)
	}
}

func TestParseShapeName(t *testing.T) {
	shape, err := ParseShapeName(" s ")
	require.NoError(t, err)
	assert.Equal(t, ShapeS, shape)

	_, err = ParseShapeName("Q")
	assert.True(t, errors.Is(err, ErrUnknownShape))
}

func TestNextRotation(t *testing.T) {
	assert.Equal(t, 1, nextRotation(0, true))
	assert.Equal(t, 0, nextRotation(3, true))
	assert.Equal(t, 3, nextRotation(0, false))
	assert.Equal(t, 1, nextRotation(2, false))
}
