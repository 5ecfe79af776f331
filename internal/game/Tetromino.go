package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

type ShapeName string

const (
	ShapeI ShapeName = "I"
	ShapeO ShapeName = "O"
	ShapeT ShapeName = "T"
	ShapeS ShapeName = "S"
	ShapeZ ShapeName = "Z"
	ShapeJ ShapeName = "J"
	ShapeL ShapeName = "L"
)

// ShapeNames lists the catalog in a fixed order, used for uniform draws.
var ShapeNames = []ShapeName{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

var ErrUnknownShape = errors.New("unknown shape")

type shapeSpec struct {
	bitmap Bitmap
	color  int
}

var shapeCatalog = map[ShapeName]shapeSpec{
	ShapeI: {color: 1, bitmap: Bitmap{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}},
	ShapeO: {color: 2, bitmap: Bitmap{
		{1, 1},
		{1, 1},
	}},
	ShapeT: {color: 3, bitmap: Bitmap{
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	}},
	ShapeS: {color: 4, bitmap: Bitmap{
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	}},
	ShapeZ: {color: 5, bitmap: Bitmap{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	}},
	ShapeJ: {color: 6, bitmap: Bitmap{
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	}},
	ShapeL: {color: 7, bitmap: Bitmap{
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	}},
}

// Wall kick candidates. This is a fixed lookup per shape family, a rough
// approximation of SRS that does not cover every edge case.
var (
	wallKicksI       = []Offset{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}
	wallKicksDefault = []Offset{{0, 0}, {-1, 0}, {1, 0}, {0, -1}}
)

func ParseShapeName(name string) (ShapeName, error) {
	shape := ShapeName(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := shapeCatalog[shape]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return shape, nil
}

type Tetromino struct {
	Name     ShapeName
	Shape    Bitmap
	Color    int
	Rotation int
}

// NewTetromino copies the catalog entry for name. An unknown name is a
// programming error and panics.
func NewTetromino(name ShapeName) *Tetromino {
	spec, ok := shapeCatalog[name]
	if !ok {
		panic(fmt.Sprintf("game: %v: %q", ErrUnknownShape, name))
	}
	return &Tetromino{
		Name:     name,
		Shape:    spec.bitmap.Clone(),
		Color:    spec.color,
		Rotation: 0,
	}
}

func RandomTetromino(rng *rand.Rand) *Tetromino {
	return NewTetromino(ShapeNames[rng.Intn(len(ShapeNames))])
}

// RotateClockwise returns the shape turned 90 degrees clockwise. The piece
// itself is not modified.
func (t *Tetromino) RotateClockwise() Bitmap {
	n := len(t.Shape)
	rotated := make(Bitmap, n)
	for i := 0; i < n; i++ {
		rotated[i] = make([]int, n)
		for j := 0; j < n; j++ {
			rotated[i][j] = t.Shape[n-1-j][i]
		}
	}
	return rotated
}

func (t *Tetromino) RotateCounterClockwise() Bitmap {
	n := len(t.Shape)
	rotated := make(Bitmap, n)
	for i := 0; i < n; i++ {
		rotated[i] = make([]int, n)
		for j := 0; j < n; j++ {
			rotated[i][j] = t.Shape[j][n-1-i]
		}
	}
	return rotated
}

// WallKickTests returns the offsets to try, in order, after rotating into
// the given rotation state. Every rotation state shares the same table.
func (t *Tetromino) WallKickTests(rotation int) []Offset {
	if t.Name == ShapeI {
		return wallKicksI
	}
	return wallKicksDefault
}

// WithShape returns a copy of the piece carrying shape and rotation, used to
// test a rotation before committing it.
func (t *Tetromino) WithShape(shape Bitmap, rotation int) *Tetromino {
	return &Tetromino{
		Name:     t.Name,
		Shape:    shape,
		Color:    t.Color,
		Rotation: rotation,
	}
}

func (t *Tetromino) Clone() *Tetromino {
	return t.WithShape(t.Shape.Clone(), t.Rotation)
}

func (t *Tetromino) Width() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return len(t.Shape[0])
}

func (t *Tetromino) Height() int {
	return len(t.Shape)
}

func (t *Tetromino) String() string {
	return fmt.Sprintf("Tetromino(%s)", t.Name)
}

func nextRotation(rotation int, clockwise bool) int {
	if clockwise {
		return (rotation + 1) % 4
	}
	return (rotation + 3) % 4
}
