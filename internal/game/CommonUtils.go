package game

// Offset is a (dx, dy) shift applied to a piece position.
type Offset struct {
	Dx, Dy int
}

// Position is the board coordinate of a piece bitmap's top-left corner.
type Position struct {
	X, Y int
}

func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.Dx, Y: p.Y + o.Dy}
}

// Movement offsets used by the input layer.
var (
	OffsetLeft  = Offset{Dx: -1, Dy: 0}
	OffsetRight = Offset{Dx: 1, Dy: 0}
	OffsetDown  = Offset{Dx: 0, Dy: 1}
)

// Bitmap is a square occupancy matrix, indexed [row][col].
type Bitmap [][]int

func (b Bitmap) Clone() Bitmap {
	clone := make(Bitmap, len(b))
	for i, row := range b {
		clone[i] = append([]int(nil), row...)
	}
	return clone
}

func (b Bitmap) Equal(other Bitmap) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if len(b[i]) != len(other[i]) {
			return false
		}
		for j := range b[i] {
			if b[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// CellCount is the number of occupied cells.
func (b Bitmap) CellCount() int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell != 0 {
				n++
			}
		}
	}
	return n
}
