package game

// Grid holds the locked cells, row 0 at the top.
type Grid [BoardHeight][BoardWidth]int

// Board is created once per game and mutated in place.
type Board struct {
	Grid Grid
}

func NewBoard() *Board {
	return &Board{}
}

// IsValidMove reports whether piece fits with its top-left corner at
// (offsetX, offsetY). Cells above the board are allowed so pieces can spawn
// partially hidden.
func (b *Board) IsValidMove(piece *Tetromino, offsetX, offsetY int) bool {
	for y, row := range piece.Shape {
		for x, cell := range row {
			if cell == 0 {
				continue
			}
			boardX, boardY := x+offsetX, y+offsetY
			if boardX < 0 || boardX >= BoardWidth || boardY >= BoardHeight {
				return false
			}
			if boardY >= 0 && b.Grid[boardY][boardX] != EmptyCell {
				return false
			}
		}
	}
	return true
}

// PlacePiece writes the piece colour into the grid. Cells outside the
// visible rows are dropped.
func (b *Board) PlacePiece(piece *Tetromino, posX, posY int) {
	for y, row := range piece.Shape {
		for x, cell := range row {
			boardX, boardY := x+posX, y+posY
			if cell == 0 || boardY < 0 || boardY >= BoardHeight {
				continue
			}
			if boardX < 0 || boardX >= BoardWidth {
				continue
			}
			b.Grid[boardY][boardX] = piece.Color
		}
	}
}

// ClearLines removes every full row and returns how many were removed.
func (b *Board) ClearLines() int {
	cleared := 0
	y := BoardHeight - 1
	for y >= 0 {
		if !b.isRowFull(y) {
			y--
			continue
		}
		cleared++
		for moveY := y; moveY > 0; moveY-- {
			b.Grid[moveY] = b.Grid[moveY-1]
		}
		b.Grid[0] = [BoardWidth]int{}
		// a new row now sits at y, check it again before moving up
	}
	return cleared
}

func (b *Board) isRowFull(y int) bool {
	for _, cell := range b.Grid[y] {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// GhostPosition is the lowest y reachable by dropping piece straight down
// from (posX, posY).
func (b *Board) GhostPosition(piece *Tetromino, posX, posY int) int {
	ghostY := posY
	for b.IsValidMove(piece, posX, ghostY+1) {
		ghostY++
	}
	return ghostY
}

func (b *Board) IsGameOver() bool {
	for _, cell := range b.Grid[0] {
		if cell != EmptyCell {
			return true
		}
	}
	return false
}

func (b *Board) Cell(x, y int) int {
	return b.Grid[y][x]
}

// GridCopy returns the grid by value; callers may keep it across frames.
func (b *Board) GridCopy() Grid {
	return b.Grid
}

func (b *Board) Reset() {
	b.Grid = Grid{}
}
