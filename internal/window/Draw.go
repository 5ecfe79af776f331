package window

import (
	"fmt"
	"image/color"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// leave a 50px margin above and below the board
	cellSize = (game.DefaultScreenHeight - 100) / game.BoardHeight

	boardPixelWidth  = game.BoardWidth * cellSize
	boardPixelHeight = game.BoardHeight * cellSize
	boardOffsetX     = (game.DefaultScreenWidth - boardPixelWidth) / 2
	boardOffsetY     = (game.DefaultScreenHeight - boardPixelHeight) / 2

	previewOffsetX = boardOffsetX + boardPixelWidth + 40
	previewOffsetY = boardOffsetY + 20
	statsOffsetX   = boardOffsetX - 180
	statsOffsetY   = boardOffsetY + 20

	ghostAlpha = 128
)

var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	boardColor      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	gridLineColor   = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}

	pieceColors = map[int]color.RGBA{
		1: {R: 0, G: 240, B: 240, A: 255},
		2: {R: 240, G: 240, B: 0, A: 255},
		3: {R: 160, G: 0, B: 240, A: 255},
		4: {R: 0, G: 240, B: 0, A: 255},
		5: {R: 240, G: 0, B: 0, A: 255},
		6: {R: 0, G: 0, B: 240, A: 255},
		7: {R: 240, G: 160, B: 0, A: 255},
	}
)

type rect struct {
	x, y, w, h float32
}

// cellRect is the screen rectangle of board cell (x, y).
func cellRect(x, y int) rect {
	return rect{
		x: float32(boardOffsetX + x*cellSize),
		y: float32(boardOffsetY + y*cellSize),
		w: cellSize - 1,
		h: cellSize - 1,
	}
}

func pieceColor(id int) color.RGBA {
	c, ok := pieceColors[id]
	if !ok {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return c
}

// ghostColor is the piece colour at half opacity.
func ghostColor(id int) color.NRGBA {
	c := pieceColor(id)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: ghostAlpha}
}

func fillRect(dst *ebiten.Image, r rect, clr color.Color) {
	vector.DrawFilledRect(dst, r.x, r.y, r.w, r.h, clr, false)
}

// pieceCells calls fn for every occupied cell of piece at pos that lies on
// the board.
func pieceCells(piece *game.Tetromino, pos game.Position, fn func(x, y int)) {
	if piece == nil {
		return
	}
	for dy, row := range piece.Shape {
		for dx, cell := range row {
			x, y := pos.X+dx, pos.Y+dy
			if cell == 0 || x < 0 || x >= game.BoardWidth || y < 0 || y >= game.BoardHeight {
				continue
			}
			fn(x, y)
		}
	}
}

func drawFrame(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)
	drawBoard(screen, snap)
	drawNext(screen, snap.Next)
	drawStats(screen, snap)

	switch {
	case snap.Over:
		drawOverlay(screen, "GAME OVER", "press R to restart, ESC to quit")
	case snap.Paused:
		drawOverlay(screen, "PAUSED", "press P to resume")
	}
}

func drawBoard(screen *ebiten.Image, snap game.Snapshot) {
	fillRect(screen, rect{
		x: boardOffsetX - 2, y: boardOffsetY - 2,
		w: boardPixelWidth + 4, h: boardPixelHeight + 4,
	}, gridLineColor)
	fillRect(screen, rect{x: boardOffsetX, y: boardOffsetY, w: boardPixelWidth, h: boardPixelHeight}, boardColor)

	for y, row := range snap.Grid {
		for x, cell := range row {
			if cell == game.EmptyCell {
				fillRect(screen, cellRect(x, y), gridLineColor)
				continue
			}
			fillRect(screen, cellRect(x, y), pieceColor(cell))
		}
	}
	if snap.Current == nil {
		return
	}
	if !snap.Over {
		pieceCells(snap.Current, snap.Ghost, func(x, y int) {
			if snap.Grid[y][x] == game.EmptyCell {
				fillRect(screen, cellRect(x, y), ghostColor(snap.Current.Color))
			}
		})
	}
	pieceCells(snap.Current, snap.Position, func(x, y int) {
		fillRect(screen, cellRect(x, y), pieceColor(snap.Current.Color))
	})
}

func drawNext(screen *ebiten.Image, next *game.Tetromino) {
	ebitenutil.DebugPrintAt(screen, "NEXT", previewOffsetX, previewOffsetY-16)
	if next == nil {
		return
	}
	for dy, row := range next.Shape {
		for dx, cell := range row {
			if cell == 0 {
				continue
			}
			fillRect(screen, rect{
				x: float32(previewOffsetX + dx*cellSize),
				y: float32(previewOffsetY + dy*cellSize),
				w: cellSize - 1,
				h: cellSize - 1,
			}, pieceColor(next.Color))
		}
	}
}

func statsLines(snap game.Snapshot) []string {
	return []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LEVEL %d", snap.Level),
		fmt.Sprintf("LINES %d", snap.Lines),
	}
}

func drawStats(screen *ebiten.Image, snap game.Snapshot) {
	for i, line := range statsLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, statsOffsetX, statsOffsetY+i*24)
	}
}

func drawOverlay(screen *ebiten.Image, title, hint string) {
	fillRect(screen, rect{x: boardOffsetX, y: boardOffsetY, w: boardPixelWidth, h: boardPixelHeight}, overlayColor)
	// debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, title, centeredTextX(title), game.DefaultScreenHeight/2-16)
	ebitenutil.DebugPrintAt(screen, hint, centeredTextX(hint), game.DefaultScreenHeight/2+4)
}

func centeredTextX(s string) int {
	return (game.DefaultScreenWidth - len(s)*6) / 2
}
