package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

type Status int

const (
	StatusActive Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", int(s))
	}
}

// lineClearScores is indexed by the number of rows cleared at once.
var lineClearScores = map[int]int{
	1: 100,
	2: 300,
	3: 500,
	4: 800,
}

// GameState owns the board and the piece lifecycle. It is not safe for
// concurrent use; the frontends drive it from a single loop.
type GameState struct {
	Board        *Board
	Score        int
	Level        int
	LinesCleared int
	Current      *Tetromino
	Next         *Tetromino
	Position     Position
	Paused       bool
	Over         bool

	rng    *rand.Rand
	queue  []ShapeName
	logger *log.Logger
}

type Option func(*GameState)

func WithLogger(logger *log.Logger) Option {
	return func(gs *GameState) {
		if logger != nil {
			gs.logger = logger
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(gs *GameState) {
		if rng != nil {
			gs.rng = rng
		}
	}
}

// WithSeed seeds the piece generator. Zero means time based.
func WithSeed(seed int64) Option {
	return func(gs *GameState) {
		if seed != 0 {
			gs.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithFirstPieces makes the generator hand out the given shapes before
// falling back to random draws.
func WithFirstPieces(shapes ...ShapeName) Option {
	return func(gs *GameState) {
		gs.queue = append(gs.queue, shapes...)
	}
}

func NewGameState(opts ...Option) *GameState {
	gs := &GameState{
		Board:  NewBoard(),
		Level:  1,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(gs)
	}
	gs.SpawnNewPiece()
	return gs
}

func (gs *GameState) Status() Status {
	switch {
	case gs.Over:
		return StatusGameOver
	case gs.Paused:
		return StatusPaused
	default:
		return StatusActive
	}
}

func (gs *GameState) drawPiece() *Tetromino {
	if len(gs.queue) > 0 {
		name := gs.queue[0]
		gs.queue = gs.queue[1:]
		return NewTetromino(name)
	}
	return RandomTetromino(gs.rng)
}

// SpawnNewPiece promotes the lookahead piece and draws a new one. It reports
// false and ends the game when the spawn position is already blocked.
func (gs *GameState) SpawnNewPiece() bool {
	if gs.Next != nil {
		gs.Current = gs.Next
	} else {
		gs.Current = gs.drawPiece()
	}
	gs.Next = gs.drawPiece()

	gs.Position = Position{
		X: (BoardWidth - gs.Current.Width()) / 2,
		Y: 0,
	}
	gs.logger.Debug("Spawning new piece", "piece", gs.Current, "next", gs.Next, "x", gs.Position.X, "y", gs.Position.Y)

	if !gs.Board.IsValidMove(gs.Current, gs.Position.X, gs.Position.Y) {
		gs.Over = true
		gs.logger.Info("Game over: spawn position blocked", "piece", gs.Current, "score", gs.Score, "level", gs.Level, "lines", gs.LinesCleared)
		return false
	}
	return true
}

func (gs *GameState) canMutate() bool {
	return !gs.Over && !gs.Paused && gs.Current != nil
}

func (gs *GameState) MovePiece(dx, dy int) bool {
	if !gs.canMutate() {
		return false
	}
	next := gs.Position.Add(Offset{Dx: dx, Dy: dy})
	if !gs.Board.IsValidMove(gs.Current, next.X, next.Y) {
		return false
	}
	gs.Position = next
	return true
}

// RotatePiece tries the rotated shape at each wall kick offset and commits
// the first one that fits. On failure the piece is left as it was.
func (gs *GameState) RotatePiece(clockwise bool) bool {
	if !gs.canMutate() {
		return false
	}

	var shape Bitmap
	if clockwise {
		shape = gs.Current.RotateClockwise()
	} else {
		shape = gs.Current.RotateCounterClockwise()
	}
	rotation := nextRotation(gs.Current.Rotation, clockwise)
	candidate := gs.Current.WithShape(shape, rotation)

	for _, kick := range candidate.WallKickTests(rotation) {
		test := gs.Position.Add(kick)
		if gs.Board.IsValidMove(candidate, test.X, test.Y) {
			gs.Current = candidate
			gs.Position = test
			return true
		}
	}
	gs.logger.Debug("Rotation rejected", "piece", gs.Current, "clockwise", clockwise)
	return false
}

// DropPiece moves the piece down one row. When it cannot move it is locked,
// lines are cleared and the next piece spawns; the return value is true only
// while the piece is still falling.
func (gs *GameState) DropPiece() bool {
	if !gs.canMutate() {
		return false
	}
	if gs.MovePiece(0, 1) {
		return true
	}
	gs.lockPiece()
	return false
}

// SoftDrop moves the piece down one row for a single point. It never locks.
func (gs *GameState) SoftDrop() bool {
	if !gs.MovePiece(0, 1) {
		return false
	}
	gs.Score += softDropCellBonus
	return true
}

// HardDrop drops the piece as far as it goes, awards two points per row
// travelled, then locks it. It returns the number of rows travelled.
func (gs *GameState) HardDrop() int {
	if !gs.canMutate() {
		return 0
	}
	cells := 0
	for gs.MovePiece(0, 1) {
		cells++
	}
	gs.logger.Debug("Hard drop", "piece", gs.Current, "cells", cells)
	gs.Score += cells * hardDropCellBonus
	gs.lockPiece()
	return cells
}

func (gs *GameState) lockPiece() {
	gs.logger.Debug("Piece locked", "piece", gs.Current, "x", gs.Position.X, "y", gs.Position.Y)
	gs.Board.PlacePiece(gs.Current, gs.Position.X, gs.Position.Y)

	if lines := gs.Board.ClearLines(); lines > 0 {
		gs.UpdateScore(lines)
	}
	gs.SpawnNewPiece()
}

// UpdateScore credits a clear of lines rows at the current level, then
// recomputes the level from the running line total.
func (gs *GameState) UpdateScore(lines int) {
	points, ok := lineClearScores[lines]
	if !ok {
		return
	}
	gs.Score += points * gs.Level
	gs.LinesCleared += lines

	level := gs.LinesCleared/linesPerLevel + 1
	gs.logger.Debug("Lines cleared", "lines", lines, "points", points*gs.Level, "total", gs.LinesCleared)
	if level != gs.Level {
		gs.logger.Info("Level up", "level", level, "lines", gs.LinesCleared)
	}
	gs.Level = level
}

func (gs *GameState) GhostPosition() Position {
	if gs.Current == nil {
		return gs.Position
	}
	return Position{
		X: gs.Position.X,
		Y: gs.Board.GhostPosition(gs.Current, gs.Position.X, gs.Position.Y),
	}
}

func (gs *GameState) TogglePause() {
	if gs.Over {
		return
	}
	gs.Paused = !gs.Paused
	gs.logger.Debug("Pause toggled", "paused", gs.Paused)
}

// DropDelay is the wait between automatic drops; it shrinks with the level
// and never goes below 50ms.
func (gs *GameState) DropDelay() time.Duration {
	return max(minDropDelay, baseDropDelay-time.Duration(gs.Level)*dropDelayStep)
}

// Snapshot is a read-only copy of everything a renderer needs for a frame.
type Snapshot struct {
	Grid     Grid
	Current  *Tetromino
	Position Position
	Ghost    Position
	Next     *Tetromino
	Score    int
	Level    int
	Lines    int
	Paused   bool
	Over     bool
}

func (gs *GameState) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:     gs.Board.GridCopy(),
		Position: gs.Position,
		Ghost:    gs.GhostPosition(),
		Score:    gs.Score,
		Level:    gs.Level,
		Lines:    gs.LinesCleared,
		Paused:   gs.Paused,
		Over:     gs.Over,
	}
	if gs.Current != nil {
		snap.Current = gs.Current.Clone()
	}
	if gs.Next != nil {
		snap.Next = gs.Next.Clone()
	}
	return snap
}
