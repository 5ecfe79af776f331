package window

import (
	"fmt"
	"io"
	"time"

	"github.com/Mshel/blockfall/internal/game"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type trigger int

const (
	// fires every tick the key is down; the InputHandler cooldown limits it
	triggerHeld trigger = iota
	// fires once per press
	triggerPress
)

type keyBinding struct {
	key     ebiten.Key
	action  game.Action
	trigger trigger
}

// keyBindings is the static key table. Hard drop is polled while held and
// relies on the InputHandler to fire once per press.
var keyBindings = []keyBinding{
	{ebiten.KeyArrowLeft, game.ActionMoveLeft, triggerHeld},
	{ebiten.KeyArrowRight, game.ActionMoveRight, triggerHeld},
	{ebiten.KeyArrowDown, game.ActionSoftDrop, triggerHeld},
	{ebiten.KeyArrowUp, game.ActionRotateClockwise, triggerHeld},
	{ebiten.KeyZ, game.ActionRotateCounterClockwise, triggerHeld},
	{ebiten.KeySpace, game.ActionHardDrop, triggerHeld},
	{ebiten.KeyP, game.ActionPause, triggerPress},
	{ebiten.KeyEscape, game.ActionQuit, triggerPress},
}

const restartKey = ebiten.KeyR

// Game implements ebiten.Game on top of a GameState.
type Game struct {
	state    *game.GameState
	input    *game.InputHandler
	keys     KeySource
	logger   *log.Logger
	clock    func() time.Time
	newState func() *game.GameState

	lastDrop time.Time
	games    int
	// set when Draw panics, returned by the next Update
	drawErr  error
}

func NewGame(newState func() *game.GameState, keys KeySource, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		state:    newState(),
		input:    game.NewInputHandler(logger),
		keys:     keys,
		logger:   logger,
		clock:    time.Now,
		newState: newState,
		games:    1,
	}
}

// Update advances one tick. A panic is returned as an error so RunGame
// stops cleanly.
func (g *Game) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update panic: %v", r)
		}
	}()
	if g.drawErr != nil {
		return g.drawErr
	}
	return g.update()
}

func (g *Game) update() error {
	now := g.clock()
	if g.lastDrop.IsZero() {
		g.lastDrop = now
	}

	for _, b := range keyBindings {
		if g.keys.IsKeyJustReleased(b.key) {
			g.input.Release(b.action)
		}

		var fire bool
		switch b.trigger {
		case triggerHeld:
			fire = g.keys.IsKeyPressed(b.key)
		case triggerPress:
			fire = g.keys.IsKeyJustPressed(b.key)
		}
		if fire && !g.input.Press(g.state, b.action, now) {
			g.logger.Info("Quitting", "score", g.state.Score, "level", g.state.Level)
			return ebiten.Termination
		}
	}

	switch g.state.Status() {
	case game.StatusActive:
		if now.Sub(g.lastDrop) > g.state.DropDelay() {
			g.state.DropPiece()
			g.lastDrop = now
		}
	case game.StatusPaused:
		g.lastDrop = now
	case game.StatusGameOver:
		if g.keys.IsKeyJustPressed(restartKey) {
			g.restart(now)
		}
	}
	return nil
}

func (g *Game) restart(now time.Time) {
	g.games++
	g.logger.Info("Starting new game", "game", g.games)
	// the input handler is kept so a key held across the restart stays
	// disarmed
	g.state = g.newState()
	g.lastDrop = now
}

func (g *Game) Draw(screen *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil {
			g.drawErr = fmt.Errorf("draw panic: %v", r)
		}
	}()
	drawFrame(screen, g.state.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.DefaultScreenWidth, game.DefaultScreenHeight
}

// runGame runs the loop and converts a panic inside it into an error.
func runGame(g ebiten.Game, run func(ebiten.Game) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("game loop panic: %v", r)
		}
	}()
	return run(g)
}

// Run opens the 800x600 window and blocks until the player quits.
func Run(cfg game.Config, logger *log.Logger) error {
	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Blockfall")
	ebiten.SetTPS(cfg.FrameRate)

	seed := cfg.Seed
	newState := func() *game.GameState {
		state := game.NewGameState(game.WithLogger(logger), game.WithSeed(seed))
		if seed != 0 {
			seed++
		}
		return state
	}

	if err := runGame(NewGame(newState, EbitenKeySource{}, logger), ebiten.RunGame); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
