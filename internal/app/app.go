// Package app hosts the engine inside an ebiten window. The game loop is a
// thin shell: Update advances one engine frame, Draw copies the software
// surface to the screen, Layout reports the fixed render size.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Sumatoshi-tech/repoglyph/internal/engine"
)

// Game adapts an engine to ebiten's game interface.
type Game struct {
	engine *engine.Engine
}

// New returns a game hosting eng.
func New(eng *engine.Engine) *Game {
	return &Game{engine: eng}
}

// Update advances the visualization by one frame.
func (g *Game) Update() error {
	g.engine.Step()

	return nil
}

// Draw copies the engine surface to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.engine.Surface().Pix)
}

// Layout reports the engine surface size regardless of the window size;
// ebiten scales the surface to fit.
func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	return g.engine.Size()
}
