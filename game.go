package bouncyball

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives a World through ebiten. Update polls for quit, runs one
// simulation frame into a CPU framebuffer and handles any scripted steps.
// Draw presents that framebuffer.
//
// Game implements ebiten.Game.
type Game struct {
	world *World
	fb    *Framebuffer

	width, height int
	tps           int

	fps    *fpsOverlay
	runner *TestRunner

	// ScreenshotDir is the directory where screenshot PNGs are written.
	// Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string

	quitRequested bool
	pollQuit      func() bool
}

// NewGame builds a Game from cfg. Zero fields in cfg fall back to
// DefaultRunConfig. It fails only when cfg.TestScript is set and invalid.
func NewGame(cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()

	g := &Game{
		world:         NewWorld(cfg.Width, cfg.Height),
		fb:            NewFramebuffer(cfg.Width, cfg.Height),
		width:         cfg.Width,
		height:        cfg.Height,
		tps:           cfg.TPS,
		ScreenshotDir: cfg.ScreenshotDir,
		pollQuit:      windowQuitRequested,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if len(cfg.TestScript) > 0 {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			return nil, err
		}
		g.runner = runner
	}
	return g, nil
}

var _ ebiten.Game = (*Game)(nil)

// World returns the simulated world.
func (g *Game) World() *World {
	return g.world
}

// Framebuffer returns the surface the world is drawn into.
func (g *Game) Framebuffer() *Framebuffer {
	return g.fb
}

// RequestQuit asks the game to stop. The request is seen by the next Update,
// which still runs its frame in full.
func (g *Game) RequestQuit() {
	g.quitRequested = true
}

// Update runs one iteration of the main loop. It returns ebiten.Termination
// once the world has been stopped, so the frame in which the quit arrived is
// simulated and presented before the window closes.
func (g *Game) Update() error {
	if !g.world.Running() {
		return ebiten.Termination
	}

	if g.runner != nil {
		g.runner.step(g)
	}
	if g.quitRequested || (g.pollQuit != nil && g.pollQuit()) {
		g.quitRequested = false
		g.world.Stop()
	}

	g.world.Frame(g.fb)
	g.flushScreenshots()

	if g.fps != nil {
		g.fps.update(1 / float64(g.tps))
	}
	return nil
}

// Draw uploads the framebuffer to screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.fb.Image().Pix)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the logical screen at the configured size regardless of the
// window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// windowQuitRequested drains ebiten's view of the event queue for this tick:
// a close request on the window or a fresh Escape press.
func windowQuitRequested() bool {
	closing := ebiten.IsWindowBeingClosed()
	escape := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return closing || escape
}
