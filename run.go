package bouncyball

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds the window and loop settings for Run. Zero fields take the
// values from DefaultRunConfig.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// TPS is the fixed simulation rate. The default of 50 gives one frame
	// every FrameDelayMS milliseconds.
	TPS int

	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool

	ScreenshotDir string

	// TestScript, when non-empty, is a JSON script parsed by LoadTestScript
	// and stepped once per frame.
	TestScript []byte
}

// DefaultRunConfig returns the fixed configuration of the bouncing ball
// window.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "Bouncy Ball",
		Width:         ScreenWidth,
		Height:        ScreenHeight,
		TPS:           1000 / FrameDelayMS,
		ScreenshotDir: "screenshots",
	}
}

func (c RunConfig) withDefaults() RunConfig {
	def := DefaultRunConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = def.ScreenshotDir
	}
	return c
}

// Run opens a fixed-size window and blocks until the user quits. It returns
// nil after a normal quit and an error if the window or graphics backend
// could not be initialized.
func Run(cfg RunConfig) error {
	cfg = cfg.withDefaults()

	g, err := NewGame(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
