//go:build sdl

// Bouncyball-sdl runs the bouncing ball straight on an SDL window surface,
// pacing frames with SDL_Delay instead of ebiten's fixed TPS.
//
//	go run -tags sdl ./cmd/bouncyball-sdl
package main

import (
	"fmt"
	"image"
	"log"

	bouncyball "github.com/mavericksy/BouncyBall"
	"github.com/veandco/go-sdl2/sdl"
)

// windowSurface adapts an SDL window surface to bouncyball.Surface.
// SDL_FillRect does its own clipping.
type windowSurface struct {
	s *sdl.Surface
}

func (w windowSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(w.s.W), int(w.s.H))
}

func (w windowSurface) FillRect(r image.Rectangle, c bouncyball.Color) {
	px := c.RGBA()
	rect := sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
	_ = w.s.FillRect(&rect, sdl.MapRGB(w.s.Format, px.R, px.G, px.B))
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL INIT: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("Bouncy Ball",
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		bouncyball.ScreenWidth, bouncyball.ScreenHeight, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	surface, err := window.GetSurface()
	if err != nil {
		return fmt.Errorf("window surface: %w", err)
	}
	dst := windowSurface{s: surface}

	world := bouncyball.NewWorld(bouncyball.ScreenWidth, bouncyball.ScreenHeight)
	for world.Running() {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				world.Stop()
			}
		}

		world.Frame(dst)

		if err := window.UpdateSurface(); err != nil {
			log.Printf("update surface: %v", err)
		}
		sdl.Delay(bouncyball.FrameDelayMS)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
