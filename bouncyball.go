package bouncyball

import "image/color"

// Window and simulation constants. Every value is fixed at compile time.
const (
	ScreenWidth  = 900
	ScreenHeight = 600

	Gravity    = 0.2 // added to VY once per frame
	Dampening  = 0.8 // fraction of velocity kept after a wall bounce
	TrailLen   = 99  // ghost circles kept behind the ball
	TrailWidth = 8   // display radius scale of the newest ghost

	BallRadius = 30
	BallVX     = 25
	BallVY     = 25

	// FrameDelayMS is the fixed pause between frames, in milliseconds.
	FrameDelayMS = 20
)

// Palette. Only light and dark are drawn; white and black are kept for
// anyone poking at the scene.
var (
	ColorWhite = ColorFromHex(0xFFFFFF)
	ColorBlack = ColorFromHex(0x000000)
	ColorLight = ColorFromHex(0xC7F0D8)
	ColorDark  = ColorFromHex(0x43523D)
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorFromHex builds an opaque Color from a 0xRRGGBB value. Bits above the
// low 24 are ignored.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xFF) / 255,
		G: float64(hex>>8&0xFF) / 255,
		B: float64(hex&0xFF) / 255,
		A: 1,
	}
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
