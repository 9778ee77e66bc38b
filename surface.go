package bouncyball

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a pixel buffer the simulation paints into. Implementations must
// clip rectangles that fall partly or wholly outside their bounds.
type Surface interface {
	Bounds() image.Rectangle
	FillRect(r image.Rectangle, c Color)
}

// Framebuffer is a CPU-side Surface backed by an *image.RGBA. The game
// rasterizes into it during Update and uploads it to the screen in Draw.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a width x height framebuffer cleared to
// transparent black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Bounds returns the framebuffer rectangle, always anchored at (0, 0).
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.img.Rect
}

// FillRect paints r with c. Whatever part of r lies outside the framebuffer
// is dropped.
func (f *Framebuffer) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(f.img.Rect)
	if r.Empty() {
		return
	}
	px := c.RGBA()
	if r.Dx() == 1 && r.Dy() == 1 {
		f.img.SetRGBA(r.Min.X, r.Min.Y, px)
		return
	}
	draw.Draw(f.img, r, image.NewUniform(px), image.Point{}, draw.Src)
}

// RGBAAt returns the pixel at (x, y).
func (f *Framebuffer) RGBAAt(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Image exposes the backing image. Pix is laid out as ebiten.Image.WritePixels
// expects.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// Fill paints the whole surface with c.
func Fill(dst Surface, c Color) {
	dst.FillRect(dst.Bounds(), c)
}

// FillCircle paints every unit sample of the circle's bounding box whose
// squared distance from the center is strictly less than Radius². Samples
// start at the box's top-left corner, so they only land on pixel centers
// when the circle center is integral. Each painted sample becomes a 1x1
// rect at its coordinates truncated toward zero.
func FillCircle(dst Surface, c Ball, col Color) {
	lowX, lowY := c.X-c.Radius, c.Y-c.Radius
	highX, highY := c.X+c.Radius, c.Y+c.Radius
	radSq := c.Radius * c.Radius

	for x := lowX; x < highX; x++ {
		for y := lowY; y < highY; y++ {
			dx := x - c.X
			dy := y - c.Y
			if dx*dx+dy*dy < radSq {
				px, py := int(x), int(y)
				dst.FillRect(image.Rect(px, py, px+1, py+1), col)
			}
		}
	}
}
