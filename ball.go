package bouncyball

// Ball is a circle with a velocity. Coordinates are in pixels, velocities in
// pixels per frame.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

// NewBall returns the starting ball: centered in a width x height window,
// radius BallRadius, moving down and to the right.
func NewBall(width, height float64) Ball {
	return Ball{
		X:      width / 2,
		Y:      height / 2,
		Radius: BallRadius,
		VX:     BallVX,
		VY:     BallVY,
	}
}

// Step advances the ball by one frame inside a width x height box.
//
// Position is integrated first, gravity is then added to VY, and only then
// are the walls resolved. A bounce therefore reflects a VY that already
// carries this frame's gravity. The four wall checks are independent, so a
// corner hit clamps both axes in the same step.
func (b *Ball) Step(width, height float64) {
	b.X += b.VX
	b.Y += b.VY
	b.VY += Gravity

	// right
	if b.X+b.Radius > width {
		b.X = width - b.Radius
		b.VX = -b.VX * Dampening
	}
	// bottom
	if b.Y+b.Radius > height {
		b.Y = height - b.Radius
		b.VY = -b.VY * Dampening
	}
	// top
	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.VY = -b.VY * Dampening
	}
	// left
	if b.X-b.Radius < 0 {
		b.X = b.Radius
		b.VX = -b.VX * Dampening
	}
}
