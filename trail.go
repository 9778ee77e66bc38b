package bouncyball

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Trail is a fixed-length history of ball positions, drawn as shrinking ghost
// circles behind the ball. It always holds exactly TrailLen entries; logical
// index 0 is the oldest and TrailLen-1 the newest.
//
// Storage is a ring with a head index, so Push is O(1). The display radius of
// an entry depends only on its logical age, never on the physical slot.
type Trail struct {
	buf  [TrailLen]Ball
	head int // physical slot of logical index 0

	// Taper optionally replaces the linear taper with another easing curve.
	// It is called as Taper(i, 0, TrailWidth, 100). Nil keeps the exact
	// float64 TrailWidth*i/100.
	Taper ease.TweenFunc
}

// NewTrail returns a trail filled with zero balls: degenerate circles at the
// origin. Real positions displace them one per frame.
func NewTrail() *Trail {
	return &Trail{}
}

// Len always returns TrailLen.
func (t *Trail) Len() int {
	return TrailLen
}

// At returns the entry at logical index i, 0 being the oldest. It panics if
// i is outside [0, TrailLen).
func (t *Trail) At(i int) Ball {
	if i < 0 || i >= TrailLen {
		panic(fmt.Sprintf("bouncyball: trail index %d out of range [0, %d)", i, TrailLen))
	}
	return t.buf[(t.head+i)%TrailLen]
}

// Newest returns the most recently pushed entry.
func (t *Trail) Newest() Ball {
	return t.At(TrailLen - 1)
}

// Push evicts the oldest entry and appends latest as the newest.
func (t *Trail) Push(latest Ball) {
	t.buf[t.head] = latest
	t.head = (t.head + 1) % TrailLen
}

// Radius returns the display radius for logical index i.
func (t *Trail) Radius(i int) float64 {
	if t.Taper == nil {
		return TrailWidth * float64(i) / 100
	}
	return float64(t.Taper(float32(i), 0, TrailWidth, 100))
}

// Render draws every entry oldest first, each with the radius for its
// logical index. The stored radius is ignored.
func (t *Trail) Render(dst Surface, col Color) {
	for i := 0; i < TrailLen; i++ {
		ghost := t.At(i)
		ghost.Radius = t.Radius(i)
		FillCircle(dst, ghost, col)
	}
}
