package bouncyball

// State is the run state of a World.
type State uint8

const (
	StateRunning State = iota
	StateStopped       // terminal
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// World owns the ball, its trail and the run state. Drivers feed it quit
// requests and call Frame once per tick.
type World struct {
	Ball  Ball
	Trail *Trail

	// Width and Height bound the ball.
	Width, Height float64

	// Background is used to clear the surface, Foreground for the trail and
	// the ball.
	Background Color
	Foreground Color

	state  State
	frames uint64
}

// NewWorld returns a running world with the ball centered in a
// width x height box and an all-zero trail.
func NewWorld(width, height int) *World {
	w, h := float64(width), float64(height)
	return &World{
		Ball:       NewBall(w, h),
		Trail:      NewTrail(),
		Width:      w,
		Height:     h,
		Background: ColorLight,
		Foreground: ColorDark,
	}
}

// State returns the current run state.
func (w *World) State() State {
	return w.state
}

// Running reports whether the world has not been stopped yet.
func (w *World) Running() bool {
	return w.state == StateRunning
}

// Stop moves the world to StateStopped. It does not cut the current frame
// short: a driver that sees a quit request still runs Frame for that tick and
// exits before the next one.
func (w *World) Stop() {
	w.state = StateStopped
}

// Frames returns the number of frames executed so far.
func (w *World) Frames() uint64 {
	return w.frames
}

// Frame clears dst, draws the trail and the ball at its pre-step position,
// then steps the physics and records the new position in the trail.
func (w *World) Frame(dst Surface) {
	Fill(dst, w.Background)
	w.Trail.Render(dst, w.Foreground)
	FillCircle(dst, w.Ball, w.Foreground)

	w.Ball.Step(w.Width, w.Height)
	w.Trail.Push(w.Ball)
	w.frames++
}
