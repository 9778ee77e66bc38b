package bouncyball

import "testing"

const epsilon = 1e-9

func checkBall(t *testing.T, got, want Ball) {
	t.Helper()
	if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Y, want.Y, epsilon) ||
		!approxEqual(got.VX, want.VX, epsilon) || !approxEqual(got.VY, want.VY, epsilon) ||
		got.Radius != want.Radius {
		t.Errorf("ball = %+v, want %+v", got, want)
	}
}

func TestNewBall(t *testing.T) {
	b := NewBall(ScreenWidth, ScreenHeight)
	checkBall(t, b, Ball{X: 450, Y: 300, Radius: 30, VX: 25, VY: 25})
}

func TestStep(t *testing.T) {
	tests := []struct {
		name   string
		in     Ball
		expect Ball
	}{
		{
			"free flight from spawn",
			Ball{X: 450, Y: 300, Radius: 30, VX: 25, VY: 25},
			Ball{X: 475, Y: 325, Radius: 30, VX: 25, VY: 25.2},
		},
		{
			"right wall",
			Ball{X: ScreenWidth - 30 + 5, Y: 300, Radius: 30, VX: 10},
			Ball{X: ScreenWidth - 30, Y: 300, Radius: 30, VX: -8, VY: 0.2},
		},
		{
			"left wall",
			Ball{X: 35, Y: 300, Radius: 30, VX: -10},
			Ball{X: 30, Y: 300, Radius: 30, VX: 8, VY: 0.2},
		},
		{
			// gravity lands before the reflection: -(-5+0.2)*0.8
			"top wall",
			Ball{X: 450, Y: -5, Radius: 30, VY: -5},
			Ball{X: 450, Y: 30, Radius: 30, VY: 3.84},
		},
		{
			"bottom wall",
			Ball{X: 450, Y: 565, Radius: 30, VY: 10},
			Ball{X: 450, Y: 570, Radius: 30, VY: -8.16},
		},
		{
			"bottom right corner clamps both axes",
			Ball{X: 880, Y: 580, Radius: 30, VX: 10, VY: 10},
			Ball{X: 870, Y: 570, Radius: 30, VX: -8, VY: -8.16},
		},
		{
			"top left corner clamps both axes",
			Ball{X: 20, Y: 20, Radius: 30, VX: -4, VY: -4},
			Ball{X: 30, Y: 30, Radius: 30, VX: 3.2, VY: 3.04},
		},
		{
			"exactly touching is not a bounce",
			Ball{X: 860, Y: 300, Radius: 30, VX: 10},
			Ball{X: 870, Y: 300, Radius: 30, VX: 10, VY: 0.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.in
			b.Step(ScreenWidth, ScreenHeight)
			checkBall(t, b, tt.expect)
		})
	}
}

func TestStepAtRestOnlyGainsGravity(t *testing.T) {
	b := Ball{X: 450, Y: 300, Radius: 30}
	b.Step(ScreenWidth, ScreenHeight)
	if b.X != 450 || b.Y != 300 {
		t.Errorf("position = (%v, %v), want unchanged (450, 300)", b.X, b.Y)
	}
	if b.VX != 0 || !approxEqual(b.VY, Gravity, epsilon) {
		t.Errorf("velocity = (%v, %v), want (0, %v)", b.VX, b.VY, Gravity)
	}
}

func TestStepStaysInBounds(t *testing.T) {
	b := NewBall(ScreenWidth, ScreenHeight)
	for i := 0; i < 10000; i++ {
		b.Step(ScreenWidth, ScreenHeight)
		if b.X < b.Radius || b.X > ScreenWidth-b.Radius ||
			b.Y < b.Radius || b.Y > ScreenHeight-b.Radius {
			t.Fatalf("step %d: ball escaped to (%v, %v)", i, b.X, b.Y)
		}
	}
}

func TestStepFirstRightBounceKeepsEightyPercent(t *testing.T) {
	b := NewBall(ScreenWidth, ScreenHeight)
	for i := 1; i <= 17; i++ {
		b.Step(ScreenWidth, ScreenHeight)
		if i < 17 && b.VX != BallVX {
			t.Fatalf("step %d: VX = %v before reaching the wall", i, b.VX)
		}
	}
	if b.X != ScreenWidth-BallRadius {
		t.Errorf("X = %v, want %v", b.X, ScreenWidth-BallRadius)
	}
	if !approxEqual(b.VX, -20, epsilon) {
		t.Errorf("VX = %v, want -20", b.VX)
	}
}
