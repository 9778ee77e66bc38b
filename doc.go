// Package bouncyball is a small bouncing-ball animation for [Ebitengine].
//
// A single circle falls under constant gravity inside a fixed 900x600
// window, bounces off all four walls losing a fifth of its speed each time,
// and drags a tapering trail of ghost circles behind it.
//
// # Quick start
//
//	if err := bouncyball.Run(bouncyball.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Frame order
//
// Each tick runs, in order: poll for quit, clear to [ColorLight], draw the
// [Trail], draw the [Ball] at its current position, [Ball.Step], push the
// new position into the trail, present. A quit request stops the loop only
// after the tick it arrived in has finished.
//
// Drawing happens on the CPU into a [Surface]. [Framebuffer] is the
// image.RGBA-backed implementation used by [Game]; any pixel buffer that can
// fill a clipped rectangle works, which is how cmd/bouncyball-sdl draws
// straight into an SDL window surface.
//
// [Ebitengine]: https://ebitengine.org
package bouncyball
