// Bouncyball opens a 900x600 window with a ball bouncing under gravity.
// Close the window or press Escape to quit.
package main

import (
	"log"

	bouncyball "github.com/mavericksy/BouncyBall"
)

func main() {
	if err := bouncyball.Run(bouncyball.DefaultRunConfig()); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
