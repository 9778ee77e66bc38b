package bouncyball

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the framebuffer. It is written as a
// PNG into ScreenshotDir right after the current frame has been drawn.
func (g *Game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label. Failures are reported on
// stderr and do not stop the game.
func (g *Game) flushScreenshots() {
	if len(g.screenshotQueue) == 0 {
		return
	}
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[bouncyball] screenshot: mkdir %s: %v\n", g.ScreenshotDir, err)
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.screenshotQueue {
		name := fmt.Sprintf("%s_f%06d_%s.png", stamp, g.world.Frames(), sanitizeLabel(label))
		if err := writePNG(filepath.Join(g.ScreenshotDir, name), g.fb.Image()); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[bouncyball] screenshot: %v\n", err)
		}
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
