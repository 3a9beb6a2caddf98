//go:build !linux

package framebuffer

import (
	"runtime"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// New fails: framebuffer devices are only supported on Linux.
func New(w, h int, f pixel.Format, window handle.Window, _ handle.Display) (*Buffer, error) {
	const op = "framebuffer.New"

	if err := blit.CheckSize(op, w, h); err != nil {
		return nil, err
	}
	if err := blit.CheckFormat(op, Platform, f); err != nil {
		return nil, err
	}
	return nil, blit.Errorf(op, blit.HandleMismatch, "framebuffer devices are not supported on %s", runtime.GOOS)
}
