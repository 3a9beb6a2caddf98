// Package panel presents pixel buffers on ST7789 and ST7735 TFT panels connected over SPI.
//
// The controllers are driven in 18-bit color mode, in which they take three bytes per pixel in red,
// green, blue order; the upper six bits of each byte are used. A blit sets the controller's
// address window to the destination rectangle and streams the source rows into its memory.
package panel

import (
	"time"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Platform is the name of this backend in the format registry.
const Platform blit.Platform = "panel"

func init() {
	blit.Declare(Platform, pixel.RGB)
}

// NativeFormat is the buffer format panel buffers are created with.
func NativeFormat() pixel.Format {
	f, _ := blit.NativeFormat(Platform)
	return f
}

// Resolve returns the panel description. It returns false for other handle kinds, or a panel
// without SPI connection or data/command pin, or with an unknown controller.
func Resolve(w handle.Window) (handle.PanelWindow, bool) {
	pw, ok := w.(handle.PanelWindow)
	if !ok || pw.Conn == nil || pw.DC == nil {
		return handle.PanelWindow{}, false
	}
	if _, ok = controllers[pw.Controller]; !ok {
		return handle.PanelWindow{}, false
	}
	return pw, true
}

// sleep is replaced in tests.
var sleep = time.Sleep
