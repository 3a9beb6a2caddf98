// Package driver creates pixel buffers with the backend that matches a window handle.
//
// The set of backends is fixed at build time: X11, framebuffer devices and SPI panels on Linux and
// the BSDs, GDI on Windows and HTML canvases in browsers. Applications written against this package
// compile unchanged for every target.
package driver

import (
	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

type newFunc func(w, h int, f pixel.Format, window handle.Window, display handle.Display) (blit.PixelBuffer, error)

type backend struct {
	platform blit.Platform
	new      newFunc
}

// wrap adapts a backend constructor; a failed constructor yields a nil interface.
func wrap[B blit.PixelBuffer](fn func(int, int, pixel.Format, handle.Window, handle.Display) (B, error)) newFunc {
	return func(w, h int, f pixel.Format, window handle.Window, display handle.Display) (blit.PixelBuffer, error) {
		b, err := fn(w, h, f, window, display)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func lookup(op string, window handle.Window) (backend, error) {
	kind := handle.KindOf(window)
	b, ok := backends[kind]
	if !ok {
		return backend{}, blit.Errorf(op, blit.HandleMismatch, "no %s backend in this build", kind)
	}
	return b, nil
}

// New creates a w×h pixel buffer for the window. The format must be the native format of the
// window's backend, see [NativeFormat].
func New(w, h int, f pixel.Format, window handle.Window, display handle.Display) (blit.PixelBuffer, error) {
	b, err := lookup("driver.New", window)
	if err != nil {
		return nil, err
	}
	return b.new(w, h, f, window, display)
}

// NativeFormat returns the format buffers for the window must be created with.
func NativeFormat(window handle.Window) (pixel.Format, error) {
	const op = "driver.NativeFormat"
	b, err := lookup(op, window)
	if err != nil {
		return pixel.Invalid, err
	}
	f, ok := blit.NativeFormat(b.platform)
	if !ok {
		return pixel.Invalid, blit.Errorf(op, blit.FormatNotSupported, "platform %s declared no formats", b.platform)
	}
	return f, nil
}

// Supported reports if this build has a backend for the handle kind.
func Supported(kind handle.Kind) bool {
	_, ok := backends[kind]
	return ok
}
