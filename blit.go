// Package blit presents CPU rendered pixels in native windows.
//
// An application fills a [PixelBuffer] row by row and blits it, or a rectangle of it, onto a window
// surface through whatever the host windowing system offers: an X11 image request, a GDI DIB section,
// a canvas ImageData, a framebuffer device or a SPI display panel. Every backend implements the same
// contract; the driver package picks the backends for the build target.
//
// All operations are synchronous. When Blit returns, the transfer has completed as far as the
// native API lets the caller observe it.
package blit

import (
	"image"
	"iter"
	"math"

	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// PixelBuffer is CPU side pixel memory bound to the native resources needed to present it.
//
// A PixelBuffer is owned by a single goroutine; it is not safe for concurrent use.
type PixelBuffer interface {
	// Width in pixels.
	Width() int

	// Height in pixels.
	Height() int

	// Format of the pixel memory, always the platform's native format.
	Format() pixel.Format

	// BytesPerPixel is the size of one pixel in bytes.
	BytesPerPixel() int

	// BitsPerPixel is the size of one pixel in bits.
	BitsPerPixel() int

	// RowLen is Width times BytesPerPixel.
	RowLen() int

	// Row returns the raw bytes of row i, or false if i is not in [0, Height). The slice aliases
	// the pixel memory and may be written to.
	Row(i int) ([]byte, bool)

	// Rows iterates over every row from top to bottom.
	Rows() iter.Seq2[int, []byte]

	// RowsBackward iterates over every row from bottom to top.
	RowsBackward() iter.Seq2[int, []byte]

	// Blit transfers the whole buffer to the window's origin.
	Blit(w handle.Window) error

	// BlitRect transfers size pixels starting at src in the buffer to dst on the window.
	BlitRect(src, dst, size image.Point, w handle.Window) error

	// Close releases the native resources of the buffer. It is safe to call more than once.
	Close() error
}

// Full returns the BlitRect arguments equivalent to a Blit of a w×h buffer.
func Full(w, h int) (src, dst, size image.Point) {
	return image.Point{}, image.Point{}, image.Pt(w, h)
}

// CheckSize returns an InvalidArgument error for dimensions that are negative or do not fit an
// unsigned 32-bit integer.
func CheckSize(op string, w, h int) error {
	if w < 0 || h < 0 || uint64(w) > math.MaxUint32 || uint64(h) > math.MaxUint32 {
		return Errorf(op, InvalidArgument, "invalid size %dx%d", w, h)
	}
	return nil
}
