package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"math"
)

// Errors
var (
	ErrSize = errors.New("pixel: invalid buffer size")
)

// Buffer holds rows of pixels in a single format.
//
// Rows are stored top to bottom without padding: the stride equals the row length, and Pix is
// exactly RowLen*Height bytes long. The contents of Pix can be modified at any time, but the Pix
// slice itself (its pointer, length and capacity) must not be replaced.
type Buffer struct {
	// Rect is the image bounding box, always anchored at (0, 0).
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	format Format
}

// NewBuffer allocates a buffer of w×h pixels.
func NewBuffer(w, h int, f Format) (*Buffer, error) {
	size, err := Size(w, h, f)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: w * f.BytesPerPixel(),
		format: f,
	}, nil
}

// WrapBuffer uses pix as the pixel memory of a w×h buffer. The slice must be exactly the size
// returned by [Size]; it is typically memory owned by a native imaging object.
func WrapBuffer(w, h int, f Format, pix []byte) (*Buffer, error) {
	size, err := Size(w, h, f)
	if err != nil {
		return nil, err
	}
	if len(pix) != size {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d %s, need %d", ErrSize, len(pix), w, h, f, size)
	}
	return &Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    pix[:size:size],
		Stride: w * f.BytesPerPixel(),
		format: f,
	}, nil
}

// Size returns the number of bytes needed for a w×h buffer in format f.
func Size(w, h int, f Format) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w %s", ErrFormat, f)
	}
	if w < 0 || h < 0 || uint64(w) > math.MaxUint32 || uint64(h) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	rowLen := w * f.BytesPerPixel()
	if h > 0 && rowLen > math.MaxInt/h {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrSize, w, h)
	}
	return rowLen * h, nil
}

// Format of the pixels.
func (p *Buffer) Format() Format { return p.format }

// Width in pixels.
func (p *Buffer) Width() int { return p.Rect.Dx() }

// Height in pixels.
func (p *Buffer) Height() int { return p.Rect.Dy() }

// BytesPerPixel is the size of one pixel in bytes.
func (p *Buffer) BytesPerPixel() int { return p.format.BytesPerPixel() }

// BitsPerPixel is the size of one pixel in bits.
func (p *Buffer) BitsPerPixel() int { return p.format.BitsPerPixel() }

// RowLen is the length of one row in bytes.
func (p *Buffer) RowLen() int { return p.Width() * p.BytesPerPixel() }

// Row returns row i, or false if i is out of range. The returned slice aliases the buffer and has
// exactly RowLen bytes of length and capacity.
func (p *Buffer) Row(i int) ([]byte, bool) {
	if i < 0 || i >= p.Height() {
		return nil, false
	}
	return p.row(i), true
}

func (p *Buffer) row(i int) []byte {
	var (
		start = i * p.Stride
		end   = start + p.RowLen()
	)
	return p.Pix[start:end:end]
}

// Rows iterates over all rows from top to bottom. Each call starts a new iteration.
func (p *Buffer) Rows() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i, h := 0, p.Height(); i < h; i++ {
			if !yield(i, p.row(i)) {
				return
			}
		}
	}
}

// RowsBackward iterates over all rows from bottom to top.
func (p *Buffer) RowsBackward() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := p.Height() - 1; i >= 0; i-- {
			if !yield(i, p.row(i)) {
				return
			}
		}
	}
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) ColorModel() color.Model {
	return p.format.Model()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *Buffer) PixOffset(x, y int) int {
	return y*p.Stride + x*p.BytesPerPixel()
}

func (p *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		l = p.format.Layout()
		s = p.Pix[p.PixOffset(x, y):]
	)
	switch p.format {
	case RGBA:
		return color.NRGBA{R: s[l.R], G: s[l.G], B: s[l.B], A: s[l.A]}
	case BGRA:
		return BGRAColor{B: s[l.B], G: s[l.G], R: s[l.R], A: s[l.A]}
	case RGB:
		return RGBColor{R: s[l.R], G: s[l.G], B: s[l.B]}
	default:
		return BGRColor{B: s[l.B], G: s[l.G], R: s[l.R]}
	}
}

func (p *Buffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.encode(p.Pix[p.PixOffset(x, y):], c)
}

func (p *Buffer) encode(dst []byte, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if !p.format.HasAlpha() {
		o := opaque(c)
		n = color.NRGBA{R: o.R, G: o.G, B: o.B, A: 0xff}
	}
	l := p.format.Layout()
	dst[l.R] = n.R
	dst[l.G] = n.G
	dst[l.B] = n.B
	if l.A >= 0 {
		dst[l.A] = n.A
	}
}

// Fill the buffer with a single color.
func (p *Buffer) Fill(c color.Color) {
	size := p.BytesPerPixel()
	if len(p.Pix) < size {
		return
	}
	p.encode(p.Pix[:size], c)
	for i := size; i < len(p.Pix); i *= 2 {
		copy(p.Pix[i:], p.Pix[:i])
	}
}

// FillBytes sets every byte of the buffer to v.
func (p *Buffer) FillBytes(v byte) {
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// Clear the buffer to zero.
func (p *Buffer) Clear() {
	clear(p.Pix)
}
