package panel

import (
	"image"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Buffer is a pixel buffer for a SPI panel.
type Buffer struct {
	*pixel.Buffer

	scratch []byte
	closed  bool
}

// New resets and initializes the panel and creates a w×h buffer for it. The format must be the
// native format of this backend and the buffer must not be larger than the panel.
func New(w, h int, f pixel.Format, window handle.Window, _ handle.Display) (*Buffer, error) {
	const op = "panel.New"

	if err := blit.CheckSize(op, w, h); err != nil {
		return nil, err
	}
	if err := blit.CheckFormat(op, Platform, f); err != nil {
		return nil, err
	}
	pw, ok := Resolve(window)
	if !ok {
		return nil, blit.Errorf(op, blit.HandleMismatch, "%v is not a SPI panel", window)
	}
	g := panelGeometry(pw)
	if err := g.check(); err != nil {
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}
	if w > g.width || h > g.height {
		return nil, blit.Errorf(op, blit.InvalidArgument, "buffer %dx%d does not fit panel %dx%d", w, h, g.width, g.height)
	}

	if pw.Reset != nil {
		if err := reset(pw.Reset); err != nil {
			return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
		}
	}
	l := newLink(pw.Conn, pw.DC)
	if err := g.init(l); err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	pix, err := pixel.NewBuffer(w, h, f)
	if err != nil {
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}
	blit.Logger().Debug("panel: new buffer", "panel", pw, "width", w, "height", h, "batch", l.batchSize)
	return &Buffer{Buffer: pix}, nil
}

// Blit writes the whole buffer to the top left corner of the panel.
func (b *Buffer) Blit(w handle.Window) error {
	src, dst, size := blit.Full(b.Width(), b.Height())
	return b.BlitRect(src, dst, size, w)
}

// BlitRect writes size pixels at src in the buffer to dst on the panel. The rectangle is clipped to
// both the buffer and the panel.
func (b *Buffer) BlitRect(src, dst, size image.Point, w handle.Window) error {
	const op = "panel.Blit"

	if b.closed {
		return blit.Wrap(op, blit.TransferFailed, blit.ErrClosed)
	}
	pw, ok := Resolve(w)
	if !ok {
		return blit.Errorf(op, blit.HandleMismatch, "%v is not a SPI panel", w)
	}
	g := panelGeometry(pw)
	if err := g.check(); err != nil {
		return blit.Wrap(op, blit.InvalidArgument, err)
	}

	var visible bool
	if src, dst, size, visible = blit.ClipSource(b.Bounds(), src, dst, size); !visible {
		return nil
	}
	if src, dst, size, visible = blit.ClipDestination(g.bounds(), src, dst, size); !visible {
		return nil
	}

	blit.Logger().Debug("panel: blit", "panel", pw, "src", src, "dst", dst, "size", size)

	l := newLink(pw.Conn, pw.DC)
	if err := setWindow(l, g, dst.X, dst.Y, dst.X+size.X-1, dst.Y+size.Y-1); err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	if err := l.data(b.pixels(src, size)); err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	return nil
}

// pixels returns the rectangle's rows back to back.
func (b *Buffer) pixels(at, size image.Point) []byte {
	if at.X == 0 && size.X == b.Width() {
		return b.Pix[at.Y*b.Stride : (at.Y+size.Y)*b.Stride]
	}

	var (
		bpp    = b.BytesPerPixel()
		rowLen = size.X * bpp
		need   = rowLen * size.Y
	)
	if cap(b.scratch) < need {
		b.scratch = make([]byte, need)
	}
	data := b.scratch[:need]
	for y := 0; y < size.Y; y++ {
		row, _ := b.Row(at.Y + y)
		copy(data[y*rowLen:], row[at.X*bpp:(at.X+size.X)*bpp])
	}
	return data
}

// Close marks the buffer closed. The SPI connection and pins belong to the caller.
func (b *Buffer) Close() error {
	b.closed = true
	b.scratch = nil
	return nil
}

var _ blit.PixelBuffer = (*Buffer)(nil)
