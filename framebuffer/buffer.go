package framebuffer

import (
	"image"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Buffer is a pixel buffer bound to a framebuffer device.
type Buffer struct {
	*pixel.Buffer

	path    string
	dev     device
	swizzle pixel.Swizzle
	release func() error
	closed  bool
}

// newBuffer binds a new w×h buffer to a mapped device. On failure release is called.
func newBuffer(op string, w, h int, f pixel.Format, path string, dev device, release func() error) (*Buffer, error) {
	if err := dev.check(); err != nil {
		_ = release()
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	pix, err := pixel.NewBuffer(w, h, f)
	if err != nil {
		_ = release()
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}

	b := &Buffer{
		Buffer:  pix,
		path:    path,
		dev:     dev,
		swizzle: pixel.NewSwizzle(f.Layout(), dev.layout),
		release: release,
	}
	blit.Logger().Debug("framebuffer: new buffer",
		"device", path,
		"width", w,
		"height", h,
		"screen", dev.size,
		"layout", dev.layout,
		"identity", b.swizzle.Identity())
	return b, nil
}

// Blit copies the whole buffer to the top left corner of the screen.
func (b *Buffer) Blit(w handle.Window) error {
	src, dst, size := blit.Full(b.Width(), b.Height())
	return b.BlitRect(src, dst, size, w)
}

// BlitRect copies size pixels at src in the buffer to dst on the screen. The rectangle is clipped to
// both the buffer and the visible screen.
func (b *Buffer) BlitRect(src, dst, size image.Point, w handle.Window) error {
	const op = "framebuffer.Blit"

	if b.closed {
		return blit.Wrap(op, blit.TransferFailed, blit.ErrClosed)
	}
	if path, ok := Resolve(w); !ok || path != b.path {
		return blit.Errorf(op, blit.HandleMismatch, "%v is not %s", w, b.path)
	}

	var visible bool
	if src, dst, size, visible = blit.ClipSource(b.Bounds(), src, dst, size); !visible {
		return nil
	}
	if src, dst, size, visible = blit.ClipDestination(b.dev.bounds(), src, dst, size); !visible {
		return nil
	}

	blit.Logger().Debug("framebuffer: blit", "device", b.path, "src", src, "dst", dst, "size", size)

	bpp := b.BytesPerPixel()
	for y := 0; y < size.Y; y++ {
		row, _ := b.Row(src.Y + y)
		b.swizzle.Convert(b.dev.line(dst.X, dst.Y+y, size.X), row[src.X*bpp:(src.X+size.X)*bpp])
	}
	return nil
}

// Close unmaps the screen memory and closes the device.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.dev = device{}
	if err := b.release(); err != nil {
		blit.Logger().Warn("framebuffer: release", "device", b.path, "error", err)
		return blit.Wrap("framebuffer.Close", blit.KindUnknown, err)
	}
	return nil
}

var _ blit.PixelBuffer = (*Buffer)(nil)
