package x11

import (
	"image"
	"math"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Buffer is a pixel buffer bound to an X11 window and a graphics context on it.
type Buffer struct {
	*pixel.Buffer

	conn    *xgb.Conn
	window  xproto.Window
	gc      xproto.Gcontext
	depth   byte
	swizzle pixel.Swizzle
	limit   int
	scratch []byte
	closed  bool
}

// New creates a w×h buffer for the window. The format must be the native format of this backend.
// The pixels are initialized to 0xff.
func New(w, h int, f pixel.Format, window handle.Window, display handle.Display) (*Buffer, error) {
	const op = "x11.New"

	if err := blit.CheckSize(op, w, h); err != nil {
		return nil, err
	}
	if err := blit.CheckFormat(op, Platform, f); err != nil {
		return nil, err
	}
	xw, conn, ok := Resolve(window, display)
	if !ok {
		return nil, blit.Errorf(op, blit.HandleMismatch, "%T and %T are not an X11 window and display", window, display)
	}

	geom, err := xproto.GetGeometry(conn, xproto.Drawable(xw)).Reply()
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	attrs, err := xproto.GetWindowAttributes(conn, xw).Reply()
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	setup := xproto.Setup(conn)
	wire, err := visualLayout(setup, geom.Depth, attrs.Visual)
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	pix, err := pixel.NewBuffer(w, h, f)
	if err != nil {
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}
	pix.FillBytes(0xff)

	gc, err := xproto.NewGcontextId(conn)
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	if err = xproto.CreateGCChecked(conn, gc, xproto.Drawable(xw), 0, nil).Check(); err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	b := &Buffer{
		Buffer:  pix,
		conn:    conn,
		window:  xw,
		gc:      gc,
		depth:   geom.Depth,
		swizzle: pixel.NewSwizzle(f.Layout(), wire),
		limit:   maxImageBytes(setup),
	}
	blit.Logger().Debug("x11: new buffer",
		"window", xw,
		"width", w,
		"height", h,
		"depth", geom.Depth,
		"visual", attrs.Visual,
		"layout", wire,
		"identity", b.swizzle.Identity())
	return b, nil
}

// Blit transfers the whole buffer to the window's origin.
func (b *Buffer) Blit(w handle.Window) error {
	src, dst, size := blit.Full(b.Width(), b.Height())
	return b.BlitRect(src, dst, size, w)
}

// BlitRect transfers size pixels at src in the buffer to dst in the window the buffer was created
// for. The source rectangle is clipped to the buffer; the server clips to the window.
func (b *Buffer) BlitRect(src, dst, size image.Point, w handle.Window) error {
	const op = "x11.Blit"

	if b.closed {
		return blit.Wrap(op, blit.TransferFailed, blit.ErrClosed)
	}
	xw, ok := w.(handle.X11Window)
	if !ok || xproto.Window(xw.Window) != b.window {
		return blit.Errorf(op, blit.HandleMismatch, "%v is not x11 window %#x", w, b.window)
	}

	var visible bool
	if src, dst, size, visible = blit.ClipSource(b.Bounds(), src, dst, size); !visible {
		return nil
	}
	// Request coordinates are 16 bit.
	wire := image.Rect(math.MinInt16, math.MinInt16, math.MaxInt16+1, math.MaxInt16+1)
	if src, dst, size, visible = blit.ClipDestination(wire, src, dst, size); !visible {
		return nil
	}

	blit.Logger().Debug("x11: blit", "window", b.window, "src", src, "dst", dst, "size", size)

	bpp := b.swizzle.Dst().Size
	for r := range tiles(size, bpp, b.limit) {
		data := b.tile(src.Add(r.Min), r.Size())
		cookie := xproto.PutImageChecked(b.conn, xproto.ImageFormatZPixmap, xproto.Drawable(b.window), b.gc,
			uint16(r.Dx()), uint16(r.Dy()),
			int16(dst.X+r.Min.X), int16(dst.Y+r.Min.Y),
			0, b.depth, data)
		if err := cookie.Check(); err != nil {
			return blit.Wrap(op, blit.TransferFailed, err)
		}
	}
	return nil
}

// tile returns the image data of a rectangle in the wire layout.
func (b *Buffer) tile(at, size image.Point) []byte {
	var (
		bpp    = b.BytesPerPixel()
		rowLen = b.RowLen()
	)
	if b.swizzle.Identity() && at.X == 0 && size.X == b.Width() {
		return b.Pix[at.Y*b.Stride : at.Y*b.Stride+size.Y*rowLen]
	}

	var (
		wireLen = size.X * b.swizzle.Dst().Size
		need    = wireLen * size.Y
	)
	if cap(b.scratch) < need {
		b.scratch = make([]byte, need)
	}
	data := b.scratch[:need]
	for y := 0; y < size.Y; y++ {
		row := b.row(at.Y + y)
		b.swizzle.Convert(data[y*wireLen:(y+1)*wireLen], row[at.X*bpp:(at.X+size.X)*bpp])
	}
	return data
}

func (b *Buffer) row(i int) []byte {
	row, _ := b.Row(i)
	return row
}

// Close frees the graphics context. The window and the connection are left alone.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	if err := xproto.FreeGCChecked(b.conn, b.gc).Check(); err != nil {
		blit.Logger().Warn("x11: free graphics context", "gc", b.gc, "error", err)
		return blit.Wrap("x11.Close", blit.KindUnknown, err)
	}
	return nil
}

var _ blit.PixelBuffer = (*Buffer)(nil)
