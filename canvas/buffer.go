//go:build js && wasm

package canvas

import (
	"errors"
	"image"

	"github.com/hack-pad/safejs"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Buffer is a pixel buffer bound to a canvas 2d context and an ImageData of the buffer size.
type Buffer struct {
	*pixel.Buffer

	id     uint32
	ctx    safejs.Value
	array  safejs.Value
	image  safejs.Value
	closed bool
}

// New creates a w×h buffer for the canvas. The format must be the native format of this backend.
// The pixels are initialized to zero. The display handle is not used in browsers.
func New(w, h int, f pixel.Format, window handle.Window, _ handle.Display) (*Buffer, error) {
	const op = "canvas.New"

	if err := blit.CheckSize(op, w, h); err != nil {
		return nil, err
	}
	if err := blit.CheckFormat(op, Platform, f); err != nil {
		return nil, err
	}
	id, ok := Resolve(window)
	if !ok {
		return nil, blit.Errorf(op, blit.HandleMismatch, "%v is not a web canvas", window)
	}

	canvas, err := findCanvas(id)
	if errors.Is(err, errNoCanvas) {
		return nil, blit.Wrap(op, blit.HandleMismatch, err)
	} else if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	ctx, err := canvas.Call("getContext", "2d")
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	if ctx.IsNull() {
		return nil, blit.Errorf(op, blit.NativeResourceCreationFailed, "canvas %d has no 2d context", id)
	}

	pix, err := pixel.NewBuffer(w, h, f)
	if err != nil {
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}
	array, err := safejs.Global().Get("Uint8ClampedArray")
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	if array, err = array.New(len(pix.Pix)); err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	imageData, err := safejs.Global().Get("ImageData")
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	img, err := imageData.New(array, w, h)
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	blit.Logger().Debug("canvas: new buffer", "id", id, "width", w, "height", h)
	return &Buffer{
		Buffer: pix,
		id:     id,
		ctx:    ctx,
		array:  array,
		image:  img,
	}, nil
}

// Blit puts the whole buffer at the canvas origin.
func (b *Buffer) Blit(w handle.Window) error {
	src, dst, size := blit.Full(b.Width(), b.Height())
	return b.BlitRect(src, dst, size, w)
}

// BlitRect puts size pixels at src in the buffer to dst on the canvas. The canvas clips the
// destination.
func (b *Buffer) BlitRect(src, dst, size image.Point, w handle.Window) error {
	const op = "canvas.Blit"

	if b.closed {
		return blit.Wrap(op, blit.TransferFailed, blit.ErrClosed)
	}
	id, ok := Resolve(w)
	if !ok || id != b.id {
		return blit.Errorf(op, blit.HandleMismatch, "%v is not canvas %d", w, b.id)
	}
	src, dst, size, visible := blit.ClipSource(b.Bounds(), src, dst, size)
	if !visible {
		return nil
	}

	blit.Logger().Debug("canvas: blit", "id", id, "src", src, "dst", dst, "size", size)

	// Copy whole rows; the dirty rectangle below limits what reaches the canvas.
	var (
		start = src.Y * b.Stride
		end   = (src.Y + size.Y) * b.Stride
	)
	rows, err := b.array.Call("subarray", start, end)
	if err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	if _, err = safejs.CopyBytesToJS(rows, b.Pix[start:end]); err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	_, err = b.ctx.Call("putImageData", b.image,
		dst.X-src.X, dst.Y-src.Y,
		src.X, src.Y, size.X, size.Y)
	if err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	return nil
}

// Close drops the references to the JavaScript objects.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.ctx = safejs.Null()
	b.array = safejs.Null()
	b.image = safejs.Null()
	return nil
}

var _ blit.PixelBuffer = (*Buffer)(nil)
