//go:build windows

package win32

import (
	"bytes"
	"errors"
	"image"
	"math"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Buffer is a pixel buffer backed by a top-down 32-bit DIB section.
type Buffer struct {
	*pixel.Buffer

	memDC     uintptr
	bitmap    uintptr
	oldBitmap uintptr
	closed    bool
}

// New creates a w×h buffer for the window. The format must be the native format of this backend.
// The display handle is not used on Windows.
func New(w, h int, f pixel.Format, window handle.Window, _ handle.Display) (*Buffer, error) {
	const op = "win32.New"

	if err := blit.CheckSize(op, w, h); err != nil {
		return nil, err
	}
	if w > math.MaxInt32 || h > math.MaxInt32 {
		return nil, blit.Errorf(op, blit.InvalidArgument, "size %dx%d does not fit a bitmap", w, h)
	}
	if err := blit.CheckFormat(op, Platform, f); err != nil {
		return nil, err
	}
	hwnd, ok := Resolve(window)
	if !ok {
		return nil, blit.Errorf(op, blit.HandleMismatch, "%v is not a Windows window", window)
	}
	size, err := pixel.Size(w, h, f)
	if err != nil {
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}

	windowDC, err := call(procGetDC, uintptr(hwnd))
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	defer procReleaseDC.Call(uintptr(hwnd), windowDC)

	memDC, err := call(procCreateCompatibleDC, windowDC)
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	info := bitmapInfo{Header: bitmapInfoHeader{
		Width:       int32(w),
		Height:      -int32(h), // top-down
		Planes:      1,
		BitCount:    uint16(f.BitsPerPixel()),
		Compression: biRGB,
	}}
	info.Header.Size = uint32(unsafe.Sizeof(info.Header))

	var bits unsafe.Pointer
	bitmap, err := call(procCreateDIBSection, memDC, uintptr(unsafe.Pointer(&info)), dibRGBColors,
		uintptr(unsafe.Pointer(&bits)), 0, 0)
	if err != nil || bits == nil {
		procDeleteDC.Call(memDC)
		if err == nil {
			err = windows.ERROR_NOT_ENOUGH_MEMORY
		}
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	oldBitmap, err := call(procSelectObject, memDC, bitmap)
	if err != nil {
		procDeleteObject.Call(bitmap)
		procDeleteDC.Call(memDC)
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	pix, err := pixel.WrapBuffer(w, h, f, unsafe.Slice((*byte)(bits), size))
	if err != nil {
		procSelectObject.Call(memDC, oldBitmap)
		procDeleteObject.Call(bitmap)
		procDeleteDC.Call(memDC)
		return nil, blit.Wrap(op, blit.InvalidArgument, err)
	}

	blit.Logger().Debug("win32: new buffer", "hwnd", hwnd, "width", w, "height", h)
	return &Buffer{
		Buffer:    pix,
		memDC:     memDC,
		bitmap:    bitmap,
		oldBitmap: oldBitmap,
	}, nil
}

// Blit transfers the whole buffer to the window's client origin.
func (b *Buffer) Blit(w handle.Window) error {
	src, dst, size := blit.Full(b.Width(), b.Height())
	return b.BlitRect(src, dst, size, w)
}

// BlitRect copies size pixels at src in the buffer to dst in the window client area.
func (b *Buffer) BlitRect(src, dst, size image.Point, w handle.Window) error {
	const op = "win32.Blit"

	if b.closed {
		return blit.Wrap(op, blit.TransferFailed, blit.ErrClosed)
	}
	hwnd, ok := Resolve(w)
	if !ok {
		return blit.Errorf(op, blit.HandleMismatch, "%v is not a Windows window", w)
	}
	src, dst, size, visible := blit.ClipSource(b.Bounds(), src, dst, size)
	if !visible {
		return nil
	}

	windowDC, err := call(procGetDC, uintptr(hwnd))
	if err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	defer procReleaseDC.Call(uintptr(hwnd), windowDC)

	_, err = call(procBitBlt, windowDC,
		uintptr(dst.X), uintptr(dst.Y), uintptr(size.X), uintptr(size.Y),
		b.memDC, uintptr(src.X), uintptr(src.Y), srcCopy)
	if err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	if _, err = call(procGdiFlush); err != nil {
		return blit.Wrap(op, blit.TransferFailed, err)
	}
	return nil
}

// Close releases the DIB section and the memory device context. The pixels are copied to Go memory
// first, so the buffer stays readable after Close.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	detached, err := pixel.WrapBuffer(b.Width(), b.Height(), b.Format(), bytes.Clone(b.Pix))
	if err == nil {
		b.Buffer = detached
	}

	procSelectObject.Call(b.memDC, b.oldBitmap)
	_, bitmapErr := call(procDeleteObject, b.bitmap)
	if bitmapErr != nil {
		blit.Logger().Warn("win32: delete bitmap", "error", bitmapErr)
	}
	_, dcErr := call(procDeleteDC, b.memDC)
	if dcErr != nil {
		blit.Logger().Warn("win32: delete device context", "error", dcErr)
	}
	return blit.Wrap("win32.Close", blit.KindUnknown, errors.Join(bitmapErr, dcErr))
}

var _ blit.PixelBuffer = (*Buffer)(nil)
