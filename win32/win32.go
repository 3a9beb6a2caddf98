//go:build windows

package win32

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Platform is the name of this backend in the format registry.
const Platform blit.Platform = "win32"

func init() {
	blit.Declare(Platform, pixel.BGRA)
}

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procGetDC     = user32.NewProc("GetDC")
	procReleaseDC = user32.NewProc("ReleaseDC")

	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procBitBlt             = gdi32.NewProc("BitBlt")
	procGdiFlush           = gdi32.NewProc("GdiFlush")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
)

// GDI constants.
const (
	biRGB        = 0
	dibRGBColors = 0
	srcCopy      = 0x00CC0020
)

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1]uint32
}

// call invokes a GDI or USER function that returns zero on failure.
func call(p *windows.LazyProc, args ...uintptr) (uintptr, error) {
	r, _, err := p.Call(args...)
	if r != 0 {
		return r, nil
	}
	if errno, ok := err.(windows.Errno); ok && errno != 0 {
		return 0, fmt.Errorf("win32: %s: %w", p.Name, errno)
	}
	return 0, fmt.Errorf("win32: %s failed", p.Name)
}

// Resolve extracts the window handle. It returns false for other handle kinds or a zero HWND.
func Resolve(w handle.Window) (windows.HWND, bool) {
	ww, ok := w.(handle.Win32Window)
	if !ok || ww.HWND == 0 {
		return 0, false
	}
	return windows.HWND(ww.HWND), true
}

// NativeFormat is the buffer format Windows buffers are created with.
func NativeFormat() pixel.Format {
	f, _ := blit.NativeFormat(Platform)
	return f
}
