// Package handle contains the window and display handles supplied by the windowing system.
//
// Handles are plain values describing a native window (and, where the platform has one, the
// connection to its display server). This module never owns them: they are only read while a pixel
// buffer is constructed and on every blit.
package handle

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Kind is the platform tag of a handle.
type Kind uint8

// Handle kinds.
const (
	Unknown Kind = iota
	X11
	Win32
	Web
	Framebuffer
	Panel
)

func (k Kind) String() string {
	switch k {
	case X11:
		return "x11"
	case Win32:
		return "win32"
	case Web:
		return "web"
	case Framebuffer:
		return "framebuffer"
	case Panel:
		return "panel"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Window identifies a native window.
type Window interface {
	Kind() Kind
	window()
}

// Display identifies a native display connection. Platforms without a separate display concept
// accept a nil Display.
type Display interface {
	Kind() Kind
	display()
}

// KindOf returns the kind of a window handle, Unknown for nil.
func KindOf(w Window) Kind {
	if w == nil {
		return Unknown
	}
	return w.Kind()
}

// X11Window is an X11 window ID.
type X11Window struct {
	Window uint32
}

func (X11Window) Kind() Kind { return X11 }
func (X11Window) window()    {}

func (w X11Window) String() string {
	return fmt.Sprintf("x11 window %#x", w.Window)
}

// X11Display is a connection to an X server.
type X11Display struct {
	Conn *xgb.Conn
}

func (X11Display) Kind() Kind { return X11 }
func (X11Display) display()   {}

// Win32Window is a Windows window handle.
type Win32Window struct {
	HWND      uintptr
	HInstance uintptr
}

func (Win32Window) Kind() Kind { return Win32 }
func (Win32Window) window()    {}

func (w Win32Window) String() string {
	return fmt.Sprintf("win32 window %#x", w.HWND)
}

// WebWindow is a browser canvas, identified by the value of its data-raw-handle attribute.
type WebWindow struct {
	ID uint32
}

func (WebWindow) Kind() Kind { return Web }
func (WebWindow) window()    {}

func (w WebWindow) String() string {
	return fmt.Sprintf("web canvas %d", w.ID)
}

// FramebufferWindow is an operating system framebuffer device, such as /dev/fb0.
type FramebufferWindow struct {
	Device string
}

func (FramebufferWindow) Kind() Kind { return Framebuffer }
func (FramebufferWindow) window()    {}

func (w FramebufferWindow) String() string {
	return "framebuffer " + w.Device
}

// PanelController is the controller chip of a TFT panel.
type PanelController uint8

// Panel controllers.
const (
	ST7789 PanelController = iota
	ST7735
)

func (c PanelController) String() string {
	switch c {
	case ST7789:
		return "ST7789"
	case ST7735:
		return "ST7735"
	default:
		return fmt.Sprintf("PanelController(%d)", uint8(c))
	}
}

// PanelWindow is a TFT panel on a SPI bus with a data/command select pin.
type PanelWindow struct {
	// Controller of the panel, ST7789 if not set.
	Controller PanelController

	// Conn is the SPI connection to the panel controller.
	Conn spi.Conn

	// DC is the data/command select pin.
	DC gpio.PinOut

	// Reset pin, optional.
	Reset gpio.PinOut

	// Width and Height of the panel in pixels.
	Width, Height int

	// ColumnOffset and RowOffset shift the panel window inside the controller memory.
	ColumnOffset, RowOffset int
}

func (PanelWindow) Kind() Kind { return Panel }
func (PanelWindow) window()    {}

func (w PanelWindow) String() string {
	return fmt.Sprintf("%s panel %dx%d on %v", w.Controller, w.Width, w.Height, w.Conn)
}
