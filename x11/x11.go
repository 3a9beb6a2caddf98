// Package x11 presents pixel buffers in X11 windows with core protocol PutImage requests.
//
// The buffer keeps the pixels in the byte layout of the window's visual, so for the common 24 and
// 32 bit TrueColor visuals a blit sends the rows as they are. Requests are split to fit the
// server's maximum request length, and every request is checked, which makes a blit synchronous.
package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Platform is the name of this backend in the format registry.
const Platform blit.Platform = "x11"

func init() {
	blit.Declare(Platform, pixel.BGRA, pixel.RGBA)
}

// Resolve extracts the window ID and the server connection from the handles. It returns false if
// the window is not an X11 window or the display is not a connected X11 display.
func Resolve(w handle.Window, d handle.Display) (xproto.Window, *xgb.Conn, bool) {
	xw, ok := w.(handle.X11Window)
	if !ok {
		return 0, nil, false
	}
	xd, ok := d.(handle.X11Display)
	if !ok || xd.Conn == nil {
		return 0, nil, false
	}
	return xproto.Window(xw.Window), xd.Conn, true
}

// NativeFormat is the buffer format X11 buffers are created with.
func NativeFormat() pixel.Format {
	f, _ := blit.NativeFormat(Platform)
	return f
}
