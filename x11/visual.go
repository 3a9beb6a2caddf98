package x11

import (
	"encoding/binary"
	"fmt"
	"image"
	"iter"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/BeatGlow/blit/pixel"
)

// putImageHeader is the size of a PutImage request without its image data.
const putImageHeader = 24

// visualLayout returns the byte layout of ZPixmap image data for a visual at the given depth.
func visualLayout(setup *xproto.SetupInfo, depth byte, visual xproto.Visualid) (pixel.Layout, error) {
	bpp := 0
	for _, f := range setup.PixmapFormats {
		if f.Depth == depth {
			bpp = int(f.BitsPerPixel)
			break
		}
	}
	if bpp != 32 {
		return pixel.Layout{}, fmt.Errorf("x11: depth %d uses %d bits per pixel, need 32", depth, bpp)
	}

	v, ok := findVisual(setup, depth, visual)
	if !ok {
		return pixel.Layout{}, fmt.Errorf("x11: visual %#x not found at depth %d", visual, depth)
	}
	if v.Class != xproto.VisualClassTrueColor && v.Class != xproto.VisualClassDirectColor {
		return pixel.Layout{}, fmt.Errorf("x11: visual %#x has class %d, need TrueColor", visual, v.Class)
	}

	var order binary.ByteOrder = binary.LittleEndian
	if setup.ImageByteOrder == xproto.ImageOrderMSBFirst {
		order = binary.BigEndian
	}
	return pixel.MaskLayout(bpp, v.RedMask, v.GreenMask, v.BlueMask, 0, order)
}

func findVisual(setup *xproto.SetupInfo, depth byte, visual xproto.Visualid) (xproto.VisualInfo, bool) {
	for _, screen := range setup.Roots {
		for _, d := range screen.AllowedDepths {
			if d.Depth != depth {
				continue
			}
			for _, v := range d.Visuals {
				if v.VisualId == visual {
					return v, true
				}
			}
		}
	}
	return xproto.VisualInfo{}, false
}

// maxImageBytes is the largest image payload of a single PutImage request.
func maxImageBytes(setup *xproto.SetupInfo) int {
	return int(setup.MaximumRequestLength)*4 - putImageHeader
}

// tiles splits a transfer of size pixels into rectangles whose image data fits limit bytes, at
// bytesPerPixel bytes per pixel. Rectangles span full rows unless a single row is too long.
func tiles(size image.Point, bytesPerPixel, limit int) iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		if size.X <= 0 || size.Y <= 0 || bytesPerPixel <= 0 {
			return
		}
		w := min(size.X, limit/bytesPerPixel, 0xffff)
		if w <= 0 {
			return
		}
		h := min(limit/(w*bytesPerPixel), 0xffff)
		for y := 0; y < size.Y; y += h {
			for x := 0; x < size.X; x += w {
				r := image.Rect(x, y, min(x+w, size.X), min(y+h, size.Y))
				if !yield(r) {
					return
				}
			}
		}
	}
}
