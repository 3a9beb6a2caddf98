// Package framebuffer presents pixel buffers on operating system framebuffer devices.
//
// The device memory is mapped into the process; a blit converts the buffer rows into the device's
// pixel layout while copying them. Only Linux fbdev devices are supported, with 24 or 32 bits per
// pixel and 8 bits per color channel. On other systems New always fails.
package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

// Platform is the name of this backend in the format registry.
const Platform blit.Platform = "framebuffer"

func init() {
	blit.Declare(Platform, pixel.BGRA, pixel.RGBA, pixel.BGR, pixel.RGB)
}

// Resolve extracts the device path. It returns false for other handle kinds or an empty path.
func Resolve(w handle.Window) (string, bool) {
	fw, ok := w.(handle.FramebufferWindow)
	if !ok || fw.Device == "" {
		return "", false
	}
	return fw.Device, true
}

// NativeFormat is the buffer format framebuffer buffers are created with.
func NativeFormat() pixel.Format {
	f, _ := blit.NativeFormat(Platform)
	return f
}

// fixScreenInfo is struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte  // Identification string eg "TT Builtin"
	SmemStart    uintptr   // Start of frame buffer mem
	SmemLen      uint32    // Length of frame buffer mem
	Type         uint32    // FB_TYPE_
	TypeAux      uint32    // Interleave for interleaved Planes
	Visual       uint32    // FB_VISUAL_
	Xpanstep     uint16    // Zero if no hardware panning
	Ypanstep     uint16    // Zero if no hardware panning
	Ywrapstep    uint16    // Zero if no hardware ywrap
	LineLength   uint32    // Length of a line in bytes
	MmioStart    uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen      uint32    // Length of Memory Mapped I/O
	Accel        uint32    // Type of acceleration available
	Capabilities uint16    // FB_CAP_
	Reserved     [2]uint16 // Reserved for future compatibility
}

// bitField describes one color channel in a pixel word.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

func (f bitField) mask() uint32 {
	if f.Length == 0 || f.Length > 32 || f.Offset >= 32 {
		return 0
	}
	return uint32(uint64(1)<<f.Length-1) << f.Offset
}

// varScreenInfo is struct fb_var_screeninfo: device independent changeable information about a
// frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

// screenLayout returns the byte layout of a pixel in device memory. Pixel words are stored in the
// byte order of the host.
func screenLayout(info *varScreenInfo) (pixel.Layout, error) {
	if info.Grayscale != 0 || info.Nonstd != 0 {
		return pixel.Layout{}, fmt.Errorf("framebuffer: unsupported visual (grayscale=%d nonstd=%d)", info.Grayscale, info.Nonstd)
	}
	for _, c := range [...]bitField{info.Red, info.Green, info.Blue} {
		if c.Length != 8 || c.MsbRight != 0 {
			return pixel.Layout{}, fmt.Errorf("framebuffer: unsupported channel %+v", c)
		}
	}
	if l := info.Alpha.Length; l != 0 && l != 8 {
		return pixel.Layout{}, fmt.Errorf("framebuffer: unsupported alpha channel %+v", info.Alpha)
	}
	return pixel.MaskLayout(int(info.BitsPerPixel),
		info.Red.mask(), info.Green.mask(), info.Blue.mask(), info.Alpha.mask(),
		binary.NativeEndian)
}

// device is mapped screen memory.
type device struct {
	// mem is the screen memory.
	mem []byte

	// lineLength is the distance between two lines in mem, in bytes.
	lineLength int

	// offset of the visible area in the virtual screen.
	offset image.Point

	// size of the visible area.
	size image.Point

	// layout of a pixel in mem.
	layout pixel.Layout
}

func (d device) check() error {
	if !d.layout.Valid() {
		return fmt.Errorf("framebuffer: invalid %s", d.layout)
	}
	if d.size.X < 0 || d.size.Y < 0 || d.offset.X < 0 || d.offset.Y < 0 {
		return fmt.Errorf("framebuffer: invalid screen %v at %v", d.size, d.offset)
	}
	if need := (d.offset.X + d.size.X) * d.layout.Size; d.lineLength < need {
		return fmt.Errorf("framebuffer: line length %d shorter than %d", d.lineLength, need)
	}
	if need := (d.offset.Y + d.size.Y) * d.lineLength; len(d.mem) < need {
		return fmt.Errorf("framebuffer: screen memory of %d bytes shorter than %d", len(d.mem), need)
	}
	return nil
}

// bounds of the visible screen.
func (d device) bounds() image.Rectangle {
	return image.Rectangle{Max: d.size}
}

// line returns n pixels of visible line y, starting at column x.
func (d device) line(x, y, n int) []byte {
	start := (d.offset.Y+y)*d.lineLength + (d.offset.X+x)*d.layout.Size
	return d.mem[start : start+n*d.layout.Size]
}
