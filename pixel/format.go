package pixel

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Errors
var (
	ErrFormat = errors.New("pixel: invalid format")
	ErrLayout = errors.New("pixel: unsupported channel layout")
)

// Format identifies the channel layout of a pixel in memory.
type Format uint8

// Supported formats. Names list the channels in memory order, one byte per channel.
const (
	Invalid Format = iota
	RGBA           // 4 bytes: red, green, blue, alpha
	BGRA           // 4 bytes: blue, green, red, alpha
	RGB            // 3 bytes: red, green, blue
	BGR            // 3 bytes: blue, green, red
)

// Order is the order of the color channels.
type Order uint8

// Channel orders.
const (
	OrderRGB Order = iota
	OrderBGR
)

func (o Order) String() string {
	if o == OrderBGR {
		return "BGR"
	}
	return "RGB"
}

func (f Format) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Valid reports if f is one of the defined formats.
func (f Format) Valid() bool {
	return f >= RGBA && f <= BGR
}

// Channels is the number of channels, 3 or 4 (0 for invalid formats).
func (f Format) Channels() int {
	switch f {
	case RGBA, BGRA:
		return 4
	case RGB, BGR:
		return 3
	default:
		return 0
	}
}

// BytesPerPixel is the size of one pixel in bytes.
func (f Format) BytesPerPixel() int {
	return f.Channels()
}

// BitsPerPixel is the size of one pixel in bits.
func (f Format) BitsPerPixel() int {
	return f.BytesPerPixel() * 8
}

// HasAlpha reports if the format carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Channels() == 4
}

// Order returns the color channel order.
func (f Format) Order() Order {
	if f == BGRA || f == BGR {
		return OrderBGR
	}
	return OrderRGB
}

// Layout returns the byte positions of the channels.
func (f Format) Layout() Layout {
	switch f {
	case RGBA:
		return Layout{Size: 4, R: 0, G: 1, B: 2, A: 3}
	case BGRA:
		return Layout{Size: 4, R: 2, G: 1, B: 0, A: 3}
	case RGB:
		return Layout{Size: 3, R: 0, G: 1, B: 2, A: -1}
	case BGR:
		return Layout{Size: 3, R: 2, G: 1, B: 0, A: -1}
	default:
		return Layout{A: -1}
	}
}

// Layout describes where each channel of a pixel lives. Positions are byte offsets inside the pixel;
// A is -1 if there is no alpha channel. Bytes not claimed by any channel are padding.
type Layout struct {
	Size       int
	R, G, B, A int
}

func (l Layout) String() string {
	return fmt.Sprintf("layout(size=%d r=%d g=%d b=%d a=%d)", l.Size, l.R, l.G, l.B, l.A)
}

// Valid reports if every channel position is inside the pixel and no two channels overlap.
func (l Layout) Valid() bool {
	if l.Size < 3 || l.Size > 4 {
		return false
	}
	var seen [4]bool
	for i, pos := range [...]int{l.R, l.G, l.B, l.A} {
		if i == 3 && pos == -1 {
			continue
		}
		if pos < 0 || pos >= l.Size || seen[pos] {
			return false
		}
		seen[pos] = true
	}
	return true
}

// Format returns the Format with this exact layout, if there is one.
func (l Layout) Format() (Format, bool) {
	for _, f := range [...]Format{RGBA, BGRA, RGB, BGR} {
		if f.Layout() == l {
			return f, true
		}
	}
	return Invalid, false
}

// MaskLayout derives a Layout from channel bit masks of a packed pixel word, as reported by window
// systems and framebuffer devices. Every non-zero mask must cover exactly one byte. An alpha mask of
// zero means no alpha channel.
func MaskLayout(bitsPerPixel int, red, green, blue, alpha uint32, order binary.ByteOrder) (Layout, error) {
	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return Layout{}, fmt.Errorf("%w: %d bits per pixel", ErrLayout, bitsPerPixel)
	}
	var (
		size      = bitsPerPixel / 8
		bigEndian = order.Uint16([]byte{0x00, 0x01}) == 1
	)
	position := func(mask uint32) (int, error) {
		for i := 0; i < size; i++ {
			if mask == 0xff<<(8*i) {
				if bigEndian {
					return size - 1 - i, nil
				}
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: mask %#08x", ErrLayout, mask)
	}

	var (
		l   = Layout{Size: size, A: -1}
		err error
	)
	if l.R, err = position(red); err != nil {
		return Layout{}, err
	}
	if l.G, err = position(green); err != nil {
		return Layout{}, err
	}
	if l.B, err = position(blue); err != nil {
		return Layout{}, err
	}
	if alpha != 0 {
		if l.A, err = position(alpha); err != nil {
			return Layout{}, err
		}
	}
	if !l.Valid() {
		return Layout{}, fmt.Errorf("%w: overlapping masks", ErrLayout)
	}
	return l, nil
}
