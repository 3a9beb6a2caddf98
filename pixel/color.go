package pixel

import "image/color"

// Models for the color types of this package.
var (
	BGRAModel color.Model = color.ModelFunc(bgraModel)
	RGBModel  color.Model = color.ModelFunc(rgbModel)
	BGRModel  color.Model = color.ModelFunc(bgrModel)
)

// BGRAColor represents a non-alpha-premultiplied 32-bit color stored blue first.
type BGRAColor struct {
	B, G, R, A uint8
}

func (c BGRAColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func bgraModel(c color.Color) color.Color {
	if _, ok := c.(BGRAColor); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return BGRAColor{B: n.B, G: n.G, R: n.R, A: n.A}
}

// RGBColor represents an opaque 24-bit color.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGBColor); ok {
		return c
	}
	n := opaque(c)
	return RGBColor{R: n.R, G: n.G, B: n.B}
}

// BGRColor represents an opaque 24-bit color stored blue first.
type BGRColor struct {
	B, G, R uint8
}

func (c BGRColor) RGBA() (r, g, b, a uint32) {
	return RGBColor{R: c.R, G: c.G, B: c.B}.RGBA()
}

func bgrModel(c color.Color) color.Color {
	if _, ok := c.(BGRColor); ok {
		return c
	}
	n := opaque(c)
	return BGRColor{B: n.B, G: n.G, R: n.R}
}

// opaque drops the alpha channel, keeping the color as it would appear composited over black.
func opaque(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}

// Model returns the color model matching the format.
func (f Format) Model() color.Model {
	switch f {
	case RGBA:
		return color.NRGBAModel
	case BGRA:
		return BGRAModel
	case RGB:
		return RGBModel
	case BGR:
		return BGRModel
	default:
		return nil
	}
}
