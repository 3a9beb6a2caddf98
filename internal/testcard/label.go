package testcard

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Labeler renders text in the Go Regular font.
type Labeler struct {
	font *truetype.Font
	size float64
}

// NewLabeler returns a Labeler for text of the given size in points, at 72 DPI.
func NewLabeler(size float64) (*Labeler, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Labeler{font: f, size: size}, nil
}

// Bounds returns the rectangle covered by text drawn with its baseline origin at (0, 0).
func (l *Labeler) Bounds(text string) image.Rectangle {
	face := truetype.NewFace(l.font, &truetype.Options{Size: l.size, Hinting: font.HintingFull})
	defer face.Close()
	bounds, _ := font.BoundString(face, text)
	return image.Rect(
		bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil(),
	)
}

// Draw renders text with its baseline origin at dot, clipped to the bounds of dst.
func (l *Labeler) Draw(dst draw.Image, dot image.Point, text string, c color.Color) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(l.font)
	ctx.SetFontSize(l.size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	_, err := ctx.DrawString(text, fixed.P(dot.X, dot.Y))
	return err
}
