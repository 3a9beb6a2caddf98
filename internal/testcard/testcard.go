// Package testcard draws test patterns into pixel buffers.
package testcard

import (
	"image"
	"image/color"
	"image/draw"
	"iter"
)

// Rows sets every byte of row i to i modulo 256.
func Rows(rows iter.Seq2[int, []byte]) {
	for i, row := range rows {
		v := byte(i % 256)
		for j := range row {
			row[j] = v
		}
	}
}

// Gradient fills r with a diagonal color gradient, shifted by offset.
func Gradient(dst draw.Image, r image.Rectangle, offset int) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, color.RGBA{
				R: uint8(x + y + offset),
				G: uint8(x - y + offset),
				B: uint8(x + y - offset),
				A: 0xff,
			})
		}
	}
}

// Frame draws a one pixel border along the inside of r and both of its diagonals.
func Frame(dst draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	var (
		x0, y0 = r.Min.X, r.Min.Y
		x1, y1 = r.Max.X - 1, r.Max.Y - 1
	)
	Line(dst, image.Pt(x0, y0), image.Pt(x1, y0), c)
	Line(dst, image.Pt(x0, y1), image.Pt(x1, y1), c)
	Line(dst, image.Pt(x0, y0), image.Pt(x0, y1), c)
	Line(dst, image.Pt(x1, y0), image.Pt(x1, y1), c)
	Line(dst, image.Pt(x0, y0), image.Pt(x1, y1), c)
	Line(dst, image.Pt(x0, y1), image.Pt(x1, y0), c)
}

// Box fills r.
func Box(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Line draws a line between two points, both included.
func Line(dst draw.Image, a, b image.Point, c color.Color) {
	var (
		dx, sx = abs(b.X - a.X), sign(b.X - a.X)
		dy, sy = -abs(b.Y - a.Y), sign(b.Y - a.Y)
		e      = dx + dy
	)
	for {
		dst.Set(a.X, a.Y, c)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
