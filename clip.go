package blit

import "image"

// ClipSource clips a blit rectangle to the source bounds, the way Xlib's XPutImage does: a negative
// source origin moves the destination origin along, and the extent is cut at the source edges.
// It returns false if nothing is left to transfer.
func ClipSource(bounds image.Rectangle, src, dst, size image.Point) (image.Point, image.Point, image.Point, bool) {
	src, dst, size = clip(bounds, src, dst, size)
	return src, dst, size, size.X > 0 && size.Y > 0
}

// ClipDestination clips a blit rectangle to the destination bounds, moving the source origin
// along. Backends that write to device memory use it where a window system would clip for them.
func ClipDestination(bounds image.Rectangle, src, dst, size image.Point) (image.Point, image.Point, image.Point, bool) {
	dst, src, size = clip(bounds, dst, src, size)
	return src, dst, size, size.X > 0 && size.Y > 0
}

// clip restricts the rectangle at p to r, shifting q by the same amount.
func clip(r image.Rectangle, p, q, size image.Point) (image.Point, image.Point, image.Point) {
	if d := r.Min.X - p.X; d > 0 {
		p.X += d
		q.X += d
		size.X -= d
	}
	if d := r.Min.Y - p.Y; d > 0 {
		p.Y += d
		q.Y += d
		size.Y -= d
	}
	if d := p.X + size.X - r.Max.X; d > 0 {
		size.X -= d
	}
	if d := p.Y + size.Y - r.Max.Y; d > 0 {
		size.Y -= d
	}
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return p, q, size
}
