package pixel

// Swizzle converts pixels between two layouts by moving channel bytes. It never changes channel
// values, with one exception: a missing source alpha is written as fully opaque.
type Swizzle struct {
	src, dst Layout
}

// NewSwizzle returns the conversion from src to dst.
func NewSwizzle(src, dst Layout) Swizzle {
	return Swizzle{src: src, dst: dst}
}

// Src is the source layout.
func (s Swizzle) Src() Layout { return s.src }

// Dst is the destination layout.
func (s Swizzle) Dst() Layout { return s.dst }

// Identity reports if the conversion is a plain byte copy. A destination without alpha accepts
// whatever the source keeps in the same byte, as that byte is padding.
func (s Swizzle) Identity() bool {
	return s.src.Size == s.dst.Size &&
		s.src.R == s.dst.R &&
		s.src.G == s.dst.G &&
		s.src.B == s.dst.B &&
		(s.dst.A == -1 || s.dst.A == s.src.A)
}

// Convert writes the pixels of src to dst and returns the number of pixels converted, which is the
// smaller of the two pixel counts.
func (s Swizzle) Convert(dst, src []byte) int {
	if s.src.Size == 0 || s.dst.Size == 0 {
		return 0
	}
	n := min(len(src)/s.src.Size, len(dst)/s.dst.Size)
	if s.Identity() {
		copy(dst, src[:n*s.src.Size])
		return n
	}

	var (
		sl, dl = s.src, s.dst
		alpha  = dl.A >= 0
		opaque = sl.A < 0
	)
	for i := 0; i < n; i++ {
		var (
			sp = src[i*sl.Size : i*sl.Size+sl.Size]
			dp = dst[i*dl.Size : i*dl.Size+dl.Size]
		)
		r, g, b := sp[sl.R], sp[sl.G], sp[sl.B]
		dp[dl.R] = r
		dp[dl.G] = g
		dp[dl.B] = b
		if alpha {
			if opaque {
				dp[dl.A] = 0xff
			} else {
				dp[dl.A] = sp[sl.A]
			}
		}
	}
	return n
}
