package pixel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"testing"
)

var testFormats = []Format{RGBA, BGRA, RGB, BGR}

func TestBuffer(t *testing.T) {
	for _, f := range testFormats {
		t.Run(f.String(), func(t *testing.T) {
			testBuffer(t, f)
		})
	}
}

func testBuffer(t *testing.T, f Format) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(2, 3),
		image.Pt(64, 64),
		image.Pt(256, 32),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			b, err := NewBuffer(test.X, test.Y, f)
			if err != nil {
				it.Fatal(err)
			}

			if v := b.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}
			if b.Width() != test.X || b.Height() != test.Y {
				it.Errorf("expected %dx%d, got %dx%d", test.X, test.Y, b.Width(), b.Height())
			}
			if v := b.RowLen(); v != test.X*f.BytesPerPixel() {
				it.Errorf("expected row length %d, got %d", test.X*f.BytesPerPixel(), v)
			}
			if v := len(b.Pix); v != b.RowLen()*test.Y {
				it.Errorf("expected %d bytes of pixel memory, got %d", b.RowLen()*test.Y, v)
			}
			if v := b.ColorModel(); v != f.Model() {
				it.Errorf("expected color model %T, got %T", f.Model(), v)
			}

			it.Run("row", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					row, ok := b.Row(y)
					if !ok {
						itt.Fatalf("row %d is absent", y)
					}
					if len(row) != b.RowLen() || cap(row) != b.RowLen() {
						itt.Fatalf("row %d has len %d cap %d, expected %d", y, len(row), cap(row), b.RowLen())
					}
				}
				for _, y := range []int{-1, test.Y, test.Y + 1} {
					if row, ok := b.Row(y); ok || row != nil {
						itt.Fatalf("row %d should be absent", y)
					}
				}
			})

			it.Run("rows-round-trip", func(itt *testing.T) {
				for y, row := range b.Rows() {
					for x := range row {
						row[x] = byte(y*7 + x)
					}
				}
				for pass := 0; pass < 2; pass++ {
					var n int
					for y, row := range b.Rows() {
						if y != n {
							itt.Fatalf("pass %d: expected row %d, got %d", pass, n, y)
						}
						for x, v := range row {
							if v != byte(y*7+x) {
								itt.Fatalf("pass %d: byte (%d,%d) is %#02x, expected %#02x", pass, x, y, v, byte(y*7+x))
							}
						}
						n++
					}
					if n != test.Y {
						itt.Fatalf("pass %d: expected %d rows, got %d", pass, test.Y, n)
					}
				}
			})

			it.Run("rows-backward", func(itt *testing.T) {
				want := test.Y - 1
				for y, row := range b.RowsBackward() {
					if y != want {
						itt.Fatalf("expected row %d, got %d", want, y)
					}
					if r, _ := b.Row(y); !bytes.Equal(r, row) {
						itt.Fatalf("row %d differs from Row(%d)", y, y)
					}
					want--
				}
				if want != -1 {
					itt.Fatalf("stopped before row 0, at %d", want+1)
				}
			})

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						b.Set(x, y, c)
						if v := b.ColorModel().Convert(c); b.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, b.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				before := bytes.Clone(b.Pix)
				for y := -test.Y - 1; y < test.Y*2+1; y++ {
					for x := -test.X - 1; x < test.X*2+1; x++ {
						if (image.Point{X: x, Y: y}).In(b.Rect) {
							continue
						}
						b.Set(x, y, testRandomColor())
						if v := b.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
						}
					}
				}
				if !bytes.Equal(before, b.Pix) {
					itt.Fatal("out of bounds Set modified the buffer")
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				b.Fill(c)
				want := b.ColorModel().Convert(c)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if b.At(x, y) != want {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, b.At(x, y), want)
						}
					}
				}
			})

			it.Run("draw", func(itt *testing.T) {
				c := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
				draw.Draw(b, b.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
				if test.X > 0 && test.Y > 0 {
					x, y := rand.Intn(test.X), rand.Intn(test.Y)
					r, g, bl, _ := b.At(x, y).RGBA()
					if r>>8 != 0x10 || g>>8 != 0x20 || bl>>8 != 0x30 {
						itt.Fatalf("pixel (%d,%d) is %#+v after draw", x, y, b.At(x, y))
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				b.Clear()
				for i, v := range b.Pix {
					if v != 0 {
						itt.Fatalf("byte %d is %#02x after clear", i, v)
					}
				}
			})
		})
	}
}

func TestBufferChannelOrder(t *testing.T) {
	c := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	tests := []struct {
		format Format
		want   []byte
	}{
		{RGBA, []byte{0x11, 0x22, 0x33, 0x44}},
		{BGRA, []byte{0x33, 0x22, 0x11, 0x44}},
		{RGB, []byte{0x11 * 0x44 / 0xff, 0x22 * 0x44 / 0xff, 0x33 * 0x44 / 0xff}},
		{BGR, []byte{0x33 * 0x44 / 0xff, 0x22 * 0x44 / 0xff, 0x11 * 0x44 / 0xff}},
	}
	for _, test := range tests {
		t.Run(test.format.String(), func(it *testing.T) {
			b, err := NewBuffer(1, 1, test.format)
			if err != nil {
				it.Fatal(err)
			}
			b.Set(0, 0, c)
			if !test.format.HasAlpha() {
				// Premultiplication rounds; compare within one step.
				for i, v := range b.Pix {
					if d := int(v) - int(test.want[i]); d < -1 || d > 1 {
						it.Fatalf("expected %#v, got %#v", test.want, b.Pix)
					}
				}
				return
			}
			if !bytes.Equal(b.Pix, test.want) {
				it.Fatalf("expected %#v, got %#v", test.want, b.Pix)
			}
		})
	}
}

func TestBufferSize(t *testing.T) {
	tests := []struct {
		w, h   int
		format Format
		err    error
	}{
		{0, 0, RGBA, nil},
		{0, 10, BGR, nil},
		{10, 0, RGB, nil},
		{-1, 1, RGBA, ErrSize},
		{1, -1, RGBA, ErrSize},
		{1, 1, Invalid, ErrFormat},
		{1, 1, Format(42), ErrFormat},
	}
	for _, test := range tests {
		_, err := NewBuffer(test.w, test.h, test.format)
		if !errors.Is(err, test.err) {
			t.Errorf("NewBuffer(%d, %d, %s): expected error %v, got %v", test.w, test.h, test.format, test.err, err)
		}
	}
}

func TestWrapBuffer(t *testing.T) {
	pix := make([]byte, 4*3*2)
	b, err := WrapBuffer(3, 2, BGRA, pix)
	if err != nil {
		t.Fatal(err)
	}
	row, _ := b.Row(1)
	row[0] = 0xaa
	if pix[12] != 0xaa {
		t.Fatal("wrapped buffer does not alias the provided memory")
	}

	if _, err = WrapBuffer(3, 2, BGRA, pix[:len(pix)-1]); !errors.Is(err, ErrSize) {
		t.Fatalf("expected %v, got %v", ErrSize, err)
	}
}

func TestRowsStop(t *testing.T) {
	b, err := NewBuffer(4, 8, RGB)
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for y := range b.Rows() {
		if y == 2 {
			break
		}
		n++
	}
	if n != 2 {
		t.Fatalf("expected to stop after 2 rows, got %d", n)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
