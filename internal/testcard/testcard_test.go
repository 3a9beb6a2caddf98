package testcard

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/blit/pixel"
)

func TestRows(t *testing.T) {
	b, err := pixel.NewBuffer(4, 300, pixel.BGRA)
	require.NoError(t, err)
	Rows(b.Rows())
	for i, row := range b.Rows() {
		for _, v := range row {
			if v != byte(i%256) {
				t.Fatalf("row %d: expected %d, got %d", i, i%256, v)
			}
		}
	}
}

func TestFrame(t *testing.T) {
	b, err := pixel.NewBuffer(8, 6, pixel.RGB)
	require.NoError(t, err)
	Frame(b, b.Bounds(), color.White)

	want := []string{
		"########",
		"###..###",
		"#..##..#",
		"#..##..#",
		"###..###",
		"########",
	}
	got := make([]string, b.Height())
	for y := range got {
		row := make([]byte, b.Width())
		for x := range row {
			row[x] = '.'
			if r, _, _, _ := b.At(x, y).RGBA(); r == 0xffff {
				row[x] = '#'
			}
		}
		got[y] = string(row)
	}
	assert.Equal(t, want, got)
}

func TestLine(t *testing.T) {
	b, err := pixel.NewBuffer(5, 5, pixel.RGBA)
	require.NoError(t, err)
	Line(b, image.Pt(4, 4), image.Pt(0, 0), color.White)
	for i := 0; i < 5; i++ {
		assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, b.At(i, i))
	}
	assert.Equal(t, color.NRGBA{}, b.At(1, 0))
}

func TestBox(t *testing.T) {
	b, err := pixel.NewBuffer(4, 4, pixel.BGRA)
	require.NoError(t, err)
	Box(b, image.Rect(1, 1, 3, 3), color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, pixel.BGRAColor{R: 0xff, A: 0xff}, b.At(1, 1))
	assert.Equal(t, pixel.BGRAColor{R: 0xff, A: 0xff}, b.At(2, 2))
	assert.Equal(t, pixel.BGRAColor{}, b.At(0, 0))
	assert.Equal(t, pixel.BGRAColor{}, b.At(3, 3))
}

func TestLabel(t *testing.T) {
	l, err := NewLabeler(12)
	require.NoError(t, err)

	bounds := l.Bounds("blit")
	assert.False(t, bounds.Empty())
	assert.Less(t, bounds.Min.Y, 0, "glyphs rise above the baseline")

	b, err := pixel.NewBuffer(64, 24, pixel.RGB)
	require.NoError(t, err)
	require.NoError(t, l.Draw(b, image.Pt(2, 18), "blit", color.White))

	var lit int
	for _, v := range b.Pix {
		if v != 0 {
			lit++
		}
	}
	assert.NotZero(t, lit)
}
