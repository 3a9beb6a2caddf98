//go:build js && wasm

package canvas

import (
	"bytes"
	"image"
	"testing"

	"github.com/hack-pad/safejs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

func testCanvas(t *testing.T, id string, w, h int) {
	t.Helper()
	document, err := safejs.Global().Get("document")
	if err != nil || document.IsUndefined() {
		t.Skip("no document")
	}
	c, err := document.Call("createElement", "canvas")
	require.NoError(t, err)
	require.NoError(t, c.Set("width", w))
	require.NoError(t, c.Set("height", h))
	dataset, err := c.Get("dataset")
	require.NoError(t, err)
	require.NoError(t, dataset.Set(HandleAttribute, id))
	body, err := document.Get("body")
	require.NoError(t, err)
	_, err = body.Call("appendChild", c)
	require.NoError(t, err)
	t.Cleanup(func() { c.Call("remove") })
}

func TestNew(t *testing.T) {
	testCanvas(t, "7", 64, 64)

	_, err := New(64, 64, pixel.RGBA, handle.WebWindow{ID: 8}, nil)
	assert.ErrorIs(t, err, blit.ErrHandleMismatch, "no such canvas")
	_, err = New(64, 64, pixel.BGRA, handle.WebWindow{ID: 7}, nil)
	assert.ErrorIs(t, err, blit.ErrFormatNotSupported)

	b, err := New(64, 64, pixel.RGBA, handle.WebWindow{ID: 7}, nil)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 64*64*4), b.Pix)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
}

func TestBlit(t *testing.T) {
	testCanvas(t, "9", 64, 64)
	window := handle.WebWindow{ID: 9}

	b, err := New(64, 64, pixel.RGBA, window, nil)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	for i, row := range b.Rows() {
		for j := range row {
			row[j] = byte(i % 256)
		}
	}
	want := bytes.Clone(b.Pix)

	require.NoError(t, b.Blit(window))
	require.NoError(t, b.BlitRect(image.Pt(8, 8), image.Pt(0, 0), image.Pt(16, 16), window))
	require.NoError(t, b.BlitRect(image.Pt(0, 0), image.Pt(0, 0), image.Pt(200, 200), window))
	assert.Equal(t, want, b.Pix)

	assert.ErrorIs(t, b.Blit(handle.WebWindow{ID: 10}), blit.ErrHandleMismatch)
}
