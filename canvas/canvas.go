//go:build js && wasm

package canvas

import (
	"errors"
	"fmt"

	"github.com/hack-pad/safejs"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/pixel"
)

// Platform is the name of this backend in the format registry.
const Platform blit.Platform = "canvas"

func init() {
	blit.Declare(Platform, pixel.RGBA)
}

// NativeFormat is the buffer format canvas buffers are created with.
func NativeFormat() pixel.Format {
	f, _ := blit.NativeFormat(Platform)
	return f
}

// errNoCanvas is returned by findCanvas if no canvas carries the ID.
var errNoCanvas = errors.New("canvas: no canvas with data-raw-handle")

// findCanvas returns the canvas element whose data-raw-handle attribute matches id.
func findCanvas(id uint32) (safejs.Value, error) {
	document, err := safejs.Global().Get("document")
	if err != nil {
		return safejs.Value{}, err
	}
	canvases, err := document.Call("getElementsByTagName", "canvas")
	if err != nil {
		return safejs.Value{}, err
	}
	n, err := canvases.Length()
	if err != nil {
		return safejs.Value{}, err
	}
	for i := 0; i < n; i++ {
		c, err := canvases.Index(i)
		if err != nil {
			return safejs.Value{}, err
		}
		dataset, err := c.Get("dataset")
		if err != nil {
			return safejs.Value{}, err
		}
		v, err := dataset.Get(HandleAttribute)
		if err != nil {
			return safejs.Value{}, err
		}
		if v.Type() != safejs.TypeString {
			continue
		}
		s, err := v.String()
		if err != nil {
			return safejs.Value{}, err
		}
		if got, ok := parseHandle(s); ok && got == id {
			return c, nil
		}
	}
	return safejs.Value{}, fmt.Errorf("%w %d", errNoCanvas, id)
}
