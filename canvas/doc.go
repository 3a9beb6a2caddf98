// Package canvas presents pixel buffers in HTML canvas elements from WebAssembly.
//
// A canvas is found through its data-raw-handle attribute, the identifier carried by a
// [handle.WebWindow]. The buffer owns a Uint8ClampedArray and an ImageData of the same size; a blit
// copies the dirty rows into the array and puts the image data on the canvas' 2d context.
package canvas

import (
	"strconv"

	"github.com/BeatGlow/blit/handle"
)

// HandleAttribute is the dataset key, in JavaScript's camel case, that holds a canvas' handle ID.
const HandleAttribute = "rawHandle"

// parseHandle parses the value of a data-raw-handle attribute. Zero is never a valid ID.
func parseHandle(s string) (uint32, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint32(id), true
}

// Resolve extracts the canvas ID. It returns false for other handle kinds or ID 0.
func Resolve(w handle.Window) (uint32, bool) {
	ww, ok := w.(handle.WebWindow)
	if !ok || ww.ID == 0 {
		return 0, false
	}
	return ww.ID, true
}
