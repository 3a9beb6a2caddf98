//go:build js && wasm

package driver

import (
	"github.com/BeatGlow/blit/canvas"
	"github.com/BeatGlow/blit/handle"
)

var backends = map[handle.Kind]backend{
	handle.Web: {canvas.Platform, wrap(canvas.New)},
}
