//go:build !((linux || freebsd || netbsd || openbsd || dragonfly) && !android) && !windows && !(js && wasm)

package driver

import "github.com/BeatGlow/blit/handle"

var backends = map[handle.Kind]backend{}
