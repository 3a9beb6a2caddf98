//go:build windows

package driver

import (
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/win32"
)

var backends = map[handle.Kind]backend{
	handle.Win32: {win32.Platform, wrap(win32.New)},
}
