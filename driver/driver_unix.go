//go:build (linux || freebsd || netbsd || openbsd || dragonfly) && !android

package driver

import (
	"github.com/BeatGlow/blit/framebuffer"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/panel"
	"github.com/BeatGlow/blit/x11"
)

var backends = map[handle.Kind]backend{
	handle.X11:         {x11.Platform, wrap(x11.New)},
	handle.Framebuffer: {framebuffer.Platform, wrap(framebuffer.New)},
	handle.Panel:       {panel.Platform, wrap(panel.New)},
}
