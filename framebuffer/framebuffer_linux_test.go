package framebuffer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

func TestNewDevice(t *testing.T) {
	_, err := New(4, 4, pixel.RGB, handle.FramebufferWindow{Device: "/dev/fb0"}, nil)
	assert.ErrorIs(t, err, blit.ErrFormatNotSupported)

	_, err = New(4, 4, pixel.BGRA, handle.FramebufferWindow{Device: "/dev/null"}, nil)
	assert.ErrorIs(t, err, blit.ErrNativeResource, "not a framebuffer")

	const path = "/dev/fb0"
	if _, err := os.Stat(path); err != nil {
		t.Skipf("%s: %v", path, err)
	}
	window := handle.FramebufferWindow{Device: path}
	b, err := New(64, 64, pixel.BGRA, window, nil)
	if err != nil {
		t.Skipf("%s: %v", path, err)
	}
	t.Cleanup(func() { require.NoError(t, b.Close()) })
	require.NoError(t, b.Blit(window))
}
