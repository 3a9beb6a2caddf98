package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/pixel"
)

var testWindows = []handle.Window{
	handle.X11Window{},
	handle.Win32Window{},
	handle.WebWindow{},
	handle.FramebufferWindow{},
	handle.PanelWindow{},
}

func TestNativeFormat(t *testing.T) {
	for _, window := range testWindows {
		t.Run(handle.KindOf(window).String(), func(t *testing.T) {
			f, err := NativeFormat(window)
			if !Supported(window.Kind()) {
				assert.ErrorIs(t, err, blit.ErrHandleMismatch)
				return
			}
			require.NoError(t, err)
			want, ok := blit.NativeFormat(backends[window.Kind()].platform)
			require.True(t, ok)
			assert.Equal(t, want, f)
		})
	}
}

func TestNewMismatch(t *testing.T) {
	_, err := New(64, 64, pixel.BGRA, nil, nil)
	assert.ErrorIs(t, err, blit.ErrHandleMismatch)

	for _, window := range testWindows {
		t.Run(handle.KindOf(window).String(), func(t *testing.T) {
			// Zero handles never resolve, supported or not.
			f, err := NativeFormat(window)
			if err != nil {
				f = pixel.BGRA
			}
			b, err := New(64, 64, f, window, nil)
			assert.ErrorIs(t, err, blit.ErrHandleMismatch)
			assert.Nil(t, b)
		})
	}
}

func TestNewFormat(t *testing.T) {
	for _, window := range testWindows {
		if !Supported(window.Kind()) {
			continue
		}
		t.Run(window.Kind().String(), func(t *testing.T) {
			native, err := NativeFormat(window)
			require.NoError(t, err)
			for _, f := range []pixel.Format{pixel.RGBA, pixel.BGRA, pixel.RGB, pixel.BGR} {
				if f == native {
					continue
				}
				_, err := New(64, 64, f, window, nil)
				assert.ErrorIs(t, err, blit.ErrFormatNotSupported, "%s", f)
			}
		})
	}
}
