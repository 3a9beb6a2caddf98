package blit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/blit/pixel"
)

func TestDeclare(t *testing.T) {
	const p Platform = "test-declare"
	Declare(p, pixel.BGRA, pixel.RGBA, pixel.BGRA)

	native, ok := NativeFormat(p)
	require.True(t, ok)
	assert.Equal(t, pixel.BGRA, native)
	assert.Equal(t, []pixel.Format{pixel.BGRA, pixel.RGBA}, Formats(p))
	assert.True(t, Supports(p, pixel.RGBA))
	assert.False(t, Supports(p, pixel.RGB))
	assert.Contains(t, Platforms(), p)

	assert.Panics(t, func() { Declare(p, pixel.BGRA) })
	assert.Panics(t, func() { Declare("test-invalid", pixel.Invalid) })
	assert.Panics(t, func() { Declare("test-invalid-supported", pixel.RGB, pixel.Format(200)) })
}

func TestCheckFormat(t *testing.T) {
	const p Platform = "test-check"
	Declare(p, pixel.RGB, pixel.BGR)

	assert.NoError(t, CheckFormat("op", p, pixel.RGB))
	assert.ErrorIs(t, CheckFormat("op", p, pixel.BGR), ErrFormatNotSupported)
	assert.ErrorIs(t, CheckFormat("op", p, pixel.RGBA), ErrFormatNotSupported)
	assert.ErrorIs(t, CheckFormat("op", "test-undeclared", pixel.RGB), ErrFormatNotSupported)

	_, ok := NativeFormat("test-undeclared")
	assert.False(t, ok)
	assert.Empty(t, Formats("test-undeclared"))
}
