package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		config, err := loadConfig(filepath.Join(t.TempDir(), "blit.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig, *config)
	})

	t.Run("file", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "blit.yaml")
		require.NoError(t, os.WriteFile(name, []byte(`
backend: panel
width: 135
label: hello
spi:
  controller: st7735
  bus: 1
  dc: GPIO22
  row_offset: 40
`), 0o644))

		config, err := loadConfig(name)
		require.NoError(t, err)
		assert.Equal(t, "panel", config.Backend)
		assert.Equal(t, 135, config.Width)
		assert.Equal(t, DefaultConfig.Height, config.Height)
		assert.Equal(t, "hello", config.Label)
		assert.Equal(t, "st7735", config.SPI.Controller)
		assert.Equal(t, 1, config.SPI.Bus)
		assert.Equal(t, "GPIO22", config.SPI.DC)
		assert.Equal(t, DefaultConfig.SPI.Reset, config.SPI.Reset)
		assert.Equal(t, 40, config.SPI.RowOffset)
	})

	t.Run("invalid", func(t *testing.T) {
		name := filepath.Join(t.TempDir(), "blit.yaml")
		require.NoError(t, os.WriteFile(name, []byte("width: [1, 2]\n"), 0o644))
		_, err := loadConfig(name)
		assert.Error(t, err)
	})
}

func TestFlagsApply(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	f := newFlags(set)
	require.NoError(t, set.Parse([]string{"-width", "320", "-dc", "GPIO5", "-controller", "st7735"}))

	config := DefaultConfig
	config.Height = 100
	f.apply(&config)
	assert.Equal(t, 320, config.Width)
	assert.Equal(t, 100, config.Height, "flags not given keep the file value")
	assert.Equal(t, "GPIO5", config.SPI.DC)
	assert.Equal(t, "st7735", config.SPI.Controller)
}
