package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BeatGlow/blit/handle"
)

// Config of the test program, read from a YAML file. Command line flags take precedence.
type Config struct {
	Backend string    `yaml:"backend"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Device  string    `yaml:"device"`
	Label   string    `yaml:"label"`
	SPI     SPIConfig `yaml:"spi"`
}

// SPIConfig describes the SPI bus and pins of a panel.
type SPIConfig struct {
	Controller   string `yaml:"controller"`
	Bus          int    `yaml:"bus"`
	Device       int    `yaml:"device"`
	SpeedHz      int64  `yaml:"speed"`
	DC           string `yaml:"dc"`
	Reset        string `yaml:"reset"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	ColumnOffset int    `yaml:"column_offset"`
	RowOffset    int    `yaml:"row_offset"`
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Width:  240,
	Height: 240,
	Device: "/dev/fb0",
	Label:  "blit",
	SPI: SPIConfig{
		Controller: "st7789",
		SpeedHz:    40_000_000,
		DC:         "GPIO24",
		Reset:      "GPIO25",
		Width:      240,
		Height:     240,
		RowOffset:  80,
	},
}

// loadConfig reads the configuration file at name over the defaults. A missing file is not an error.
func loadConfig(name string) (*Config, error) {
	config := new(Config)
	*config = DefaultConfig
	if name == "" {
		return config, nil
	}

	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, config); err != nil {
		return nil, err
	}
	return config, nil
}

// flags binds the command line flags to their configuration values.
type flags struct {
	set        *flag.FlagSet
	width      *int
	height     *int
	device     *string
	label      *string
	controller *string
	spiBus     *int
	spiDevice  *int
	spiSpeed   *int64
	dc         *string
	reset      *string
	colOffset  *int
	rowOffset  *int
}

func newFlags(set *flag.FlagSet) *flags {
	d := DefaultConfig
	return &flags{
		set:        set,
		width:      set.Int("width", d.Width, "Buffer width"),
		height:     set.Int("height", d.Height, "Buffer height"),
		device:     set.String("device", d.Device, "Framebuffer device"),
		label:      set.String("label", d.Label, "Label text"),
		controller: set.String("controller", d.SPI.Controller, "Panel controller (st7789, st7735)"),
		spiBus:     set.Int("spi-bus", d.SPI.Bus, "SPI bus"),
		spiDevice:  set.Int("spi-dev", d.SPI.Device, "SPI device"),
		spiSpeed:   set.Int64("spi-speed", d.SPI.SpeedHz, "SPI speed in Hz"),
		dc:         set.String("dc", d.SPI.DC, "Data/Command GPIO pin (DC)"),
		reset:      set.String("reset", d.SPI.Reset, "Reset GPIO pin"),
		colOffset:  set.Int("col-offset", d.SPI.ColumnOffset, "Panel column offset"),
		rowOffset:  set.Int("row-offset", d.SPI.RowOffset, "Panel row offset"),
	}
}

// apply overrides the configuration with the flags given on the command line.
func (f *flags) apply(config *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			config.Width = *f.width
		case "height":
			config.Height = *f.height
		case "device":
			config.Device = *f.device
		case "label":
			config.Label = *f.label
		case "controller":
			config.SPI.Controller = *f.controller
		case "spi-bus":
			config.SPI.Bus = *f.spiBus
		case "spi-dev":
			config.SPI.Device = *f.spiDevice
		case "spi-speed":
			config.SPI.SpeedHz = *f.spiSpeed
		case "dc":
			config.SPI.DC = *f.dc
		case "reset":
			config.SPI.Reset = *f.reset
		case "col-offset":
			config.SPI.ColumnOffset = *f.colOffset
		case "row-offset":
			config.SPI.RowOffset = *f.rowOffset
		}
	})
}

// parseController returns the panel controller with the given name.
func parseController(name string) (handle.PanelController, error) {
	switch strings.ToLower(name) {
	case "", "st7789":
		return handle.ST7789, nil
	case "st7735":
		return handle.ST7735, nil
	default:
		return 0, fmt.Errorf("unsupported panel controller %q", name)
	}
}
