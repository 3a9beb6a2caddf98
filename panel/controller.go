package panel

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/blit/handle"
)

// Commands shared by the supported controllers (MIPI DCS).
const (
	cmdSWRESET = 0x01 // Software Reset
	cmdSLPOUT  = 0x11 // Sleep Out
	cmdNORON   = 0x13 // Normal Display Mode On
	cmdINVON   = 0x21 // Display Inversion On
	cmdDISPON  = 0x29 // Display On
	cmdCASET   = 0x2A // Column Address Set
	cmdRASET   = 0x2B // Row Address Set
	cmdRAMWR   = 0x2C // Memory Write
	cmdMADCTL  = 0x36 // Memory Data Access Control
	cmdCOLMOD  = 0x3A // Interface Pixel Format
)

// Memory Data Access Control (MADCTL) value: top to bottom, left to right, RGB order.
const madctlRGB = 0x00

// controller describes a panel controller chip.
type controller struct {
	name string

	// columns and rows of the controller memory.
	columns, rows int

	// init wakes the controller up and selects 18-bit pixels in RGB order.
	init func(*link) error
}

var controllers = map[handle.PanelController]controller{
	handle.ST7789: {name: "st7789", columns: 240, rows: 320, init: initST7789},
	handle.ST7735: {name: "st7735", columns: 132, rows: 162, init: initST7735},
}

// geometry is the visible part of the controller memory.
type geometry struct {
	controller
	width, height        int
	colOffset, rowOffset int
}

// panelGeometry returns the geometry of a resolved panel.
func panelGeometry(pw handle.PanelWindow) geometry {
	return geometry{
		controller: controllers[pw.Controller],
		width:      pw.Width,
		height:     pw.Height,
		colOffset:  pw.ColumnOffset,
		rowOffset:  pw.RowOffset,
	}
}

func (g geometry) bounds() image.Rectangle {
	return image.Rect(0, 0, g.width, g.height)
}

// check validates the geometry against the controller memory.
func (g geometry) check() error {
	switch {
	case g.width <= 0 || g.height <= 0:
		return fmt.Errorf("%s: invalid size %dx%d", g.name, g.width, g.height)
	case g.colOffset < 0 || g.rowOffset < 0:
		return fmt.Errorf("%s: invalid offset %d,%d", g.name, g.colOffset, g.rowOffset)
	case g.colOffset+g.width > g.columns || g.rowOffset+g.height > g.rows:
		return fmt.Errorf("%s: %dx%d at offset %d,%d exceeds the controller memory of %dx%d",
			g.name, g.width, g.height, g.colOffset, g.rowOffset, g.columns, g.rows)
	}
	return nil
}

// reset pulses the hardware reset line.
func reset(pin gpio.PinOut) error {
	if err := pin.Out(gpio.High); err != nil {
		return err
	}
	sleep(100 * time.Millisecond)
	if err := pin.Out(gpio.Low); err != nil {
		return err
	}
	sleep(100 * time.Millisecond)
	if err := pin.Out(gpio.High); err != nil {
		return err
	}
	sleep(10 * time.Millisecond)
	return nil
}

// setWindow selects the controller memory for the pixels x0..x1, y0..y1 (inclusive) of the panel
// and starts a memory write.
func setWindow(l *link, g geometry, x0, y0, x1, y1 int) error {
	x0 += g.colOffset
	x1 += g.colOffset
	y0 += g.rowOffset
	y1 += g.rowOffset
	return l.commands([][]byte{
		{cmdCASET, byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)},
		{cmdRASET, byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)},
		{cmdRAMWR},
	})
}
