package panel

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// defaultBatchSize is the largest single SPI transfer, the default buffer size of Linux spidev.
const defaultBatchSize = 4096

// link sends commands and data to a panel controller. The data/command pin is low for command
// bytes and high for parameters and pixel data.
type link struct {
	bus       spi.Conn
	dc        gpio.PinOut
	batchSize int
}

func newLink(bus spi.Conn, dc gpio.PinOut) *link {
	l := &link{
		bus:       bus,
		dc:        dc,
		batchSize: defaultBatchSize,
	}
	if limits, ok := bus.(conn.Limits); ok {
		if n := limits.MaxTxSize(); n > 0 && n < l.batchSize {
			l.batchSize = n
		}
	}
	return l
}

func (l *link) String() string {
	return fmt.Sprintf("SPI %s", l.bus)
}

// command sends a command byte with optional parameters.
func (l *link) command(cmnd byte, args ...byte) error {
	if err := l.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := l.bus.Tx([]byte{cmnd}, nil); err != nil {
		return fmt.Errorf("panel: command %#02x: %w", cmnd, err)
	}
	if len(args) > 0 {
		return l.data(args)
	}
	return nil
}

// commands sends a sequence of commands, each as command byte followed by its parameters.
func (l *link) commands(commands [][]byte) error {
	for _, c := range commands {
		if err := l.command(c[0], c[1:]...); err != nil {
			return err
		}
	}
	return nil
}

// data sends data bytes in batches.
func (l *link) data(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := l.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := min(len(data), l.batchSize)
		if err := l.bus.Tx(data[:n], nil); err != nil {
			return fmt.Errorf("panel: write %d bytes: %w", n, err)
		}
		data = data[n:]
	}
	return nil
}
