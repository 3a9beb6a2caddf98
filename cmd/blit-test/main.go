// Command blit-test draws an animated test card into a window, framebuffer device or SPI panel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/driver"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/internal/testcard"
)

// errUsage is returned by run if no backend is configured.
var errUsage = errors.New("no backend given")

func main() {
	if err := run(os.Args[1:]); errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <x11|framebuffer|panel>\n", os.Args[0])
		os.Exit(1)
	} else if err != nil {
		fatal(err)
	}
}

// run draws the test card until interrupted. Native resources are released before it returns.
func run(args []string) error {
	set := flag.NewFlagSet("blit-test", flag.ContinueOnError)
	configFlag := set.String("config", "blit.yaml", "Configuration file")
	debugFlag := set.Bool("debug", false, "Enable debug logging")
	f := newFlags(set)
	if err := set.Parse(args); err != nil {
		return err
	}

	config, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	f.apply(config)
	if set.NArg() > 0 {
		config.Backend = set.Arg(0)
	}
	if config.Backend == "" {
		return errUsage
	}

	if *debugFlag {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	window, display, closer, err := open(config)
	if err != nil {
		return err
	}
	defer closer()
	fmt.Printf("using window: %s\n", window)

	format, err := driver.NativeFormat(window)
	if err != nil {
		return err
	}
	fmt.Printf("using format: %s\n", format)

	b, err := driver.New(config.Width, config.Height, format, window, display)
	if err != nil {
		return err
	}
	defer b.Close()

	testcard.Rows(b.Rows())
	if err = b.Blit(window); err != nil {
		return err
	}

	img, ok := b.(draw.Image)
	if !ok {
		fmt.Println("buffer can not be drawn on, showing row pattern only")
		return nil
	}

	labeler, err := testcard.NewLabeler(14)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
		r      = img.Bounds()
		text   = labeler.Bounds(config.Label)
		dot    = image.Pt(r.Dx()/2-text.Dx()/2, r.Dy()/2+text.Dy()/2)
		box    = text.Add(dot).Inset(-2)
		dirty  = r.Inset(r.Dx() / 4)
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for {
		testcard.Gradient(img, r.Inset(1), offset)
		testcard.Frame(img, r, color.White)
		testcard.Box(img, box, color.Black)
		if err = labeler.Draw(img, dot, config.Label, color.White); err != nil {
			return err
		}

		// Alternate between full updates and partial updates of the center.
		if offset%2 == 0 {
			err = b.Blit(window)
		} else {
			err = b.BlitRect(dirty.Min, dirty.Min, dirty.Size(), window)
		}
		if err != nil {
			return err
		}

		offset++
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// open returns the handles for the configured backend, and a function releasing them.
func open(config *Config) (handle.Window, handle.Display, func(), error) {
	switch config.Backend {
	case "x11":
		return openX11(config)
	case "framebuffer", "fb":
		return handle.FramebufferWindow{Device: config.Device}, nil, func() {}, nil
	case "panel", "spi":
		return openPanel(config)
	default:
		return nil, nil, nil, fmt.Errorf("unsupported backend %q", config.Backend)
	}
}

func openX11(config *Config) (handle.Window, handle.Display, func(), error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, nil, nil, err
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	id, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, nil, nil, err
	}
	if err = xproto.CreateWindowChecked(conn, screen.RootDepth, id, screen.Root,
		0, 0, uint16(config.Width), uint16(config.Height), 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, xproto.EventMaskExposure},
	).Check(); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}
	if err = xproto.MapWindowChecked(conn, id).Check(); err != nil {
		conn.Close()
		return nil, nil, nil, err
	}

	return handle.X11Window{Window: uint32(id)}, handle.X11Display{Conn: conn}, func() {
		_ = xproto.DestroyWindowChecked(conn, id).Check()
		conn.Close()
	}, nil
}

func openPanel(config *Config) (handle.Window, handle.Display, func(), error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, nil, err
	}

	port, err := spireg.Open(fmt.Sprintf("SPI%d.%d", config.SPI.Bus, config.SPI.Device))
	if err != nil {
		return nil, nil, nil, err
	}
	conn, err := port.Connect(physic.Frequency(config.SPI.SpeedHz)*physic.Hertz, spi.Mode3, 8)
	if err != nil {
		_ = port.Close()
		return nil, nil, nil, err
	}

	controller, err := parseController(config.SPI.Controller)
	if err != nil {
		_ = port.Close()
		return nil, nil, nil, err
	}

	window := handle.PanelWindow{
		Controller:   controller,
		Conn:         conn,
		Width:        config.SPI.Width,
		Height:       config.SPI.Height,
		ColumnOffset: config.SPI.ColumnOffset,
		RowOffset:    config.SPI.RowOffset,
	}
	if pin := gpioreg.ByName(config.SPI.DC); pin != nil {
		window.DC = pin
	} else {
		_ = port.Close()
		return nil, nil, nil, fmt.Errorf("invalid data/command (DC) GPIO pin %q", config.SPI.DC)
	}
	if config.SPI.Reset != "" {
		if pin := gpioreg.ByName(config.SPI.Reset); pin != nil {
			window.Reset = pin
		}
	}
	return window, nil, func() { _ = port.Close() }, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
