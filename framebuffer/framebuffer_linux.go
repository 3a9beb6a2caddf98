package framebuffer

import (
	"errors"
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/BeatGlow/blit"
	"github.com/BeatGlow/blit/handle"
	"github.com/BeatGlow/blit/internal/ioctl"
	"github.com/BeatGlow/blit/pixel"
)

// New opens the Linux framebuffer device (fbdev) named by the window, typically /dev/fb[0..x], and
// creates a w×h buffer for it. The format must be the native format of this backend.
func New(w, h int, f pixel.Format, window handle.Window, _ handle.Display) (*Buffer, error) {
	const op = "framebuffer.New"

	if err := blit.CheckSize(op, w, h); err != nil {
		return nil, err
	}
	if err := blit.CheckFormat(op, Platform, f); err != nil {
		return nil, err
	}
	path, ok := Resolve(window)
	if !ok {
		return nil, blit.Errorf(op, blit.HandleMismatch, "%v is not a framebuffer device", window)
	}

	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	fd := int(file.Fd())

	var (
		fix    fixScreenInfo
		screen varScreenInfo
	)
	if err = ioctl.Do(fd, ioctl.FBIOGetFScreenInfo, unsafe.Pointer(&fix)); err != nil {
		_ = file.Close()
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	if err = ioctl.Do(fd, ioctl.FBIOGetVScreenInfo, unsafe.Pointer(&screen)); err != nil {
		_ = file.Close()
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}
	layout, err := screenLayout(&screen)
	if err != nil {
		_ = file.Close()
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	mem, err := unix.Mmap(fd, 0, int(fix.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = file.Close()
		return nil, blit.Wrap(op, blit.NativeResourceCreationFailed, err)
	}

	dev := device{
		mem:        mem,
		lineLength: int(fix.LineLength),
		offset:     image.Pt(int(screen.Xoffset), int(screen.Yoffset)),
		size:       image.Pt(int(screen.Xres), int(screen.Yres)),
		layout:     layout,
	}
	return newBuffer(op, w, h, f, path, dev, func() error {
		return errors.Join(unix.Munmap(mem), file.Close())
	})
}
