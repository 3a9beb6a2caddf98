// Package ioctl issues device control requests on file descriptors.
package ioctl

import "fmt"

// Mode is the direction encoded in an ioctl command.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl.
type Command uintptr

// Framebuffer device commands, from <linux/fb.h>.
const (
	FBIOGetVScreenInfo Command = 0x4600
	FBIOGetFScreenInfo Command = 0x4602
)

func (c Command) String() string {
	var (
		mode = Mode(c >> 30 & 0x03)
		size = c >> 16 & 0x3fff
		cmd  = c & 0xffff
		str  string
	)
	if mode&Write > 0 {
		str += " write"
	}
	if mode&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, size, uintptr(cmd))
}
