package ioctl

import "testing"

func TestCommand(t *testing.T) {
	tests := []struct {
		Test    string
		Command Command
		Want    string
	}{
		{"vscreeninfo", FBIOGetVScreenInfo, "ioctl (0 bytes) 0x4600"},
		{"fscreeninfo", FBIOGetFScreenInfo, "ioctl (0 bytes) 0x4602"},
		{"write", Command(0x40044620), "ioctl write (4 bytes) 0x4620"},
		{"read", Command(0x80a04600), "ioctl read (160 bytes) 0x4600"},
		{"read-write", Command(0xc0080001), "ioctl write read (8 bytes) 0x0001"},
	}
	for _, test := range tests {
		t.Run(test.Test, func(it *testing.T) {
			if v := test.Command.String(); v != test.Want {
				it.Errorf("expected %q, got %q", test.Want, v)
			}
		})
	}
}
