package panel

import "time"

// Registers (from st7789.pdf).
const (
	st7789PORCTRL   = 0xB2 // Porch Setting
	st7789GCTRL     = 0xB7 // Gate Control
	st7789VCOMS     = 0xBB // VCOM Setting
	st7789LCMCTRL   = 0xC0 // LCM Control
	st7789VDVVRHEN  = 0xC2 // VDV and VRH Command Enable
	st7789VRHS      = 0xC3 // VRH Set
	st7789VDVSET    = 0xC4 // VDV Set
	st7789VCMOFSET  = 0xC5 // VCOM Offset Set
	st7789FRCTR2    = 0xC6 // Frame Rate Control in Normal Mode
	st7789PWCTRL1   = 0xD0 // Power Control 1
	st7789PVGAMCTRL = 0xE0 // Positive Voltage Gamma Control
	st7789NVGAMCTRL = 0xE1 // Negative Voltage Gamma Control
)

// st7789Color18Bit is the Interface Pixel Format (COLMOD) for 262K colors at 18 bit/pixel.
const st7789Color18Bit = 0x66

// initST7789 wakes the controller up and configures it for 18-bit pixels in RGB order.
func initST7789(l *link) error {
	if err := l.command(cmdSLPOUT); err != nil {
		return err
	}
	sleep(150 * time.Millisecond)

	if err := l.commands([][]byte{
		{cmdMADCTL, madctlRGB},
		{cmdCOLMOD, st7789Color18Bit},
		// Porch Setting: default
		{st7789PORCTRL, 0x0C, 0x0C, 0x00, 0x33, 0x33},
		// Gate Control: 13.26V / -10.43V (default)
		{st7789GCTRL, 0x35},
		// VCOM Setting: 0.75V
		{st7789VCOMS, 0x1A},
		{st7789LCMCTRL, 0x2C},
		{st7789VDVVRHEN, 0x01},
		// VRH Set: 4.1V+(vcom+vcom offset+vdv)
		{st7789VRHS, 0x0B},
		{st7789VDVSET, 0x20},
		{st7789VCMOFSET, 0x20},
		// Frame Rate Control in Normal Mode: 60Hz (default)
		{st7789FRCTR2, 0x0F},
		{st7789PWCTRL1, 0xA4, 0xA1},
		{cmdINVON},
		{st7789PVGAMCTRL, 0x00, 0x19, 0x1E, 0x0A, 0x09, 0x15, 0x3D, 0x44, 0x51, 0x12, 0x03, 0x00, 0x3F, 0x3F},
		{st7789NVGAMCTRL, 0x00, 0x18, 0x1E, 0x0A, 0x09, 0x25, 0x3F, 0x43, 0x52, 0x33, 0x03, 0x00, 0x3F, 0x3F},
		{cmdDISPON},
	}); err != nil {
		return err
	}
	sleep(100 * time.Millisecond)
	return nil
}
