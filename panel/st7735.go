package panel

import "time"

// Registers (from st7735.pdf).
const (
	st7735FRMCTR1 = 0xB1 // Frame Rate Control in normal mode
	st7735FRMCTR2 = 0xB2 // Frame Rate Control in idle mode
	st7735FRMCTR3 = 0xB3 // Frame Rate Control in partial mode
	st7735INVCTR  = 0xB4 // Display Inversion Control
	st7735PWCTR1  = 0xC0 // Power Control 1
	st7735PWCTR2  = 0xC1 // Power Control 2
	st7735PWCTR3  = 0xC2 // Power Control 3 in normal mode
	st7735PWCTR4  = 0xC3 // Power Control 4 in idle mode
	st7735PWCTR5  = 0xC4 // Power Control 5 in partial mode
	st7735VMCTR1  = 0xC5 // VCOM Control 1
	st7735GMCTRP1 = 0xE0 // Gamma '+' polarity correction
	st7735GMCTRN1 = 0xE1 // Gamma '-' polarity correction
)

// st7735Color18Bit is the Interface Pixel Format (COLMOD) for 18 bit/pixel.
const st7735Color18Bit = 0x06

// initST7735 resets the controller in software and configures it for 18-bit pixels in RGB order.
func initST7735(l *link) error {
	if err := l.command(cmdSWRESET); err != nil {
		return err
	}
	sleep(150 * time.Millisecond)
	if err := l.command(cmdSLPOUT); err != nil {
		return err
	}
	sleep(150 * time.Millisecond)

	if err := l.commands([][]byte{
		{st7735FRMCTR1, 0x01, 0x2C, 0x2D},
		{st7735FRMCTR2, 0x01, 0x2C, 0x2D},
		{st7735FRMCTR3, 0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D},
		{st7735INVCTR, 0x07},
		{st7735PWCTR1, 0xA2, 0x02, 0x84},
		{st7735PWCTR2, 0xC5},
		{st7735PWCTR3, 0x0A, 0x00},
		{st7735PWCTR4, 0x8A, 0x2A},
		{st7735PWCTR5, 0x8A, 0xEE},
		{st7735VMCTR1, 0x0E},
		{cmdMADCTL, madctlRGB},
		{cmdCOLMOD, st7735Color18Bit},
		{st7735GMCTRP1, 0x02, 0x1C, 0x07, 0x12, 0x37, 0x32, 0x29, 0x2D, 0x29, 0x25, 0x2B, 0x39, 0x00, 0x01, 0x03, 0x10},
		{st7735GMCTRN1, 0x03, 0x1D, 0x07, 0x06, 0x2E, 0x2C, 0x29, 0x2D, 0x2E, 0x2E, 0x37, 0x3F, 0x00, 0x00, 0x02, 0x10},
		{cmdNORON},
		{cmdDISPON},
	}); err != nil {
		return err
	}
	sleep(100 * time.Millisecond)
	return nil
}
