// Package demo holds the client programs run on the BIOS: they drive the
// display registers directly and call BIOS services by ordinal.
package demo

import (
	"github.com/ezrec/minibios/swi"
)

// Display constants of the mode 3 bitmap.
const (
	SCREEN_WIDTH  = 240
	SCREEN_HEIGHT = 160

	REG_DISPCNT = uint32(0x0400_0000)
	REG_VCOUNT  = uint32(0x0400_0006)
	MODE3_FB    = uint32(0x0600_0000) // 16-bit pixels, row major.

	MODE_3     = 0x0003
	BG2_ENABLE = 0x0400
)

// Machine is what a client program sees of the console.
type Machine interface {
	Read16(addr uint32) (value uint16, err error)
	Write16(addr uint32, value uint16) (err error)
	Swi(ordinal swi.Ordinal, args ...uint32) (err error)
}

// RGB5 packs a 15-bit colour.
func RGB5(r, g, b uint16) uint16 {
	return (r & 0x1f) | (g&0x1f)<<5 | (b&0x1f)<<10
}

// Pixel returns the framebuffer address of a pixel.
func Pixel(x, y int) uint32 {
	return MODE3_FB + uint32(y*SCREEN_WIDTH+x)*2
}

// fillLine sets every pixel of a line to a colour.
func fillLine(m Machine, y int, color uint16) (err error) {
	for x := range SCREEN_WIDTH {
		err = m.Write16(Pixel(x, y), color)
		if err != nil {
			return
		}
	}
	return
}

// setMode3 selects the bitmap mode.
func setMode3(m Machine) error {
	return m.Write16(REG_DISPCNT, MODE_3|BG2_ENABLE)
}
