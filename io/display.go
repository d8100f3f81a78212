package io

import (
	"fmt"
	"iter"
	"maps"
)

// Display timing, in bus cycles.
const (
	CYCLES_PER_LINE = 1232
	HDRAW_CYCLES    = 960
	VISIBLE_LINES   = 160
	TOTAL_LINES     = 228
)

// Register offsets within the I/O block.
const (
	REG_DISPCNT  = 0x000 // Display control.
	REG_DISPSTAT = 0x004 // Display status.
	REG_VCOUNT   = 0x006 // Current scanline, read only.

	IO_SIZE = 0x400
)

// DISPCNT bits.
const (
	DISPCNT_MODE_MASK = 0x0007
	DISPCNT_MODE_3    = 0x0003
	DISPCNT_BG2       = 0x0400
)

// DISPSTAT bits.
const (
	DISPSTAT_VBLANK   = 0x0001
	DISPSTAT_HBLANK   = 0x0002
	DISPSTAT_VCOUNTER = 0x0004
	DISPSTAT_WRITABLE = 0xFF38 // IRQ enables and the VCOUNT match setting.

	dispstatWritableLow = uint8(DISPSTAT_WRITABLE & 0xFF)
)

var _display_defines = map[string]string{
	"REG_DISPCNT":   fmt.Sprintf("0x%03x", REG_DISPCNT),
	"REG_DISPSTAT":  fmt.Sprintf("0x%03x", REG_DISPSTAT),
	"REG_VCOUNT":    fmt.Sprintf("0x%03x", REG_VCOUNT),
	"VISIBLE_LINES": fmt.Sprintf("%d", VISIBLE_LINES),
	"TOTAL_LINES":   fmt.Sprintf("%d", TOTAL_LINES),
}

// Display is the I/O register block. The display control, status and
// scanline counter live at its start; the remainder is plain storage.
//
// No pixels are produced: the display only keeps time, so that client
// programs polling VCOUNT make progress.
type Display struct {
	regs [IO_SIZE]byte

	cycle  int // Cycle within the current line.
	line   int // Current scanline.
	Frames int // Completed frames since reset.
}

var _ Peripheral = (*Display)(nil)

// Defines returns an iter of defines for the display.
func (disp *Display) Defines() iter.Seq2[string, string] {
	return maps.All(_display_defines)
}

// Name of the device.
func (disp *Display) Name() string {
	return "io"
}

// Size of the device.
func (disp *Display) Size() uint32 {
	return IO_SIZE
}

// Reset returns to line 0 with all registers cleared.
func (disp *Display) Reset() {
	clear(disp.regs[:])
	disp.cycle = 0
	disp.line = 0
	disp.Frames = 0
}

// Line returns the current scanline.
func (disp *Display) Line() int {
	return disp.line
}

// Mode returns the video mode selected in DISPCNT.
func (disp *Display) Mode() int {
	return int(disp.reg16(REG_DISPCNT) & DISPCNT_MODE_MASK)
}

// Control returns DISPCNT.
func (disp *Display) Control() uint16 {
	return disp.reg16(REG_DISPCNT)
}

// Tick advances the display by a number of bus cycles.
func (disp *Display) Tick(cycles int) {
	disp.cycle += cycles
	for disp.cycle >= CYCLES_PER_LINE {
		disp.cycle -= CYCLES_PER_LINE
		disp.line++
		if disp.line == TOTAL_LINES {
			disp.line = 0
			disp.Frames++
		}
	}
}

func (disp *Display) reg16(offset uint32) uint16 {
	return uint16(disp.regs[offset]) | uint16(disp.regs[offset+1])<<8
}

// status computes DISPSTAT from the timing state.
func (disp *Display) status() (stat uint16) {
	stat = disp.reg16(REG_DISPSTAT) & DISPSTAT_WRITABLE
	if disp.line >= VISIBLE_LINES && disp.line < TOTAL_LINES-1 {
		stat |= DISPSTAT_VBLANK
	}
	if disp.cycle >= HDRAW_CYCLES {
		stat |= DISPSTAT_HBLANK
	}
	if disp.line == int(stat>>8) {
		stat |= DISPSTAT_VCOUNTER
	}
	return
}

// Read8 reads a register byte.
func (disp *Display) Read8(offset uint32) (value uint8, err error) {
	switch offset {
	case REG_DISPSTAT:
		value = uint8(disp.status())
	case REG_DISPSTAT + 1:
		value = uint8(disp.status() >> 8)
	case REG_VCOUNT:
		value = uint8(disp.line)
	case REG_VCOUNT + 1:
		value = 0
	default:
		value = disp.regs[offset]
	}
	return
}

// Write8 writes a register byte. VCOUNT and the DISPSTAT status bits ignore
// writes.
func (disp *Display) Write8(offset uint32, value uint8) (err error) {
	switch offset {
	case REG_VCOUNT, REG_VCOUNT + 1:
		// read only
	case REG_DISPSTAT:
		disp.regs[offset] = value & dispstatWritableLow
	default:
		disp.regs[offset] = value
	}
	return
}
