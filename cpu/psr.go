package cpu

import (
	"strings"
)

// Program status register flag bits.
const (
	PSR_N = uint32(1 << 31) // Negative or less than.
	PSR_Z = uint32(1 << 30) // Zero.
	PSR_C = uint32(1 << 29) // Carry.
	PSR_V = uint32(1 << 28) // Overflow.
	PSR_I = uint32(1 << 7)  // IRQ disable.
	PSR_F = uint32(1 << 6)  // FIQ disable.
	PSR_T = uint32(1 << 5)  // Thumb state.
)

// PSR is a program status register value (CPSR or SPSR).
type PSR uint32

// Mode returns the mode encoded in the status register.
func (psr PSR) Mode() Mode {
	return Mode(uint32(psr) & MODE_MASK)
}

// WithMode returns the status register with its mode bits replaced.
func (psr PSR) WithMode(mode Mode) PSR {
	return PSR((uint32(psr) & ^MODE_MASK) | (uint32(mode) & MODE_MASK))
}

// Thumb returns true if the T bit is set.
func (psr PSR) Thumb() bool {
	return (uint32(psr) & PSR_T) != 0
}

func (psr PSR) String() string {
	s := strings.Builder{}

	flags := []struct {
		bit  uint32
		name rune
	}{
		{PSR_N, 'N'}, {PSR_Z, 'Z'}, {PSR_C, 'C'}, {PSR_V, 'V'},
		{PSR_I, 'I'}, {PSR_F, 'F'}, {PSR_T, 'T'},
	}
	for _, flag := range flags {
		if (uint32(psr) & flag.bit) != 0 {
			s.WriteRune(flag.name)
		} else {
			s.WriteRune(flag.name + ('a' - 'A'))
		}
	}
	s.WriteRune(' ')
	s.WriteString(psr.Mode().String())

	return s.String()
}
