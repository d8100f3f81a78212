// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Register numbers with a dedicated role.
const (
	REG_SP    = 13 // Stack pointer, banked per mode.
	REG_LR    = 14 // Link register, banked per mode.
	REG_PC    = 15 // Program counter.
	REG_COUNT = 16
)

// POWER_ON_STATUS is the CPSR after a hardware reset: Supervisor mode with
// both interrupt sources disabled.
const POWER_ON_STATUS = PSR(uint32(MODE_SUPERVISOR) | PSR_I | PSR_F)

var _cpu_defines = map[string]string{
	"MODE_USR":  fmt.Sprintf("0x%02x", uint32(MODE_USER)),
	"MODE_FIQ":  fmt.Sprintf("0x%02x", uint32(MODE_FIQ)),
	"MODE_IRQ":  fmt.Sprintf("0x%02x", uint32(MODE_IRQ)),
	"MODE_SVC":  fmt.Sprintf("0x%02x", uint32(MODE_SUPERVISOR)),
	"MODE_ABT":  fmt.Sprintf("0x%02x", uint32(MODE_ABORT)),
	"MODE_UND":  fmt.Sprintf("0x%02x", uint32(MODE_UNDEFINED)),
	"MODE_SYS":  fmt.Sprintf("0x%02x", uint32(MODE_SYSTEM)),
	"MODE_MASK": fmt.Sprintf("0x%02x", MODE_MASK),
}

// Registers is the simulated ARM7TDMI register file.
type Registers struct {
	Verbose bool // Set to enable verbose logging.

	low  [8]uint32         // r0-r7, shared by all modes.
	high [2][5]uint32      // r8-r12; index 1 is the FIQ bank.
	sp   [bankCount]uint32 // r13 per bank.
	lr   [bankCount]uint32 // r14 per bank.
	spsr [bankCount]PSR    // SPSR per bank, unused for User/System.
	cpsr PSR               // Current program status register.
	pc   uint32            // r15.
}

// NewRegisters creates a register file in the power-on state.
func NewRegisters() (regs *Registers) {
	regs = &Registers{}
	regs.PowerOn()
	return
}

// Defines for the register file.
func (regs *Registers) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// PowerOn clears every register and enters the power-on status.
func (regs *Registers) PowerOn() {
	if regs.Verbose {
		log.Printf("cpu: power on")
	}

	clear(regs.low[:])
	clear(regs.high[0][:])
	clear(regs.high[1][:])
	clear(regs.sp[:])
	clear(regs.lr[:])
	clear(regs.spsr[:])
	regs.cpsr = POWER_ON_STATUS
	regs.pc = 0
}

// Status returns the CPSR.
func (regs *Registers) Status() PSR {
	return regs.cpsr
}

// SetStatus writes the whole CPSR, as 'msr cpsr, rN' does.
func (regs *Registers) SetStatus(psr PSR) (err error) {
	if !psr.Mode().Valid() {
		err = ErrModeInvalid(psr.Mode())
		return
	}

	regs.cpsr = psr
	return
}

// Mode returns the current processor mode.
func (regs *Registers) Mode() Mode {
	return regs.cpsr.Mode()
}

// SwitchMode changes the mode bits of the CPSR, keeping all other bits.
func (regs *Registers) SwitchMode(mode Mode) (err error) {
	if !mode.Valid() {
		err = ErrModeInvalid(mode)
		return
	}

	if regs.Verbose {
		log.Printf("cpu: mode %v -> %v", regs.Mode(), mode)
	}

	regs.cpsr = regs.cpsr.WithMode(mode)
	return
}

// highBank returns the r8-r12 bank for the current mode.
func (regs *Registers) highBank() int {
	if regs.Mode() == MODE_FIQ {
		return 1
	}
	return 0
}

// currentBank returns the banked register set for the current mode.
func (regs *Registers) currentBank() bank {
	b, err := regs.Mode().bank()
	if err != nil {
		// SetStatus and SwitchMode never admit an invalid mode.
		panic(err)
	}
	return b
}

// Register returns the value of rN as seen from the current mode.
func (regs *Registers) Register(n int) (value uint32, err error) {
	switch {
	case n >= 0 && n < 8:
		value = regs.low[n]
	case n >= 8 && n < REG_SP:
		value = regs.high[regs.highBank()][n-8]
	case n == REG_SP:
		value = regs.sp[regs.currentBank()]
	case n == REG_LR:
		value = regs.lr[regs.currentBank()]
	case n == REG_PC:
		value = regs.pc
	default:
		err = ErrRegisterInvalid(n)
	}
	return
}

// R returns rN as seen from the current mode, or 0 if N is out of range.
func (regs *Registers) R(n int) uint32 {
	value, _ := regs.Register(n)
	return value
}

// SetRegister writes rN as seen from the current mode.
func (regs *Registers) SetRegister(n int, value uint32) (err error) {
	switch {
	case n >= 0 && n < 8:
		regs.low[n] = value
	case n >= 8 && n < REG_SP:
		regs.high[regs.highBank()][n-8] = value
	case n == REG_SP:
		regs.sp[regs.currentBank()] = value
	case n == REG_LR:
		regs.lr[regs.currentBank()] = value
	case n == REG_PC:
		regs.pc = value
	default:
		err = ErrRegisterInvalid(n)
	}
	return
}

// PC returns the program counter.
func (regs *Registers) PC() uint32 {
	return regs.pc
}

// Branch transfers control to addr the way 'bx' does: bit 0 selects the
// Thumb state and is cleared from the program counter.
func (regs *Registers) Branch(addr uint32) {
	if (addr & 1) != 0 {
		regs.cpsr |= PSR(PSR_T)
		regs.pc = addr &^ 1
	} else {
		regs.cpsr &^= PSR(PSR_T)
		regs.pc = addr &^ 3
	}

	if regs.Verbose {
		log.Printf("cpu: bx 0x%08x", addr)
	}
}

// StackPointer returns the banked r13 of a mode.
func (regs *Registers) StackPointer(mode Mode) (value uint32, err error) {
	b, err := mode.bank()
	if err != nil {
		return
	}
	value = regs.sp[b]
	return
}

// SetStackPointer writes the banked r13 of a mode.
func (regs *Registers) SetStackPointer(mode Mode, addr uint32) (err error) {
	b, err := mode.bank()
	if err != nil {
		return
	}
	regs.sp[b] = addr
	return
}

// LinkRegister returns the banked r14 of a mode.
func (regs *Registers) LinkRegister(mode Mode) (value uint32, err error) {
	b, err := mode.bank()
	if err != nil {
		return
	}
	value = regs.lr[b]
	return
}

// SetLinkRegister writes the banked r14 of a mode.
func (regs *Registers) SetLinkRegister(mode Mode, value uint32) (err error) {
	b, err := mode.bank()
	if err != nil {
		return
	}
	regs.lr[b] = value
	return
}

// StatusShadow returns the SPSR of a mode.
func (regs *Registers) StatusShadow(mode Mode) (value PSR, err error) {
	if !mode.HasStatusShadow() {
		err = ErrNoStatusShadow(mode)
		return
	}
	b, _ := mode.bank()
	value = regs.spsr[b]
	return
}

// SetStatusShadow writes the SPSR of a mode.
func (regs *Registers) SetStatusShadow(mode Mode, value PSR) (err error) {
	if !mode.HasStatusShadow() {
		err = ErrNoStatusShadow(mode)
		return
	}
	b, _ := mode.bank()
	regs.spsr[b] = value
	return
}

// String returns the register file as seen from the current mode.
func (regs *Registers) String() (text string) {
	for n := range REG_COUNT {
		var name string
		switch n {
		case REG_SP:
			name = "sp"
		case REG_LR:
			name = "lr"
		case REG_PC:
			name = "pc"
		default:
			name = fmt.Sprintf("r%d", n)
		}
		val := regs.R(n)
		text += fmt.Sprintf("% 5s: %04X_%04X\n", name, val>>16, val&0xffff)
	}
	text += fmt.Sprintf("% 5s: %08X %v\n", "cpsr", uint32(regs.cpsr), regs.cpsr)
	if spsr, err := regs.StatusShadow(regs.Mode()); err == nil {
		text += fmt.Sprintf("% 5s: %08X %v\n", "spsr", uint32(spsr), spsr)
	}

	return
}
