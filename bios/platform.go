// Package bios is a minimal replacement BIOS: the SoftReset sequence that
// sets up the per-mode stacks and enters the client program, and the SWI
// dispatcher that services client traps by ordinal.
//
// The BIOS never touches processor state directly. It is written against
// the Platform and Processor interfaces, which a simulated register file
// (cpu.Registers) implements.
package bios

import (
	"github.com/ezrec/minibios/cpu"
	"github.com/ezrec/minibios/memory"
)

// Platform is the privileged register access needed by the reset sequence.
type Platform interface {
	// Status returns the current program status.
	Status() cpu.PSR
	// SwitchMode changes the processor mode, keeping every other status bit.
	SwitchMode(mode cpu.Mode) error
	// SetStackPointer sets the banked stack pointer of a mode.
	SetStackPointer(mode cpu.Mode, addr uint32) error
	// SetLinkRegister sets the banked link register of a mode.
	SetLinkRegister(mode cpu.Mode, value uint32) error
	// SetStatusShadow sets the saved program status of a mode.
	SetStatusShadow(mode cpu.Mode, value cpu.PSR) error
	// SetRegister sets a register of the current mode.
	SetRegister(n int, value uint32) error
	// Branch transfers control to addr.
	Branch(addr uint32)
}

// Processor is the Platform plus the state the exception handlers inspect.
type Processor interface {
	Platform
	Mode() cpu.Mode
	Register(n int) (uint32, error)
	LinkRegister(mode cpu.Mode) (uint32, error)
	StatusShadow(mode cpu.Mode) (cpu.PSR, error)
	ReturnFromException(adjust uint32) error
}

var _ Processor = (*cpu.Registers)(nil)

// Bus is the memory the BIOS writes through.
type Bus interface {
	memory.Memory
	Write32(addr uint32, value uint32) error
}

var _ Bus = (*memory.Bus)(nil)
