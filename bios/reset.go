// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package bios

import (
	"log"

	"github.com/ezrec/minibios/cpu"
	"github.com/ezrec/minibios/layout"
	"github.com/ezrec/minibios/memory"
)

// Sequencer performs the SoftReset sequence.
type Sequencer struct {
	Verbose bool // Set to enable verbose logging.

	Platform Platform
	Memory   memory.Memory
	Layout   *layout.Layout
}

// stack sets up the banked registers of a privileged mode.
func (seq *Sequencer) stack(mode cpu.Mode, sp uint32) (err error) {
	plat := seq.Platform

	err = plat.SwitchMode(mode)
	if err != nil {
		return
	}
	err = plat.SetStackPointer(mode, sp)
	if err != nil {
		return
	}
	err = plat.SetLinkRegister(mode, 0)
	if err != nil {
		return
	}
	err = plat.SetStatusShadow(mode, 0)
	return
}

// PerformSoftReset sets up the IRQ, Supervisor and System stacks, clears the
// reset region, zeroes r0-r12 and branches to the entry address in System
// mode. It does not return to the trapping caller; an error is a fault of
// the platform or the bus.
//
// The entry address is fixed by the layout.
func (seq *Sequencer) PerformSoftReset() (err error) {
	plat := seq.Platform
	lay := seq.Layout

	status := plat.Status()
	if seq.Verbose {
		log.Printf("bios: soft reset from %v", status)
	}

	err = seq.stack(cpu.MODE_IRQ, lay.StackIRQ)
	if err != nil {
		return
	}

	err = seq.stack(cpu.MODE_SUPERVISOR, lay.StackSupervisor)
	if err != nil {
		return
	}

	err = memory.Fill(seq.Memory, lay.ResetBase, 0, lay.ResetLength)
	if err != nil {
		return
	}

	err = plat.SwitchMode(cpu.MODE_SYSTEM)
	if err != nil {
		return
	}
	err = plat.SetStackPointer(cpu.MODE_SYSTEM, lay.StackSystem)
	if err != nil {
		return
	}

	for n := range 13 {
		err = plat.SetRegister(n, 0)
		if err != nil {
			return
		}
	}

	err = plat.SetLinkRegister(cpu.MODE_SYSTEM, lay.EntryAddress)
	if err != nil {
		return
	}

	if seq.Verbose {
		log.Printf("bios: enter 0x%08x", lay.EntryAddress)
	}

	plat.Branch(lay.EntryAddress)

	return
}
