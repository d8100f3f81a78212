// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/minibios/bios"
	"github.com/ezrec/minibios/cpu"
	"github.com/ezrec/minibios/internal"
	"github.com/ezrec/minibios/io"
	"github.com/ezrec/minibios/layout"
	"github.com/ezrec/minibios/memory"
	"github.com/ezrec/minibios/swi"
)

const (
	CYCLES_PER_FRAME = io.CYCLES_PER_LINE * io.TOTAL_LINES
	IO_REGION        = "io"  // Region decoded by the display registers.
	ROM_REGION       = "rom" // Region holding the client program.
)

var _emulator_defines = map[string]string{
	"CYCLES_PER_FRAME": fmt.Sprintf("%v", CYCLES_PER_FRAME),
}

// Emulator state. Register file + bus + BIOS + peripherals.
type Emulator struct {
	Verbose        bool // If set, enables verbose logging.
	*cpu.Registers      // Reference to the register file.
	*memory.Bus         // Reference to the system bus.

	Bios   *bios.BIOS     // BIOS servicing the exception vectors.
	Layout *layout.Layout // Host constants.

	Debug     io.DebugPort // Debug port, overlaid at the layout's address.
	Display   io.Display   // Display registers.
	Cartridge *io.Rom      // Client program ROM, if the layout has one.

	Cycles int // Bus cycles since reset.

	peripherals []io.Peripheral
	halted      error
}

var _ memory.Ticker = (*Emulator)(nil)

// NewEmulator creates a new emulator for a layout.
func NewEmulator(lay *layout.Layout) (emu *Emulator, err error) {
	lay = lay.Clone()

	err = lay.Validate()
	if err != nil {
		return
	}

	emu = &Emulator{
		Registers: cpu.NewRegisters(),
		Bus:       &memory.Bus{},
		Layout:    lay,
	}
	emu.Bus.Ticker = emu

	for _, region := range lay.Regions {
		var dev io.Peripheral
		switch {
		case region.Name == IO_REGION && region.Size == io.IO_SIZE:
			dev = &emu.Display
		case region.ReadOnly:
			rom := io.NewRom(region.Name, region.Size)
			if region.Name == ROM_REGION {
				emu.Cartridge = rom
			}
			dev = rom
		default:
			dev = memory.NewRAM(region.Name, region.Size)
		}

		err = emu.Bus.Attach(region.Origin, dev)
		if err != nil {
			err = &layout.ErrLayout{Layout: lay.Name, Field: region.Name, Err: err}
			return
		}
		emu.peripherals = append(emu.peripherals, dev)
	}

	err = emu.Bus.Overlay(lay.DebugPort, &emu.Debug)
	if err != nil {
		return
	}
	emu.peripherals = append(emu.peripherals, &emu.Debug)

	emu.Bios, err = bios.New(emu.Registers, emu.Bus, lay)
	if err != nil {
		return
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Registers.Defines(),
		emu.Layout.Defines(),
		swi.Defines(),
		emu.Debug.Defines(),
		emu.Display.Defines(),
	)
}

// setVerbose propagates the emulator verbosity.
func (emu *Emulator) setVerbose() {
	emu.Registers.Verbose = emu.Verbose
	emu.Bios.SetVerbose(emu.Verbose)
}

// Program loads a client program into the cartridge ROM.
func (emu *Emulator) Program(data []byte) (err error) {
	if emu.Cartridge == nil {
		err = ErrNoCartridge
		return
	}

	err = emu.Cartridge.Program(data)
	return
}

// Reset powers the machine on and runs the BIOS reset vector.
func (emu *Emulator) Reset() (err error) {
	emu.setVerbose()

	if emu.Verbose {
		log.Printf("emulator: reset %v", emu.Layout.Name)
	}

	for _, dev := range emu.peripherals {
		dev.Reset()
	}

	emu.halted = nil
	emu.Registers.PowerOn()

	// The reset sequence runs off the clock.
	emu.Bus.Ticker = nil
	defer func() {
		emu.Bus.Ticker = emu
		emu.Bus.Reads = 0
		emu.Bus.Writes = 0
		emu.Cycles = 0
	}()

	err = emu.Bios.Exception(cpu.EXCEPTION_RESET, 0)
	if err != nil {
		err = emu.trap(0, err)
		return
	}

	return
}

// Tick advances the machine clock by a number of bus cycles.
func (emu *Emulator) Tick(cycles int) {
	emu.Cycles += cycles
	emu.Display.Tick(cycles)
}

// Halted returns the error that parked the machine, or nil if it runs.
func (emu *Emulator) Halted() error {
	return emu.halted
}

// trap records a fault of the exception vector at 'addr'.
func (emu *Emulator) trap(opcode uint32, err error) error {
	err = &ErrTrap{Addr: emu.PC(), Opcode: opcode, Err: err}
	emu.halted = err
	return err
}

// Execute executes an instruction word at the current program counter.
// Only 'swi' is decoded; every other word raises the undefined instruction
// exception.
func (emu *Emulator) Execute(opcode uint32) (err error) {
	if emu.halted != nil {
		err = emu.halted
		return
	}

	emu.setVerbose()

	thumb := emu.Status().Thumb()
	next := emu.PC() + emu.Width()

	exc := cpu.EXCEPTION_SWI
	ordinal, err := cpu.DecodeSwi(opcode, thumb)
	if err != nil {
		exc = cpu.EXCEPTION_UNDEFINED
	} else if !swi.Ordinal(ordinal).Valid() {
		// Unsupported ordinals are refused before the trap is taken.
		err = &ErrTrap{Addr: emu.PC(), Opcode: opcode, Err: swi.ErrOrdinal(ordinal)}
		return
	}

	err = emu.Registers.Enter(exc, next)
	if err != nil {
		return
	}

	err = emu.Bios.Exception(exc, opcode)
	if err != nil {
		err = emu.trap(opcode, err)
		return
	}

	return
}

// Swi calls a BIOS service from the current program counter, with up to
// four arguments in r0-r3. The result, if any, is left in r0. A call that
// is refused leaves the registers untouched.
func (emu *Emulator) Swi(ordinal swi.Ordinal, args ...uint32) (err error) {
	if len(args) > swi.ARG_COUNT {
		err = ErrTooManyArgs
		return
	}

	if emu.halted != nil {
		err = emu.halted
		return
	}

	opcode := cpu.EncodeSwi(uint8(ordinal), emu.Status().Thumb())
	if !ordinal.Valid() {
		err = &ErrTrap{Addr: emu.PC(), Opcode: opcode, Err: swi.ErrOrdinal(ordinal)}
		return
	}

	for n, arg := range args {
		err = emu.SetRegister(n, arg)
		if err != nil {
			return
		}
	}

	err = emu.Execute(opcode)
	return
}

// Irq asserts the interrupt request line. The interrupt is only taken if
// the CPSR I bit is clear.
func (emu *Emulator) Irq() (taken bool, err error) {
	if emu.halted != nil {
		err = emu.halted
		return
	}

	if (uint32(emu.Status()) & cpu.PSR_I) != 0 {
		return
	}

	emu.setVerbose()

	err = emu.Registers.Enter(cpu.EXCEPTION_IRQ, emu.PC())
	if err != nil {
		return
	}

	err = emu.Bios.Exception(cpu.EXCEPTION_IRQ, 0)
	if err != nil {
		err = emu.trap(0, err)
		return
	}

	taken = true
	return
}

// Frames returns the number of display frames since reset.
func (emu *Emulator) Frames() int {
	return emu.Display.Frames
}
