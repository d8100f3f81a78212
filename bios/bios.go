package bios

import (
	"log"

	"github.com/ezrec/minibios/cpu"
	"github.com/ezrec/minibios/layout"
	"github.com/ezrec/minibios/swi"
)

// IRQ_RETURN_ADJUST is the link register adjustment of 'subs pc, lr, #4'.
const IRQ_RETURN_ADJUST = 4

// BIOS services the exception vectors of a processor.
type BIOS struct {
	Verbose bool // Set to enable verbose logging.

	Table     *swi.Table
	Sequencer *Sequencer

	proc   Processor
	bus    Bus
	layout *layout.Layout
}

// New creates a BIOS for a processor and its bus. The layout is validated
// and must not be modified afterwards.
func New(proc Processor, bus Bus, lay *layout.Layout) (bios *BIOS, err error) {
	err = lay.Validate()
	if err != nil {
		return
	}

	bios = &BIOS{
		Table: swi.NewTable(),
		Sequencer: &Sequencer{
			Platform: proc,
			Memory:   bus,
			Layout:   lay,
		},
		proc:   proc,
		bus:    bus,
		layout: lay,
	}

	bios.Table.Bind(swi.SWI_SOFT_RESET, bios.softReset)
	bios.Table.Bind(swi.SWI_DEBUG, bios.debug)

	return
}

// SetVerbose sets the logging of the BIOS and its components.
func (bios *BIOS) SetVerbose(verbose bool) {
	bios.Verbose = verbose
	bios.Table.Verbose = verbose
	bios.Sequencer.Verbose = verbose
}

// Layout returns the configuration constants of the BIOS.
func (bios *BIOS) Layout() *layout.Layout {
	return bios.layout
}

// Exception runs the handler of the exception the processor has just
// entered. 'opcode' is the instruction that raised it, and is only used by
// the SWI vector.
func (bios *BIOS) Exception(exc cpu.Exception, opcode uint32) (err error) {
	if bios.Verbose {
		log.Printf("bios: %v", exc)
	}

	switch exc {
	case cpu.EXCEPTION_RESET:
		err = bios.Sequencer.PerformSoftReset()
	case cpu.EXCEPTION_SWI:
		err = bios.dispatch(opcode)
	case cpu.EXCEPTION_IRQ:
		err = bios.proc.ReturnFromException(IRQ_RETURN_ADJUST)
	default:
		err = ErrHalt(exc)
	}

	return
}

// Frame builds the call frame of a SWI taken in Supervisor mode.
func (bios *BIOS) Frame(opcode uint32) (frame *swi.CallFrame, err error) {
	proc := bios.proc

	if proc.Mode() != cpu.MODE_SUPERVISOR {
		err = ErrNotPrivileged
		return
	}

	spsr, err := proc.StatusShadow(cpu.MODE_SUPERVISOR)
	if err != nil {
		return
	}

	ordinal, err := cpu.DecodeSwi(opcode, spsr.Thumb())
	if err != nil {
		return
	}

	frame = &swi.CallFrame{
		Ordinal: swi.Ordinal(ordinal),
	}

	for n := range frame.Args {
		frame.Args[n], err = proc.Register(n)
		if err != nil {
			return
		}
	}

	frame.Return, err = proc.LinkRegister(cpu.MODE_SUPERVISOR)
	return
}

// dispatch services a SWI and issues the privileged return.
func (bios *BIOS) dispatch(opcode uint32) (err error) {
	frame, err := bios.Frame(opcode)
	if err != nil {
		return
	}

	err = bios.Table.Call(frame)
	if err != nil {
		return
	}

	if frame.NoReturn {
		return
	}

	if frame.HasResult {
		err = bios.proc.SetRegister(0, frame.Result)
		if err != nil {
			return
		}
	}

	err = bios.proc.ReturnFromException(0)
	return
}

// softReset is the handler of SWI 0x00.
func (bios *BIOS) softReset(frame *swi.CallFrame) (err error) {
	frame.NoReturn = true
	err = bios.Sequencer.PerformSoftReset()
	return
}

// debug is the handler of the Debug SWI: the first argument is written to
// the debug port. The other arguments are not used.
func (bios *BIOS) debug(frame *swi.CallFrame) (err error) {
	err = bios.bus.Write32(bios.layout.DebugPort, frame.Args[0])
	return
}
