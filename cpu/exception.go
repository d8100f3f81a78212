package cpu

import (
	"log"
)

// Exception is a processor exception source.
type Exception int

//go:generate go tool stringer -linecomment -type=Exception
const (
	EXCEPTION_RESET          = Exception(0) // Reset
	EXCEPTION_UNDEFINED      = Exception(1) // Undefined
	EXCEPTION_SWI            = Exception(2) // SWI
	EXCEPTION_PREFETCH_ABORT = Exception(3) // Prefetch Abort
	EXCEPTION_DATA_ABORT     = Exception(4) // Data Abort
	EXCEPTION_ADDRESS_26BIT  = Exception(5) // Address Exceeds 26 bit
	EXCEPTION_IRQ            = Exception(6) // IRQ
	EXCEPTION_FIQ            = Exception(7) // FIQ
)

// VECTOR_BASE is the address of the exception vector table.
const VECTOR_BASE = uint32(0x0000_0000)

// ExceptionInfo describes how the processor enters an exception.
type ExceptionInfo struct {
	Mode       Mode   // Mode on entry.
	DisableFiq bool   // If set, F is set on entry. I is always set.
	PcAdjust   uint32 // Added to the return address stored in the link register.
	Offset     uint32 // Vector offset from VECTOR_BASE.
}

// Exception entry:
//
//	Offset Prio  Exception                  Mode on Entry  Flags
//	00h    1     Reset                      svc            I=1, F=1
//	04h    7     Undefined Instruction      und            I=1
//	08h    6     Software Interrupt (SWI)   svc            I=1
//	0Ch    5     Prefetch Abort             abt            I=1
//	10h    2     Data Abort                 abt            I=1
//	14h    8     Address Exceeds 26bit      svc            I=1
//	18h    4     Normal Interrupt (IRQ)     irq            I=1
//	1Ch    3     Fast Interrupt (FIQ)       fiq            I=1, F=1
var _exception_info = [...]ExceptionInfo{
	EXCEPTION_RESET:          {MODE_SUPERVISOR, true, 0, 0x00},
	EXCEPTION_UNDEFINED:      {MODE_UNDEFINED, false, 0, 0x04},
	EXCEPTION_SWI:            {MODE_SUPERVISOR, false, 0, 0x08},
	EXCEPTION_PREFETCH_ABORT: {MODE_ABORT, false, 4, 0x0C},
	EXCEPTION_DATA_ABORT:     {MODE_ABORT, false, 4, 0x10},
	EXCEPTION_ADDRESS_26BIT:  {MODE_SUPERVISOR, false, 4, 0x14},
	EXCEPTION_IRQ:            {MODE_IRQ, false, 4, 0x18},
	EXCEPTION_FIQ:            {MODE_FIQ, true, 4, 0x1C},
}

// Info returns the entry description of the exception.
func (exc Exception) Info() (info ExceptionInfo, err error) {
	if exc < 0 || int(exc) >= len(_exception_info) {
		err = ErrExceptionInvalid
		return
	}

	info = _exception_info[exc]
	return
}

// Vector returns the address the processor jumps to for the exception.
func (exc Exception) Vector() uint32 {
	info, _ := exc.Info()
	return VECTOR_BASE + info.Offset
}

// Enter performs the processor's exception entry sequence.
//
// 'next' is the address of the instruction following the one being executed
// when the exception was taken.
func (regs *Registers) Enter(exc Exception, next uint32) (err error) {
	info, err := exc.Info()
	if err != nil {
		return
	}

	if regs.Verbose {
		log.Printf("cpu: exception %v from %v, next 0x%08x", exc, regs.Mode(), next)
	}

	saved := regs.cpsr

	err = regs.SwitchMode(info.Mode)
	if err != nil {
		return
	}

	err = regs.SetStatusShadow(info.Mode, saved)
	if err != nil {
		return
	}

	err = regs.SetLinkRegister(info.Mode, next+info.PcAdjust)
	if err != nil {
		return
	}

	regs.cpsr |= PSR(PSR_I)
	if info.DisableFiq {
		regs.cpsr |= PSR(PSR_F)
	}
	regs.cpsr &^= PSR(PSR_T)
	regs.pc = VECTOR_BASE + info.Offset

	return
}

// ReturnFromException performs the privileged return: the CPSR is restored
// from the current mode's SPSR, and execution resumes at the link register
// less 'adjust' ('movs pc, lr' is adjust 0, 'subs pc, lr, #4' is adjust 4).
func (regs *Registers) ReturnFromException(adjust uint32) (err error) {
	mode := regs.Mode()

	spsr, err := regs.StatusShadow(mode)
	if err != nil {
		return
	}

	lr, err := regs.LinkRegister(mode)
	if err != nil {
		return
	}

	err = regs.SetStatus(spsr)
	if err != nil {
		return
	}

	if regs.Verbose {
		log.Printf("cpu: return to %v at 0x%08x", spsr.Mode(), lr-adjust)
	}

	regs.pc = lr - adjust

	return
}
