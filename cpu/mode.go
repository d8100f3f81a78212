package cpu

// Mode is a processor mode, encoded as the CPSR mode bits.
type Mode uint32

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_USER       = Mode(0b10000) // usr
	MODE_FIQ        = Mode(0b10001) // fiq
	MODE_IRQ        = Mode(0b10010) // irq
	MODE_SUPERVISOR = Mode(0b10011) // svc
	MODE_ABORT      = Mode(0b10111) // abt
	MODE_UNDEFINED  = Mode(0b11011) // und
	MODE_SYSTEM     = Mode(0b11111) // sys

	MODE_MASK = uint32(0b11111) // Mask of the CPSR mode bits.
)

// bank is the index of a register bank. User and System share a bank.
type bank int

const (
	bankUser bank = iota
	bankFiq
	bankIrq
	bankSupervisor
	bankAbort
	bankUndefined
	bankCount
)

// Valid returns true if the mode is one of the seven ARMv4T modes.
func (m Mode) Valid() bool {
	_, err := m.bank()
	return err == nil
}

// HasStatusShadow returns true if the mode owns an SPSR.
func (m Mode) HasStatusShadow() bool {
	return m.Valid() && m != MODE_USER && m != MODE_SYSTEM
}

func (m Mode) bank() (b bank, err error) {
	switch m {
	case MODE_USER, MODE_SYSTEM:
		b = bankUser
	case MODE_FIQ:
		b = bankFiq
	case MODE_IRQ:
		b = bankIrq
	case MODE_SUPERVISOR:
		b = bankSupervisor
	case MODE_ABORT:
		b = bankAbort
	case MODE_UNDEFINED:
		b = bankUndefined
	default:
		err = ErrModeInvalid(m)
	}
	return
}
