package cpu

// Instruction widths.
const (
	ARM_WIDTH   = 4
	THUMB_WIDTH = 2
)

const (
	SWI_ARM_MASK   = uint32(0x0F00_0000)
	SWI_ARM_BITS   = uint32(0x0F00_0000)
	SWI_ARM_AL     = uint32(0xE000_0000) // 'Always' condition.
	SWI_THUMB_MASK = uint32(0xFF00)
	SWI_THUMB_BITS = uint32(0xDF00)
)

// EncodeSwi returns the instruction word for 'swi ordinal'.
//
// ARM code places the ordinal in bits 16-23 of the comment field, so that
// the same ordinal is found by the BIOS whether the caller runs in ARM or
// Thumb state.
func EncodeSwi(ordinal uint8, thumb bool) (word uint32) {
	if thumb {
		word = SWI_THUMB_BITS | uint32(ordinal)
	} else {
		word = SWI_ARM_AL | SWI_ARM_BITS | (uint32(ordinal) << 16)
	}
	return
}

// DecodeSwi returns the ordinal from a 'swi' instruction word.
func DecodeSwi(word uint32, thumb bool) (ordinal uint8, err error) {
	if thumb {
		if (word & SWI_THUMB_MASK) != SWI_THUMB_BITS {
			err = ErrSwiInvalid
			return
		}
		ordinal = uint8(word & 0xff)
		return
	}

	if (word & SWI_ARM_MASK) != SWI_ARM_BITS {
		err = ErrSwiInvalid
		return
	}
	ordinal = uint8((word >> 16) & 0xff)
	return
}

// Width returns the instruction width of the current state.
func (regs *Registers) Width() uint32 {
	if regs.cpsr.Thumb() {
		return THUMB_WIDTH
	}
	return ARM_WIDTH
}
