package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestException_Info(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		exc    Exception
		mode   Mode
		vector uint32
		name   string
	}{
		{EXCEPTION_RESET, MODE_SUPERVISOR, 0x00, "Reset"},
		{EXCEPTION_UNDEFINED, MODE_UNDEFINED, 0x04, "Undefined"},
		{EXCEPTION_SWI, MODE_SUPERVISOR, 0x08, "SWI"},
		{EXCEPTION_PREFETCH_ABORT, MODE_ABORT, 0x0C, "Prefetch Abort"},
		{EXCEPTION_DATA_ABORT, MODE_ABORT, 0x10, "Data Abort"},
		{EXCEPTION_IRQ, MODE_IRQ, 0x18, "IRQ"},
		{EXCEPTION_FIQ, MODE_FIQ, 0x1C, "FIQ"},
	}

	for _, entry := range table {
		info, err := entry.exc.Info()
		assert.NoError(err)
		assert.Equal(entry.mode, info.Mode, entry.name)
		assert.Equal(entry.vector, entry.exc.Vector(), entry.name)
		assert.Equal(entry.name, entry.exc.String())
	}

	_, err := Exception(8).Info()
	assert.Equal(ErrExceptionInvalid, err)
	assert.Equal("Exception(8)", Exception(8).String())
	assert.Equal("Address Exceeds 26 bit", EXCEPTION_ADDRESS_26BIT.String())
}

func TestRegisters_EnterSwi(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()
	assert.NoError(regs.SetStatus(PSR(PSR_Z | uint32(MODE_SYSTEM))))
	regs.Branch(0x0800_0100)

	next := regs.PC() + regs.Width()
	assert.NoError(regs.Enter(EXCEPTION_SWI, next))

	assert.Equal(MODE_SUPERVISOR, regs.Mode())
	assert.Equal(uint32(0x08), regs.PC())
	assert.Equal(uint32(0x0800_0104), regs.R(REG_LR))
	assert.True((uint32(regs.Status()) & PSR_I) != 0)
	assert.True((uint32(regs.Status()) & PSR_Z) != 0)

	spsr, err := regs.StatusShadow(MODE_SUPERVISOR)
	assert.NoError(err)
	assert.Equal(PSR(PSR_Z|uint32(MODE_SYSTEM)), spsr)

	assert.NoError(regs.ReturnFromException(0))
	assert.Equal(MODE_SYSTEM, regs.Mode())
	assert.Equal(PSR(PSR_Z|uint32(MODE_SYSTEM)), regs.Status())
	assert.Equal(uint32(0x0800_0104), regs.PC())
}

func TestRegisters_EnterIrqFromThumb(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()
	assert.NoError(regs.SwitchMode(MODE_SYSTEM))
	assert.NoError(regs.SetStatus(regs.Status() &^ PSR(PSR_I|PSR_F)))
	regs.Branch(0x0800_0201)

	next := regs.PC() + regs.Width()
	assert.NoError(regs.Enter(EXCEPTION_IRQ, next))

	assert.Equal(MODE_IRQ, regs.Mode())
	assert.False(regs.Status().Thumb())
	assert.True((uint32(regs.Status()) & PSR_I) != 0)
	assert.False((uint32(regs.Status()) & PSR_F) != 0)
	assert.Equal(uint32(0x0800_0206), regs.R(REG_LR))

	assert.NoError(regs.ReturnFromException(4))
	assert.Equal(MODE_SYSTEM, regs.Mode())
	assert.True(regs.Status().Thumb())
	assert.Equal(uint32(0x0800_0202), regs.PC())
}

func TestRegisters_ReturnWithoutShadow(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()
	assert.NoError(regs.SwitchMode(MODE_SYSTEM))

	err := regs.ReturnFromException(0)
	assert.Equal(ErrNoStatusShadow(MODE_SYSTEM), err)
	assert.Equal(MODE_SYSTEM, regs.Mode())
}

func TestSwi_EncodeDecode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0xEF2B_0000), EncodeSwi(0x2b, false))
	assert.Equal(uint32(0xDF02), EncodeSwi(0x02, true))

	for _, thumb := range []bool{false, true} {
		for ordinal := range 0x2c {
			got, err := DecodeSwi(EncodeSwi(uint8(ordinal), thumb), thumb)
			assert.NoError(err)
			assert.Equal(uint8(ordinal), got)
		}
	}

	_, err := DecodeSwi(0xE1A0_0000, false) // mov r0, r0
	assert.Equal(ErrSwiInvalid, err)
	_, err = DecodeSwi(0x46C0, true) // mov r8, r8
	assert.Equal(ErrSwiInvalid, err)
}
