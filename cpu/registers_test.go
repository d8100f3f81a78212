package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_PowerOn(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()

	assert.Equal(MODE_SUPERVISOR, regs.Mode())
	assert.Equal(POWER_ON_STATUS, regs.Status())
	for n := range REG_COUNT {
		assert.Equal(uint32(0), regs.R(n), "r%d", n)
	}
}

func TestRegisters_Banking(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()

	table := []struct {
		mode Mode
		sp   uint32
		lr   uint32
	}{
		{MODE_SYSTEM, 0x3007F00, 0x11},
		{MODE_FIQ, 0x3007E80, 0x22},
		{MODE_IRQ, 0x3007FA0, 0x33},
		{MODE_SUPERVISOR, 0x3007FE0, 0x44},
		{MODE_ABORT, 0x3007D00, 0x55},
		{MODE_UNDEFINED, 0x3007C00, 0x66},
	}

	for _, entry := range table {
		assert.NoError(regs.SwitchMode(entry.mode))
		assert.NoError(regs.SetRegister(REG_SP, entry.sp))
		assert.NoError(regs.SetRegister(REG_LR, entry.lr))
	}

	for _, entry := range table {
		sp, err := regs.StackPointer(entry.mode)
		assert.NoError(err)
		assert.Equal(entry.sp, sp, entry.mode.String())
		lr, err := regs.LinkRegister(entry.mode)
		assert.NoError(err)
		assert.Equal(entry.lr, lr, entry.mode.String())
	}

	// User shares the System bank.
	sp, err := regs.StackPointer(MODE_USER)
	assert.NoError(err)
	assert.Equal(uint32(0x3007F00), sp)
}

func TestRegisters_FiqHighBank(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()
	assert.NoError(regs.SwitchMode(MODE_SYSTEM))
	for n := 0; n < 13; n++ {
		assert.NoError(regs.SetRegister(n, uint32(0x100+n)))
	}

	assert.NoError(regs.SwitchMode(MODE_FIQ))
	for n := 8; n < 13; n++ {
		assert.Equal(uint32(0), regs.R(n))
		assert.NoError(regs.SetRegister(n, uint32(0x200+n)))
	}
	// r0-r7 are never banked.
	assert.Equal(uint32(0x107), regs.R(7))

	assert.NoError(regs.SwitchMode(MODE_IRQ))
	for n := 0; n < 13; n++ {
		assert.Equal(uint32(0x100+n), regs.R(n))
	}
}

func TestRegisters_SwitchModeKeepsFlags(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()
	assert.NoError(regs.SetStatus(PSR(PSR_N | PSR_C | PSR_I | uint32(MODE_SUPERVISOR))))
	assert.NoError(regs.SwitchMode(MODE_IRQ))

	assert.Equal(PSR(PSR_N|PSR_C|PSR_I|uint32(MODE_IRQ)), regs.Status())
}

func TestRegisters_Invalid(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()

	assert.Equal(ErrModeInvalid(0x15), regs.SwitchMode(Mode(0x15)))
	assert.Equal(MODE_SUPERVISOR, regs.Mode())

	assert.Equal(ErrModeInvalid(0), regs.SetStatus(PSR(0)))

	_, err := regs.Register(16)
	assert.Equal(ErrRegisterInvalid(16), err)
	assert.Equal(ErrRegisterInvalid(-1), regs.SetRegister(-1, 0))

	assert.Equal(ErrNoStatusShadow(MODE_SYSTEM), regs.SetStatusShadow(MODE_SYSTEM, 0))
	_, err = regs.StatusShadow(MODE_USER)
	assert.Equal(ErrNoStatusShadow(MODE_USER), err)

	assert.Equal(ErrModeInvalid(0x1e), regs.SetStackPointer(Mode(0x1e), 0))
}

func TestRegisters_Branch(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()

	regs.Branch(0x0800_0000)
	assert.Equal(uint32(0x0800_0000), regs.PC())
	assert.False(regs.Status().Thumb())
	assert.Equal(uint32(ARM_WIDTH), regs.Width())

	regs.Branch(0x0800_0101)
	assert.Equal(uint32(0x0800_0100), regs.PC())
	assert.True(regs.Status().Thumb())
	assert.Equal(uint32(THUMB_WIDTH), regs.Width())
}

func TestRegisters_String(t *testing.T) {
	assert := assert.New(t)

	regs := NewRegisters()
	text := regs.String()

	assert.Contains(text, "   pc: 0000_0000\n")
	assert.Contains(text, "cpsr: 000000D3 nzcvIFt svc\n")
	assert.Contains(text, "spsr: ")
}

func TestMode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("svc", MODE_SUPERVISOR.String())
	assert.Equal("sys", MODE_SYSTEM.String())
	assert.Equal("Mode(0)", Mode(0).String())
	assert.Equal("Mode(21)", Mode(0x15).String())
	assert.True(MODE_ABORT.Valid())
	assert.False(Mode(0x15).Valid())
	assert.False(MODE_SYSTEM.HasStatusShadow())
	assert.True(MODE_IRQ.HasStatusShadow())
}
