package bios

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minibios/cpu"
	"github.com/ezrec/minibios/layout"
	"github.com/ezrec/minibios/memory"
)

// recorder is a Platform that logs every call.
type recorder struct {
	status cpu.PSR
	calls  []string
}

func (rc *recorder) Status() cpu.PSR {
	rc.calls = append(rc.calls, "Status")
	return rc.status
}

func (rc *recorder) SwitchMode(mode cpu.Mode) error {
	rc.calls = append(rc.calls, fmt.Sprintf("SwitchMode %v", mode))
	rc.status = rc.status.WithMode(mode)
	return nil
}

func (rc *recorder) SetStackPointer(mode cpu.Mode, addr uint32) error {
	rc.calls = append(rc.calls, fmt.Sprintf("SetStackPointer %v 0x%08x", mode, addr))
	return nil
}

func (rc *recorder) SetLinkRegister(mode cpu.Mode, value uint32) error {
	rc.calls = append(rc.calls, fmt.Sprintf("SetLinkRegister %v 0x%08x", mode, value))
	return nil
}

func (rc *recorder) SetStatusShadow(mode cpu.Mode, value cpu.PSR) error {
	rc.calls = append(rc.calls, fmt.Sprintf("SetStatusShadow %v 0x%x", mode, uint32(value)))
	return nil
}

func (rc *recorder) SetRegister(n int, value uint32) error {
	rc.calls = append(rc.calls, fmt.Sprintf("SetRegister r%d 0x%x", n, value))
	return nil
}

func (rc *recorder) Branch(addr uint32) {
	rc.calls = append(rc.calls, fmt.Sprintf("Branch 0x%08x", addr))
}

// newMachine builds a register file and a bus with the RAM regions of the
// GBA layout.
func newMachine(t *testing.T) (regs *cpu.Registers, bus *memory.Bus, lay *layout.Layout) {
	lay = layout.GBA.Clone()
	regs = cpu.NewRegisters()
	bus = &memory.Bus{}

	for _, name := range []string{"ewram", "iwram"} {
		region, ok := lay.Region(name)
		if !ok {
			t.Fatalf("no region %s", name)
		}
		err := bus.Attach(region.Origin, memory.NewRAM(region.Name, region.Size))
		if err != nil {
			t.Fatal(err)
		}
	}

	return
}

func TestSequencer_Order(t *testing.T) {
	assert := assert.New(t)

	rc := &recorder{status: cpu.POWER_ON_STATUS}
	_, bus, lay := newMachine(t)

	seq := &Sequencer{Platform: rc, Memory: bus, Layout: lay}
	assert.NoError(seq.PerformSoftReset())

	expected := []string{
		"Status",
		"SwitchMode irq",
		"SetStackPointer irq 0x03007fa0",
		"SetLinkRegister irq 0x00000000",
		"SetStatusShadow irq 0x0",
		"SwitchMode svc",
		"SetStackPointer svc 0x03007fe0",
		"SetLinkRegister svc 0x00000000",
		"SetStatusShadow svc 0x0",
		"SwitchMode sys",
		"SetStackPointer sys 0x03007f00",
	}
	for n := range 13 {
		expected = append(expected, fmt.Sprintf("SetRegister r%d 0x0", n))
	}
	expected = append(expected,
		"SetLinkRegister sys 0x08000000",
		"Branch 0x08000000",
	)

	assert.Equal(expected, rc.calls)
	assert.Equal(int(lay.ResetLength), bus.Writes)
}

func TestSequencer_State(t *testing.T) {
	assert := assert.New(t)

	regs, bus, lay := newMachine(t)

	// Dirty everything the reset is expected to set.
	for n := range 13 {
		assert.NoError(regs.SetRegister(n, 0xdead_0000+uint32(n)))
	}
	for _, mode := range []cpu.Mode{cpu.MODE_IRQ, cpu.MODE_SUPERVISOR} {
		assert.NoError(regs.SetLinkRegister(mode, 0x1234))
		assert.NoError(regs.SetStatusShadow(mode, cpu.PSR(0x1f)))
	}
	assert.NoError(memory.Fill(bus, lay.ResetBase-4, 0xa5, lay.ResetLength+4))

	seq := &Sequencer{Platform: regs, Memory: bus, Layout: lay}
	assert.NoError(seq.PerformSoftReset())

	stacks := []struct {
		mode cpu.Mode
		sp   uint32
	}{
		{cpu.MODE_IRQ, 0x0300_7FA0},
		{cpu.MODE_SUPERVISOR, 0x0300_7FE0},
		{cpu.MODE_SYSTEM, 0x0300_7F00},
	}
	for _, entry := range stacks {
		sp, err := regs.StackPointer(entry.mode)
		assert.NoError(err)
		assert.Equal(entry.sp, sp, "%v", entry.mode)
	}
	for _, mode := range []cpu.Mode{cpu.MODE_IRQ, cpu.MODE_SUPERVISOR} {
		lr, err := regs.LinkRegister(mode)
		assert.NoError(err)
		assert.Equal(uint32(0), lr, "%v", mode)
		spsr, err := regs.StatusShadow(mode)
		assert.NoError(err)
		assert.Equal(cpu.PSR(0), spsr, "%v", mode)
	}

	for n := range 13 {
		assert.Equal(uint32(0), regs.R(n), "r%d", n)
	}

	assert.Equal(cpu.MODE_SYSTEM, regs.Mode())
	assert.Equal(uint32(0x0800_0000), regs.R(cpu.REG_LR))
	assert.Equal(uint32(0x0800_0000), regs.PC())
	assert.Equal(uint32(0x0300_7F00), regs.R(cpu.REG_SP))
	assert.False(regs.Status().Thumb())

	// Interrupt masks survive the mode switches, so System mode is entered
	// with I and F still set (CPSR 0xdf from power on).
	assert.Equal(cpu.PSR(0xdf), regs.Status())
	assert.Equal(uint32(cpu.PSR_I|cpu.PSR_F), uint32(regs.Status())&(cpu.PSR_I|cpu.PSR_F))

	data, err := bus.Peek(lay.ResetBase, lay.ResetLength)
	assert.NoError(err)
	assert.Equal(make([]byte, lay.ResetLength), data)

	// The byte below the reset region is untouched.
	edge, err := bus.Read8(lay.ResetBase - 1)
	assert.NoError(err)
	assert.Equal(uint8(0xa5), edge)
}

func TestSequencer_BusFault(t *testing.T) {
	assert := assert.New(t)

	regs := cpu.NewRegisters()
	bus := &memory.Bus{}
	lay := layout.GBA.Clone()

	seq := &Sequencer{Platform: regs, Memory: bus, Layout: lay}
	err := seq.PerformSoftReset()
	assert.Equal(memory.ErrUnmapped(lay.ResetBase), err)
	assert.NotEqual(lay.EntryAddress, regs.PC())
}
