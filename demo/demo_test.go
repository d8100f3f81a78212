package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/minibios/emulator"
	"github.com/ezrec/minibios/layout"
)

func newMachine(t *testing.T) (emu *emulator.Emulator) {
	emu, err := emulator.NewEmulator(&layout.GBA)
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Reset()
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestRGB5(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(BAND_COLOR, RGB5(24, 10, 24))
	assert.Equal(BACKGROUND_COLOR, RGB5(16, 28, 16))
	assert.Equal(uint16(0x7fff), RGB5(31, 31, 31))
	assert.Equal(uint32(0x0600_0000+(160*240-1)*2), Pixel(239, 159))
}

func TestMode3Band(t *testing.T) {
	assert := assert.New(t)

	emu := newMachine(t)
	assert.NoError(Mode3Band(context.Background(), emu))

	assert.Equal(uint16(MODE_3|BG2_ENABLE), emu.Display.Control())

	table := []struct {
		x, y  int
		color uint16
	}{
		{0, 0, BACKGROUND_COLOR},
		{239, 75, BACKGROUND_COLOR},
		{0, 76, BAND_COLOR},
		{120, 80, BAND_COLOR},
		{239, 84, BAND_COLOR},
		{0, 85, BACKGROUND_COLOR},
		{239, 159, BACKGROUND_COLOR},
	}

	for _, entry := range table {
		color, err := emu.Read16(Pixel(entry.x, entry.y))
		assert.NoError(err)
		assert.Equal(entry.color, color, "(%d, %d)", entry.x, entry.y)
	}

	// Idles on the Halt service, which returns at once.
	assert.Equal(uint32(0x0800_0004), emu.PC())
}

func TestVBlankFill(t *testing.T) {
	assert := assert.New(t)

	emu := newMachine(t)
	assert.NoError(VBlankFill(context.Background(), emu, 3))

	for frame := range 3 {
		v, ok := emu.Debug.Await()
		assert.True(ok)
		assert.Equal(uint32(frame), v)
	}
	_, ok := emu.Debug.Await()
	assert.False(ok)

	assert.Equal(2, emu.Frames())
	assert.GreaterOrEqual(emu.Display.Line(), SCREEN_HEIGHT)

	color, err := emu.Read16(Pixel(10, 10))
	assert.NoError(err)
	assert.Equal(FRAME_COLORS[0], color)
}

func TestDemo_Cancel(t *testing.T) {
	assert := assert.New(t)

	emu := newMachine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(Mode3Band(ctx, emu), context.Canceled)
	assert.ErrorIs(VBlankFill(ctx, emu, 1), context.Canceled)
	_, ok := emu.Debug.Await()
	assert.False(ok)
}
