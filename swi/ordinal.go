// Package swi defines the software-interrupt service surface of the BIOS:
// the stable ordinal-to-name mapping, the call frame handed to a service,
// and the dispatch table binding every ordinal to a handler.
package swi

import (
	"fmt"
	"iter"
)

// Ordinal selects a service slot. It is the comment field of the 'swi'
// instruction.
type Ordinal uint8

const (
	SWI_SOFT_RESET             = Ordinal(0x00)
	SWI_REGISTER_RAM_RESET     = Ordinal(0x01)
	SWI_HALT                   = Ordinal(0x02)
	SWI_STOP                   = Ordinal(0x03)
	SWI_INTR_WAIT              = Ordinal(0x04)
	SWI_VBLANK_INTR_WAIT       = Ordinal(0x05)
	SWI_DIV                    = Ordinal(0x06)
	SWI_DIV_ARM                = Ordinal(0x07)
	SWI_SQRT                   = Ordinal(0x08)
	SWI_ARC_TAN                = Ordinal(0x09)
	SWI_ARC_TAN2               = Ordinal(0x0A)
	SWI_CPU_SET                = Ordinal(0x0B)
	SWI_CPU_FAST_SET           = Ordinal(0x0C)
	SWI_GET_BIOS_CHECKSUM      = Ordinal(0x0D)
	SWI_BG_AFFINE_SET          = Ordinal(0x0E)
	SWI_OBJ_AFFINE_SET         = Ordinal(0x0F)
	SWI_BIT_UNPACK             = Ordinal(0x10)
	SWI_LZ77_UNCOMP_WRAM       = Ordinal(0x11)
	SWI_LZ77_UNCOMP_VRAM       = Ordinal(0x12)
	SWI_HUFF_UNCOMP            = Ordinal(0x13)
	SWI_RL_UNCOMP_WRAM         = Ordinal(0x14)
	SWI_RL_UNCOMP_VRAM         = Ordinal(0x15)
	SWI_DIFF8_UNFILTER_WRAM    = Ordinal(0x16)
	SWI_DIFF8_UNFILTER_VRAM    = Ordinal(0x17)
	SWI_DIFF16_UNFILTER        = Ordinal(0x18)
	SWI_SOUND_BIAS             = Ordinal(0x19)
	SWI_SOUND_DRIVER_INIT      = Ordinal(0x1A)
	SWI_SOUND_DRIVER_MODE      = Ordinal(0x1B)
	SWI_SOUND_DRIVER_MAIN      = Ordinal(0x1C)
	SWI_SOUND_DRIVER_VSYNC     = Ordinal(0x1D)
	SWI_SOUND_CHANNEL_CLEAR    = Ordinal(0x1E)
	SWI_MIDI_KEY2FREQ          = Ordinal(0x1F)
	SWI_SOUND_WHATEVER0        = Ordinal(0x20)
	SWI_SOUND_WHATEVER1        = Ordinal(0x21)
	SWI_SOUND_WHATEVER2        = Ordinal(0x22)
	SWI_SOUND_WHATEVER3        = Ordinal(0x23)
	SWI_SOUND_WHATEVER4        = Ordinal(0x24)
	SWI_MULTI_BOOT             = Ordinal(0x25)
	SWI_HARD_RESET             = Ordinal(0x26)
	SWI_CUSTOM_HALT            = Ordinal(0x27)
	SWI_SOUND_DRIVER_VSYNC_OFF = Ordinal(0x28)
	SWI_SOUND_DRIVER_VSYNC_ON  = Ordinal(0x29)
	SWI_SOUND_GET_JUMP_LIST    = Ordinal(0x2A)
	SWI_DEBUG                  = Ordinal(0x2B)
	SWI_COUNT                  = 0x2C // Number of bound ordinals.
)

var _swi_names = [SWI_COUNT]string{
	SWI_SOFT_RESET:             "SoftReset",
	SWI_REGISTER_RAM_RESET:     "RegisterRamReset",
	SWI_HALT:                   "Halt",
	SWI_STOP:                   "Stop",
	SWI_INTR_WAIT:              "IntrWait",
	SWI_VBLANK_INTR_WAIT:       "VBlankIntrWait",
	SWI_DIV:                    "Div",
	SWI_DIV_ARM:                "DivArm",
	SWI_SQRT:                   "Sqrt",
	SWI_ARC_TAN:                "ArcTan",
	SWI_ARC_TAN2:               "ArcTan2",
	SWI_CPU_SET:                "CpuSet",
	SWI_CPU_FAST_SET:           "CpuFastSet",
	SWI_GET_BIOS_CHECKSUM:      "GetBiosChecksum",
	SWI_BG_AFFINE_SET:          "BgAffineSet",
	SWI_OBJ_AFFINE_SET:         "ObjAffineSet",
	SWI_BIT_UNPACK:             "BitUnPack",
	SWI_LZ77_UNCOMP_WRAM:       "LZ77UnCompReadNormalWrite8bit",
	SWI_LZ77_UNCOMP_VRAM:       "LZ77UnCompReadNormalWrite16bit",
	SWI_HUFF_UNCOMP:            "HuffUnCompReadNormal",
	SWI_RL_UNCOMP_WRAM:         "RLUnCompReadNormalWrite8bit",
	SWI_RL_UNCOMP_VRAM:         "RLUnCompReadNormalWrite16bit",
	SWI_DIFF8_UNFILTER_WRAM:    "Diff8bitUnFilterWrite8bit",
	SWI_DIFF8_UNFILTER_VRAM:    "Diff8bitUnFilterWrite16bit",
	SWI_DIFF16_UNFILTER:        "Diff16bitUnFilter",
	SWI_SOUND_BIAS:             "SoundBias",
	SWI_SOUND_DRIVER_INIT:      "SoundDriverInit",
	SWI_SOUND_DRIVER_MODE:      "SoundDriverMode",
	SWI_SOUND_DRIVER_MAIN:      "SoundDriverMain",
	SWI_SOUND_DRIVER_VSYNC:     "SoundDriverVSync",
	SWI_SOUND_CHANNEL_CLEAR:    "SoundChannelClear",
	SWI_MIDI_KEY2FREQ:          "MidiKey2Freq",
	SWI_SOUND_WHATEVER0:        "SoundWhatever0",
	SWI_SOUND_WHATEVER1:        "SoundWhatever1",
	SWI_SOUND_WHATEVER2:        "SoundWhatever2",
	SWI_SOUND_WHATEVER3:        "SoundWhatever3",
	SWI_SOUND_WHATEVER4:        "SoundWhatever4",
	SWI_MULTI_BOOT:             "MultiBoot",
	SWI_HARD_RESET:             "HardReset",
	SWI_CUSTOM_HALT:            "CustomHalt",
	SWI_SOUND_DRIVER_VSYNC_OFF: "SoundDriverVSyncOff",
	SWI_SOUND_DRIVER_VSYNC_ON:  "SoundDriverVSyncOn",
	SWI_SOUND_GET_JUMP_LIST:    "SoundGetJumpList",
	SWI_DEBUG:                  "Debug",
}

// Valid returns true if the ordinal has a slot in the table.
func (o Ordinal) Valid() bool {
	return int(o) < SWI_COUNT
}

func (o Ordinal) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Ordinal(0x%02x)", uint8(o))
	}
	return _swi_names[o]
}

// Parse finds the ordinal of a service by name.
func Parse(name string) (o Ordinal, err error) {
	for n, text := range _swi_names {
		if text == name {
			o = Ordinal(n)
			return
		}
	}

	err = ErrName(name)
	return
}

// Ordinals returns every valid ordinal, in order.
func Ordinals() iter.Seq[Ordinal] {
	return func(yield func(Ordinal) bool) {
		for n := range SWI_COUNT {
			if !yield(Ordinal(n)) {
				return
			}
		}
	}
}

// Defines returns an iter of 'SWI_<Name>' defines for every ordinal.
func Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for o := range Ordinals() {
			if !yield("SWI_"+o.String(), fmt.Sprintf("0x%02x", uint8(o))) {
				return
			}
		}
	}
}
