package io

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// DEBUG_PORT_SIZE is the width of the debug port cell.
const DEBUG_PORT_SIZE = 4

// DebugPort is a 32-bit memory cell used to observe values from outside the
// machine. Each completed word write is latched and queued.
type DebugPort struct {
	Output io.Writer // If set, every latched value is echoed here.

	cell    [DEBUG_PORT_SIZE]byte
	pending []uint32 // Latched values not yet awaited.
	latched int
}

var _ Peripheral = (*DebugPort)(nil)

// Defines returns an iter of defines for the port.
func (dp *DebugPort) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"DEBUG_PORT_SIZE": fmt.Sprintf("%d", DEBUG_PORT_SIZE),
	})
}

// Name of the device.
func (dp *DebugPort) Name() string {
	return "debug"
}

// Size of the device.
func (dp *DebugPort) Size() uint32 {
	return DEBUG_PORT_SIZE
}

// Reset clears the cell and drops all queued values.
func (dp *DebugPort) Reset() {
	clear(dp.cell[:])
	dp.pending = nil
	dp.latched = 0
}

// Value returns the current content of the cell.
func (dp *DebugPort) Value() uint32 {
	return uint32(dp.cell[0]) | uint32(dp.cell[1])<<8 | uint32(dp.cell[2])<<16 | uint32(dp.cell[3])<<24
}

// Latched returns the number of values latched since the last reset.
func (dp *DebugPort) Latched() int {
	return dp.latched
}

// Read8 reads a byte of the cell.
func (dp *DebugPort) Read8(offset uint32) (value uint8, err error) {
	value = dp.cell[offset]
	return
}

// Write8 writes a byte of the cell. Writing the most significant byte
// completes a word and latches the cell.
func (dp *DebugPort) Write8(offset uint32, value uint8) (err error) {
	dp.cell[offset] = value
	if offset == DEBUG_PORT_SIZE-1 {
		dp.latch()
	}
	return
}

func (dp *DebugPort) latch() {
	value := dp.Value()
	dp.pending = append(dp.pending, value)
	dp.latched++

	if dp.Output != nil {
		fmt.Fprintf(dp.Output, "debug: 0x%08x (%d)\n", value, int32(value))
	}
}

// Await pops the oldest latched value.
func (dp *DebugPort) Await() (value uint32, ok bool) {
	if len(dp.pending) > 0 {
		ok = true
		value = dp.pending[0]
		dp.pending = dp.pending[1:]
	}
	return
}
