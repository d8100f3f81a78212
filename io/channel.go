// Package io provides the memory-mapped peripherals of the simulated
// console: the debug port observed by the Debug service, read-only ROM
// regions, and the display control registers polled by client programs.
//
// Every peripheral is a memory.Device and is attached to the bus at the
// origin given by the host layout.
package io

import (
	"github.com/ezrec/minibios/memory"
)

// Peripheral is a memory-mapped device that can be returned to its
// power-on state.
type Peripheral interface {
	memory.Device
	// Reset returns the device to its power-on state.
	Reset()
}
