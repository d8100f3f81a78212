package swi

import (
	"fmt"
)

// ARG_COUNT is the number of register arguments of a service (r0-r3).
const ARG_COUNT = 4

// CallFrame is the register state handed to a service handler.
type CallFrame struct {
	Ordinal Ordinal
	Args    [ARG_COUNT]uint32 // r0-r3 at trap time.
	Return  uint32            // Address of the instruction following the trap.

	Result    uint32 // Written to r0 if HasResult is set.
	HasResult bool
	NoReturn  bool // The handler transferred control; no privileged return.
}

// SetResult records a value to be returned in r0.
func (cf *CallFrame) SetResult(value uint32) {
	cf.Result = value
	cf.HasResult = true
}

func (cf *CallFrame) String() string {
	return fmt.Sprintf("%v(0x%x, 0x%x, 0x%x, 0x%x) -> 0x%08x",
		cf.Ordinal, cf.Args[0], cf.Args[1], cf.Args[2], cf.Args[3], cf.Return)
}
