package swi

import (
	"log"
)

// Handler services one ordinal. Handlers read their arguments from the
// frame and report results through it; an error is a simulation fault,
// never a service result.
type Handler func(frame *CallFrame) error

// Noop is the handler of every unimplemented service: it reads nothing,
// writes nothing, and returns.
func Noop(frame *CallFrame) error {
	return nil
}

// Table binds every ordinal to a handler.
type Table struct {
	Verbose bool // Set to enable verbose logging.

	slots [SWI_COUNT]Handler
	bound [SWI_COUNT]bool
}

// NewTable creates a table with Noop installed in every slot.
func NewTable() (table *Table) {
	table = &Table{}
	for n := range table.slots {
		table.slots[n] = Noop
	}
	return
}

// Bind installs a handler for an ordinal. A nil handler restores Noop.
func (table *Table) Bind(o Ordinal, handler Handler) (err error) {
	if !o.Valid() {
		err = ErrOrdinal(o)
		return
	}

	if handler == nil {
		table.slots[o] = Noop
		table.bound[o] = false
		return
	}

	table.slots[o] = handler
	table.bound[o] = true
	return
}

// Bound returns true if the ordinal has a handler other than Noop.
func (table *Table) Bound(o Ordinal) bool {
	return o.Valid() && table.bound[o]
}

// Lookup returns the handler of an ordinal.
func (table *Table) Lookup(o Ordinal) (handler Handler, err error) {
	if !o.Valid() {
		err = ErrOrdinal(o)
		return
	}

	handler = table.slots[o]
	return
}

// Call dispatches a frame to the handler of its ordinal.
func (table *Table) Call(frame *CallFrame) (err error) {
	handler, err := table.Lookup(frame.Ordinal)
	if err != nil {
		return
	}

	if table.Verbose {
		if table.bound[frame.Ordinal] {
			log.Printf("swi: %v", frame)
		} else {
			log.Printf("swi: %v (stub)", frame)
		}
	}

	err = handler(frame)
	return
}
