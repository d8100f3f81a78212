package bios

import (
	"errors"

	"github.com/ezrec/minibios/cpu"
	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrHalted        = errors.New(f("halted"))
	ErrNotPrivileged = errors.New(f("swi taken outside supervisor mode"))
)

// ErrHalt reports the exception that parked the machine.
type ErrHalt cpu.Exception

func (eh ErrHalt) Error() string {
	return f("%v: %v", cpu.Exception(eh), ErrHalted)
}

func (eh ErrHalt) Unwrap() error {
	return ErrHalted
}
