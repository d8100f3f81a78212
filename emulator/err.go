package emulator

import (
	"errors"

	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrNoCartridge = errors.New(f("layout has no cartridge rom"))
	ErrTooManyArgs = errors.New(f("too many service arguments"))
)

// ErrTrap indicates the location of a trap that could not be serviced.
type ErrTrap struct {
	Addr   uint32
	Opcode uint32
	Err    error
}

func (err *ErrTrap) Error() string {
	return f("0x%08x [%08x] %v", err.Addr, err.Opcode, err.Err)
}

func (err *ErrTrap) Unwrap() error {
	return err.Err
}
