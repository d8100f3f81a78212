package cpu

import (
	"errors"

	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrExceptionInvalid = errors.New(f("exception invalid"))
	ErrSwiInvalid       = errors.New(f("not a swi instruction"))
)

// ErrModeInvalid is returned when mode bits do not name an ARMv4T mode.
type ErrModeInvalid Mode

func (em ErrModeInvalid) Error() string {
	return f("mode 0x%02x invalid", uint32(em))
}

// ErrNoStatusShadow is returned when accessing the SPSR of User or System mode.
type ErrNoStatusShadow Mode

func (en ErrNoStatusShadow) Error() string {
	return f("mode %v has no spsr", Mode(en).String())
}

// ErrRegisterInvalid is returned for register numbers outside r0-r15.
type ErrRegisterInvalid int

func (er ErrRegisterInvalid) Error() string {
	return f("register r%d invalid", int(er))
}
