package swi

import (
	"errors"

	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrOrdinalInvalid = errors.New(f("ordinal invalid"))
	ErrNameUnknown    = errors.New(f("service name unknown"))
)

// ErrOrdinal is returned for an ordinal outside of the table.
type ErrOrdinal Ordinal

func (eo ErrOrdinal) Error() string {
	return f("swi 0x%02x: %v", uint8(eo), ErrOrdinalInvalid)
}

func (eo ErrOrdinal) Unwrap() error {
	return ErrOrdinalInvalid
}

// ErrName is returned when no service has the given name.
type ErrName string

func (en ErrName) Error() string {
	return f("swi %q: %v", string(en), ErrNameUnknown)
}

func (en ErrName) Unwrap() error {
	return ErrNameUnknown
}
