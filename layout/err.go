package layout

import (
	"errors"

	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrRegionEmpty   = errors.New(f("region empty"))
	ErrRegionOverlap = errors.New(f("region overlaps another region"))
	ErrUnmapped      = errors.New(f("not in any region"))
	ErrReadOnly      = errors.New(f("in a read-only region"))
	ErrNotInteger    = errors.New(f("not an unsigned 32-bit integer"))
	ErrNotString     = errors.New(f("not a string"))
	ErrRegionSyntax  = errors.New(f("REGIONS entries are (name, origin, size[, readonly])"))
)

// ErrLayout locates a problem in a layout.
type ErrLayout struct {
	Layout string
	Field  string
	Err    error
}

func (err *ErrLayout) Error() string {
	return f("layout %v: %v %v", err.Layout, err.Field, err.Err)
}

func (err *ErrLayout) Unwrap() error {
	return err.Err
}
