package memory

import (
	"errors"

	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrDeviceOverlap = errors.New(f("device overlaps an attached device"))
	ErrDeviceEmpty   = errors.New(f("device has no size"))
)

// ErrUnmapped is returned for an access to an address no device decodes.
type ErrUnmapped uint32

func (eu ErrUnmapped) Error() string {
	return f("address 0x%08x unmapped", uint32(eu))
}

// ErrAccess wraps a device error with the address of the access.
type ErrAccess struct {
	Device string
	Addr   uint32
	Write  bool
	Err    error
}

func (err *ErrAccess) Error() string {
	op := "read"
	if err.Write {
		op = "write"
	}
	return f("%v %v 0x%08x: %v", err.Device, op, err.Addr, err.Err)
}

func (err *ErrAccess) Unwrap() error {
	return err.Err
}
