package io

import (
	"errors"

	"github.com/ezrec/minibios/translate"
)

var f = translate.From

var (
	ErrReadOnly  = errors.New(f("read only"))
	ErrRomTooBig = errors.New(f("image larger than rom"))
)
