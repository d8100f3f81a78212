// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package layout

import (
	"fmt"
	"io"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// BASE_PREFIX is prepended to the base layout's constants when they are
// predeclared to a layout script.
const BASE_PREFIX = "BASE_"

// Load evaluates a Starlark layout script on top of a base layout.
//
// Top-level integer globals named after the layout constants (SP_SVC, SP_IRQ,
// SP_SYS, RESET_BASE, RESET_LENGTH, ENTRY, DEBUG_PORT) replace the base
// values. NAME renames the layout. REGIONS, a list of
// (name, origin, size[, readonly]) tuples, replaces the memory map.
//
// The base constants are predeclared with BASE_PREFIX, so a script may say
// 'SP_SYS = BASE_SP_SYS - 0x100'.
func Load(name string, src io.Reader, base *Layout) (lay *Layout, err error) {
	lay = base.Clone()

	defer func() {
		if err != nil {
			lay = nil
		}
	}()

	pred := starlark.StringDict{
		BASE_PREFIX + "NAME": starlark.String(base.Name),
	}
	for key, value := range lay.constants() {
		pred[BASE_PREFIX+key] = starlark.MakeUint64(uint64(*value))
	}

	thread := starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("layout: %v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, pred)
	if err != nil {
		return
	}

	if v, ok := globals["NAME"]; ok {
		str, ok := starlark.AsString(v)
		if !ok {
			err = &ErrLayout{Layout: name, Field: "NAME", Err: fmt.Errorf("%w: %v", ErrNotString, v.Type())}
			return
		}
		lay.Name = str
	}

	for key, field := range lay.constants() {
		v, ok := globals[key]
		if !ok {
			continue
		}
		*field, err = toUint32(v)
		if err != nil {
			err = &ErrLayout{Layout: name, Field: key, Err: err}
			return
		}
	}

	if v, ok := globals["REGIONS"]; ok {
		lay.Regions, err = toRegions(v)
		if err != nil {
			err = &ErrLayout{Layout: name, Field: "REGIONS", Err: err}
			return
		}
	}

	err = lay.Validate()
	return
}

// toUint32 converts a Starlark integer to an address-sized value.
func toUint32(v starlark.Value) (value uint32, err error) {
	st_int, ok := v.(starlark.Int)
	if !ok {
		err = ErrNotInteger
		return
	}
	st_uint64, ok := st_int.Uint64()
	if !ok || st_uint64 > 0xffffffff {
		err = ErrNotInteger
		return
	}
	value = uint32(st_uint64)
	return
}

// toRegions converts a sequence of region tuples.
func toRegions(v starlark.Value) (regions []Region, err error) {
	list, ok := v.(starlark.Indexable)
	if !ok {
		err = ErrRegionSyntax
		return
	}

	for n := range list.Len() {
		entry, ok := list.Index(n).(starlark.Indexable)
		if !ok || entry.Len() < 3 || entry.Len() > 4 {
			err = ErrRegionSyntax
			return
		}

		var region Region
		region.Name, ok = starlark.AsString(entry.Index(0))
		if !ok {
			err = ErrRegionSyntax
			return
		}
		region.Origin, err = toUint32(entry.Index(1))
		if err != nil {
			return
		}
		region.Size, err = toUint32(entry.Index(2))
		if err != nil {
			return
		}
		if entry.Len() == 4 {
			region.ReadOnly = bool(entry.Index(3).Truth())
		}

		regions = append(regions, region)
	}

	return
}
