// Package layout holds the fixed-address constants of a host platform: the
// per-mode stack pointers, the region cleared by SoftReset, the reset entry
// address, the debug port, and the memory map.
package layout

import (
	"fmt"
	"iter"
	"maps"
)

// Region is a named span of the memory map.
type Region struct {
	Name     string
	Origin   uint32
	Size     uint32
	ReadOnly bool
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return uint64(r.Origin) + uint64(r.Size)
}

// Contains returns true if [addr, addr+length) lies within the region.
func (r Region) Contains(addr uint32, length uint32) bool {
	return addr >= r.Origin && uint64(addr)+uint64(length) <= r.End()
}

// Layout is the configuration-constants table of a host.
type Layout struct {
	Name string

	StackSupervisor uint32 // sp_svc
	StackIRQ        uint32 // sp_irq
	StackSystem     uint32 // sp_sys

	ResetBase   uint32 // First byte cleared by SoftReset.
	ResetLength uint32 // Number of bytes cleared by SoftReset.

	EntryAddress uint32 // Where SoftReset branches to.
	DebugPort    uint32 // Word written by the Debug SWI.

	Regions []Region
}

// Host names.
const (
	GBA_HOST = "GBA"
)

// GBA is the Game Boy Advance layout.
//
//	Host  sp_svc    sp_irq    sp_sys    zerofilled area       return address
//	GBA   3007FE0h  3007FA0h  3007F00h  [3007E00h..3007FFFh]  8000000h
var GBA = Layout{
	Name: GBA_HOST,

	StackSupervisor: 0x0300_7FE0,
	StackIRQ:        0x0300_7FA0,
	StackSystem:     0x0300_7F00,

	ResetBase:   0x0300_7E00,
	ResetLength: 0x200,

	EntryAddress: 0x0800_0000,
	DebugPort:    0x0200_0000,

	Regions: []Region{
		{Name: "bios", Origin: 0x0000_0000, Size: 0x4000, ReadOnly: true},
		{Name: "ewram", Origin: 0x0200_0000, Size: 0x4_0000},
		{Name: "iwram", Origin: 0x0300_0000, Size: 0x8000},
		{Name: "io", Origin: 0x0400_0000, Size: 0x400},
		{Name: "palette", Origin: 0x0500_0000, Size: 0x400},
		{Name: "vram", Origin: 0x0600_0000, Size: 0x1_8000},
		{Name: "oam", Origin: 0x0700_0000, Size: 0x400},
		{Name: "rom", Origin: 0x0800_0000, Size: 0x200_0000, ReadOnly: true},
	},
}

// Clone returns a deep copy of the layout.
func (lay *Layout) Clone() (dup *Layout) {
	dup = &Layout{}
	*dup = *lay
	dup.Regions = append([]Region(nil), lay.Regions...)
	return
}

// Region returns the region with the given name.
func (lay *Layout) Region(name string) (region Region, ok bool) {
	for _, r := range lay.Regions {
		if r.Name == name {
			region = r
			ok = true
			return
		}
	}
	return
}

// RegionOf returns the region that contains [addr, addr+length).
func (lay *Layout) RegionOf(addr uint32, length uint32) (region Region, ok bool) {
	for _, r := range lay.Regions {
		if r.Contains(addr, length) {
			region = r
			ok = true
			return
		}
	}
	return
}

// Validate checks that every constant lands in a writable region.
func (lay *Layout) Validate() (err error) {
	for n, r := range lay.Regions {
		if r.Size == 0 {
			err = &ErrLayout{Layout: lay.Name, Field: r.Name, Err: ErrRegionEmpty}
			return
		}
		for _, other := range lay.Regions[n+1:] {
			if uint64(r.Origin) < other.End() && uint64(other.Origin) < r.End() {
				err = &ErrLayout{Layout: lay.Name, Field: r.Name, Err: ErrRegionOverlap}
				return
			}
		}
	}

	if lay.ResetLength == 0 {
		err = &ErrLayout{Layout: lay.Name, Field: "RESET_LENGTH", Err: ErrRegionEmpty}
		return
	}

	writable := []struct {
		field  string
		addr   uint32
		length uint32
	}{
		{"RESET_BASE", lay.ResetBase, lay.ResetLength},
		{"DEBUG_PORT", lay.DebugPort, 4},
		// Full-descending stacks: the first push lands just below sp.
		{"SP_SVC", lay.StackSupervisor - 4, 4},
		{"SP_IRQ", lay.StackIRQ - 4, 4},
		{"SP_SYS", lay.StackSystem - 4, 4},
	}
	for _, w := range writable {
		r, ok := lay.RegionOf(w.addr, w.length)
		if !ok {
			err = &ErrLayout{Layout: lay.Name, Field: w.field, Err: ErrUnmapped}
			return
		}
		if r.ReadOnly {
			err = &ErrLayout{Layout: lay.Name, Field: w.field, Err: ErrReadOnly}
			return
		}
	}

	if _, ok := lay.RegionOf(lay.EntryAddress, 4); !ok {
		err = &ErrLayout{Layout: lay.Name, Field: "ENTRY", Err: ErrUnmapped}
		return
	}

	return
}

// Defines returns the layout constants by their script names.
func (lay *Layout) Defines() iter.Seq2[string, string] {
	defines := map[string]string{}
	for name, value := range lay.constants() {
		defines[name] = fmt.Sprintf("0x%08x", *value)
	}
	return maps.All(defines)
}

// constants maps the script names to the layout fields.
func (lay *Layout) constants() map[string]*uint32 {
	return map[string]*uint32{
		"SP_SVC":       &lay.StackSupervisor,
		"SP_IRQ":       &lay.StackIRQ,
		"SP_SYS":       &lay.StackSystem,
		"RESET_BASE":   &lay.ResetBase,
		"RESET_LENGTH": &lay.ResetLength,
		"ENTRY":        &lay.EntryAddress,
		"DEBUG_PORT":   &lay.DebugPort,
	}
}
