// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"log"
	"slices"
)

// ACCESS_CYCLES is the cost of a single bus access.
const ACCESS_CYCLES = 1

// Memory is byte-addressed storage.
type Memory interface {
	Read8(addr uint32) (value uint8, err error)
	Write8(addr uint32, value uint8) (err error)
}

// Device is a region decoded by the Bus. Offsets are relative to the origin
// the device is attached at.
type Device interface {
	Name() string
	Size() uint32
	Read8(offset uint32) (value uint8, err error)
	Write8(offset uint32, value uint8) (err error)
}

// Ticker is advanced by the bus on every access.
type Ticker interface {
	Tick(cycles int)
}

// Mapping is a device attached to the bus.
type Mapping struct {
	Origin uint32
	Device Device
}

// Contains returns true if the mapping decodes addr.
func (m *Mapping) Contains(addr uint32) bool {
	return addr >= m.Origin && uint64(addr) < uint64(m.Origin)+uint64(m.Device.Size())
}

// Bus is the simulated system bus.
type Bus struct {
	Verbose bool   // If set, logs every write.
	Ticker  Ticker // Advanced by ACCESS_CYCLES per access, if set.

	Reads  int // Number of read accesses.
	Writes int // Number of write accesses.

	mappings []Mapping
	overlays []Mapping // Decoded before mappings.
}

var _ Memory = (*Bus)(nil)

// attach adds a device to a set of non-overlapping mappings.
func attach(mappings []Mapping, origin uint32, dev Device) (out []Mapping, err error) {
	if dev.Size() == 0 {
		err = ErrDeviceEmpty
		return
	}

	add := Mapping{Origin: origin, Device: dev}
	last := origin + (dev.Size() - 1)
	for _, m := range mappings {
		if m.Contains(origin) || m.Contains(last) || add.Contains(m.Origin) {
			err = ErrDeviceOverlap
			return
		}
	}

	out = append(mappings, add)
	slices.SortFunc(out, func(a, b Mapping) int {
		switch {
		case a.Origin < b.Origin:
			return -1
		case a.Origin > b.Origin:
			return 1
		}
		return 0
	})

	return
}

// Attach maps a device at origin.
func (bus *Bus) Attach(origin uint32, dev Device) (err error) {
	mappings, err := attach(bus.mappings, origin, dev)
	if err != nil {
		return
	}

	bus.mappings = mappings
	return
}

// Overlay maps a device at origin, over any attached device. Overlays must
// not overlap each other.
func (bus *Bus) Overlay(origin uint32, dev Device) (err error) {
	overlays, err := attach(bus.overlays, origin, dev)
	if err != nil {
		return
	}

	bus.overlays = overlays
	return
}

// Mappings returns the attached devices in address order.
func (bus *Bus) Mappings() []Mapping {
	return slices.Clone(bus.mappings)
}

// Lookup finds the mapping that decodes addr.
func (bus *Bus) Lookup(addr uint32) (m *Mapping, err error) {
	for n := range bus.overlays {
		if bus.overlays[n].Contains(addr) {
			m = &bus.overlays[n]
			return
		}
	}

	for n := range bus.mappings {
		if bus.mappings[n].Contains(addr) {
			m = &bus.mappings[n]
			return
		}
	}

	err = ErrUnmapped(addr)
	return
}

func (bus *Bus) tick() {
	if bus.Ticker != nil {
		bus.Ticker.Tick(ACCESS_CYCLES)
	}
}

func (bus *Bus) read8(addr uint32) (value uint8, err error) {
	m, err := bus.Lookup(addr)
	if err != nil {
		return
	}

	value, err = m.Device.Read8(addr - m.Origin)
	if err != nil {
		err = &ErrAccess{Device: m.Device.Name(), Addr: addr, Err: err}
	}
	return
}

func (bus *Bus) write8(addr uint32, value uint8) (err error) {
	m, err := bus.Lookup(addr)
	if err != nil {
		return
	}

	err = m.Device.Write8(addr-m.Origin, value)
	if err != nil {
		err = &ErrAccess{Device: m.Device.Name(), Addr: addr, Write: true, Err: err}
	}
	return
}

func (bus *Bus) read(addr uint32, width int) (value uint32, err error) {
	bus.Reads++
	bus.tick()

	for n := range width {
		var b uint8
		b, err = bus.read8(addr + uint32(n))
		if err != nil {
			return
		}
		value |= uint32(b) << (8 * n)
	}
	return
}

func (bus *Bus) write(addr uint32, value uint32, width int) (err error) {
	bus.Writes++
	bus.tick()

	if bus.Verbose {
		log.Printf("bus: write%d 0x%08x <- 0x%x", width*8, addr, value)
	}

	for n := range width {
		err = bus.write8(addr+uint32(n), uint8(value>>(8*n)))
		if err != nil {
			return
		}
	}
	return
}

// Read8 reads a byte.
func (bus *Bus) Read8(addr uint32) (value uint8, err error) {
	v, err := bus.read(addr, 1)
	value = uint8(v)
	return
}

// Write8 writes a byte.
func (bus *Bus) Write8(addr uint32, value uint8) (err error) {
	return bus.write(addr, uint32(value), 1)
}

// Read16 reads a little-endian halfword.
func (bus *Bus) Read16(addr uint32) (value uint16, err error) {
	v, err := bus.read(addr, 2)
	value = uint16(v)
	return
}

// Write16 writes a little-endian halfword.
func (bus *Bus) Write16(addr uint32, value uint16) (err error) {
	return bus.write(addr, uint32(value), 2)
}

// Read32 reads a little-endian word.
func (bus *Bus) Read32(addr uint32) (value uint32, err error) {
	return bus.read(addr, 4)
}

// Write32 writes a little-endian word.
func (bus *Bus) Write32(addr uint32, value uint32) (err error) {
	return bus.write(addr, value, 4)
}

// Peek reads 'length' bytes without counting or ticking.
func (bus *Bus) Peek(addr uint32, length uint32) (data []byte, err error) {
	data = make([]byte, length)
	for n := range length {
		data[n], err = bus.read8(addr + n)
		if err != nil {
			data = nil
			return
		}
	}
	return
}
