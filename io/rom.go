package io

// Rom is a read-only region. Bytes past the end of Data read as zero.
type Rom struct {
	Data []byte

	name string
	size uint32
}

var _ Peripheral = (*Rom)(nil)

// NewRom creates an empty ROM region.
func NewRom(name string, size uint32) (rc *Rom) {
	rc = &Rom{
		name: name,
		size: size,
	}
	return
}

// Program replaces the ROM content.
func (rc *Rom) Program(data []byte) (err error) {
	if uint64(len(data)) > uint64(rc.size) {
		err = ErrRomTooBig
		return
	}
	rc.Data = append([]byte(nil), data...)
	return
}

// Name of the region.
func (rc *Rom) Name() string {
	return rc.name
}

// Size of the region.
func (rc *Rom) Size() uint32 {
	return rc.size
}

// Reset keeps the content; a ROM survives power cycles.
func (rc *Rom) Reset() {
}

// Read8 reads a byte.
func (rc *Rom) Read8(offset uint32) (value uint8, err error) {
	if offset < uint32(len(rc.Data)) {
		value = rc.Data[offset]
	}
	return
}

// Write8 always fails.
func (rc *Rom) Write8(offset uint32, value uint8) (err error) {
	err = ErrReadOnly
	return
}
