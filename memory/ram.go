package memory

// RAM is a read/write memory device.
type RAM struct {
	name string
	Data []byte
}

var _ Device = (*RAM)(nil)

// NewRAM creates a zeroed RAM device.
func NewRAM(name string, size uint32) (ram *RAM) {
	ram = &RAM{
		name: name,
		Data: make([]byte, size),
	}
	return
}

// Name of the device.
func (ram *RAM) Name() string {
	return ram.name
}

// Size of the device in bytes.
func (ram *RAM) Size() uint32 {
	return uint32(len(ram.Data))
}

// Read8 reads the byte at offset.
func (ram *RAM) Read8(offset uint32) (value uint8, err error) {
	value = ram.Data[offset]
	return
}

// Write8 writes the byte at offset.
func (ram *RAM) Write8(offset uint32, value uint8) (err error) {
	ram.Data[offset] = value
	return
}

// Reset zeroes the RAM.
func (ram *RAM) Reset() {
	clear(ram.Data)
}
