package memory

// Fill writes the low 8 bits of value to 'length' bytes starting at dest.
func Fill(mem Memory, dest uint32, value uint32, length uint32) (err error) {
	b := uint8(value)
	for n := range length {
		err = mem.Write8(dest+n, b)
		if err != nil {
			return
		}
	}
	return
}

// Move copies 'length' bytes from src to dest. The result is the same as if
// the source had been read completely before the first destination byte was
// written, whether or not the ranges overlap.
func Move(mem Memory, dest uint32, src uint32, length uint32) (err error) {
	if length == 0 || dest == src {
		return
	}

	var b uint8

	// Destination starts inside the source: copy from the top down.
	if dest > src && uint64(dest) < uint64(src)+uint64(length) {
		for n := length; n > 0; n-- {
			b, err = mem.Read8(src + n - 1)
			if err != nil {
				return
			}
			err = mem.Write8(dest+n-1, b)
			if err != nil {
				return
			}
		}
		return
	}

	for n := range length {
		b, err = mem.Read8(src + n)
		if err != nil {
			return
		}
		err = mem.Write8(dest+n, b)
		if err != nil {
			return
		}
	}
	return
}
