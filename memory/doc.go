// Package memory provides the simulated memory bus and the byte-level fill
// and move primitives the BIOS uses during reset.
//
// A Bus maps Devices at fixed origins. Addresses are 32 bits wide; 16 and 32
// bit accesses are little-endian and are composed of byte accesses to the
// device that contains the first byte.
package memory
