package memory

import "fmt"

// Size is the full 6502 address space in bytes.
const Size = 0x10000

// Cell is one (address, value) pair returned by Dump.
type Cell struct {
	Addr uint16
	Data uint8
}

// RAM is a flat 64 KB memory with no mirroring and no mapped devices.
// Unwritten addresses read as zero.
type RAM struct {
	data [Size]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.data[addr]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.data[addr] = data
}

// Read16 reads a little-endian word. The high byte comes from $0000
// when addr is $FFFF.
func (r *RAM) Read16(addr uint16) uint16 {
	return uint16(r.data[addr]) | uint16(r.data[addr+1])<<8
}

func (r *RAM) Write16(addr uint16, data uint16) {
	r.data[addr] = uint8(data & 0xff)
	r.data[addr+1] = uint8(data >> 8)
}

// Load copies data into memory starting at start. It stops at the top
// of the address space instead of wrapping and returns the number of
// bytes written.
func (r *RAM) Load(start uint16, data []byte) int {
	return copy(r.data[start:], data)
}

// Dump returns n (address, value) pairs in address order starting at
// start, clipped at the top of the address space.
func (r *RAM) Dump(start uint16, n int) []Cell {
	if n <= 0 {
		return nil
	}
	if left := Size - int(start); n > left {
		n = left
	}
	cells := make([]Cell, n)
	for i := range cells {
		addr := start + uint16(i)
		cells[i] = Cell{Addr: addr, Data: r.data[addr]}
	}
	return cells
}

// Clear zeroes the whole address space.
func (r *RAM) Clear() {
	r.data = [Size]uint8{}
}

// Peek bounds-checks addr before reading. It exists for callers that
// take addresses from user input; the CPU always uses Read8.
func (r *RAM) Peek(addr int) (uint8, error) {
	if addr < 0 || addr >= Size {
		return 0, OutOfRangeError{Addr: addr}
	}
	return r.data[addr], nil
}

// Poke bounds-checks addr before writing.
func (r *RAM) Poke(addr int, data uint8) error {
	if addr < 0 || addr >= Size {
		return OutOfRangeError{Addr: addr}
	}
	r.data[addr] = data
	return nil
}

// OutOfRangeError reports an address outside the 16-bit address space.
type OutOfRangeError struct {
	Addr int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("address %d is out of range 0x0000-0xFFFF", e.Addr)
}
