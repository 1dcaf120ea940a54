package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatMem is a bare 64 KB array without any of the RAM bookkeeping,
// enough to feed fetch and Step in tests.
type flatMem struct {
	data [0x10000]uint8
}

func (m *flatMem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *flatMem) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *flatMem) load(addr uint16, bytes ...uint8) {
	copy(m.data[addr:], bytes)
}

func (m *flatMem) setWord(addr uint16, v uint16) {
	m.data[addr] = uint8(v & 0xff)
	m.data[addr+1] = uint8(v >> 8)
}

func Test_Fetch(t *testing.T) {
	t.Run("IMM reads the byte after the opcode", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xa9, 0x42)
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeIMM)

		assert.Equal(t, uint16(0x0601), cpu.operandAddr)
		assert.Equal(t, uint8(0x42), cpu.operandValue)
		assert.False(t, cpu.pageCrossed)
	})

	t.Run("ZP addresses page zero", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xa5, 0x3f)
		mem.data[0x003f] = 0x99
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeZP)

		assert.Equal(t, uint16(0x003f), cpu.operandAddr)
		assert.Equal(t, uint8(0x99), cpu.operandValue)
	})

	t.Run("ZPX wraps inside page zero", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xb5, 0xff)
		mem.data[0x0080] = 0x11
		mem.data[0x0180] = 0xee
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.x = 0x81

		cpu.fetch(addrModeZPX)

		assert.Equal(t, uint16(0x0080), cpu.operandAddr)
		assert.Equal(t, uint8(0x11), cpu.operandValue)
	})

	t.Run("ZPX never leaves page zero for any base and index", func(t *testing.T) {
		mem := new(flatMem)
		cpu := New(mem)
		cpu.pc = 0x0600
		for _, base := range []uint8{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff} {
			mem.data[0x0601] = base
			for x := 0; x <= 0xff; x++ {
				cpu.x = uint8(x)
				cpu.fetch(addrModeZPX)
				if cpu.operandAddr > 0x00ff {
					t.Fatalf("base %02X x %02X resolved outside page zero: %04X", base, x, cpu.operandAddr)
				}
			}
		}
	})

	t.Run("ZPY wraps inside page zero", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xb6, 0xc0)
		mem.data[0x0001] = 0x5a
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.y = 0x41

		cpu.fetch(addrModeZPY)

		assert.Equal(t, uint16(0x0001), cpu.operandAddr)
		assert.Equal(t, uint8(0x5a), cpu.operandValue)
	})

	t.Run("ABS reads a 16-bit address", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xad, 0x34, 0x12)
		mem.data[0x1234] = 0x77
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeABS)

		assert.Equal(t, uint16(0x1234), cpu.operandAddr)
		assert.Equal(t, uint8(0x77), cpu.operandValue)
	})

	t.Run("ABSX without page crossing", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xbd, 0x00, 0x12)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.x = 0x10

		cpu.fetch(addrModeABSX)

		assert.Equal(t, uint16(0x1210), cpu.operandAddr)
		assert.False(t, cpu.pageCrossed)
	})

	t.Run("ABSX flags a page crossing", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xbd, 0xff, 0x12)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.x = 0x01

		cpu.fetch(addrModeABSX)

		assert.Equal(t, uint16(0x1300), cpu.operandAddr)
		assert.True(t, cpu.pageCrossed)
	})

	t.Run("ABSY wraps the full address space", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xb9, 0xff, 0xff)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.y = 0x02

		cpu.fetch(addrModeABSY)

		assert.Equal(t, uint16(0x0001), cpu.operandAddr)
		assert.True(t, cpu.pageCrossed)
	})

	t.Run("IND follows the pointer", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0x6c, 0x34, 0x12)
		mem.setWord(0x1234, 0xabcd)
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeIND)

		assert.Equal(t, uint16(0xabcd), cpu.operandAddr)
	})

	t.Run("IND pointer at a page boundary wraps the high byte read", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0x6c, 0xff, 0x10)
		mem.data[0x10ff] = 0x34
		mem.data[0x1000] = 0x12
		mem.data[0x1100] = 0x99 // must not be used
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeIND)

		assert.Equal(t, uint16(0x1234), cpu.operandAddr)
	})

	t.Run("INDX indexes before the zero page lookup", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xa1, 0x20)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.x = 0x04
		mem.setWord(0x0024, 0x2074)
		mem.data[0x2074] = 0x66

		cpu.fetch(addrModeINDX)

		assert.Equal(t, uint16(0x2074), cpu.operandAddr)
		assert.Equal(t, uint8(0x66), cpu.operandValue)
	})

	t.Run("INDX pointer wraps inside page zero", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xa1, 0xfe)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.x = 0x01
		mem.data[0x00ff] = 0xcd
		mem.data[0x0000] = 0xab

		cpu.fetch(addrModeINDX)

		assert.Equal(t, uint16(0xabcd), cpu.operandAddr)
	})

	t.Run("INDY indexes after the zero page lookup", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xb1, 0x86)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.y = 0x10
		mem.setWord(0x0086, 0x4028)
		mem.data[0x4038] = 0x23

		cpu.fetch(addrModeINDY)

		assert.Equal(t, uint16(0x4038), cpu.operandAddr)
		assert.Equal(t, uint8(0x23), cpu.operandValue)
		assert.False(t, cpu.pageCrossed)
	})

	t.Run("INDY flags a page crossing", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xb1, 0x86)
		cpu := New(mem)
		cpu.pc = 0x0600
		cpu.y = 0xff
		mem.setWord(0x0086, 0x4028)

		cpu.fetch(addrModeINDY)

		assert.Equal(t, uint16(0x4127), cpu.operandAddr)
		assert.True(t, cpu.pageCrossed)
	})

	t.Run("INDY base pointer high byte wraps inside page zero", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xb1, 0xff)
		cpu := New(mem)
		cpu.pc = 0x0600
		mem.data[0x00ff] = 0x28
		mem.data[0x0000] = 0x40

		cpu.fetch(addrModeINDY)

		assert.Equal(t, uint16(0x4028), cpu.operandAddr)
	})

	t.Run("REL with a positive offset", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xd0, 0x05)
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeREL)

		assert.Equal(t, uint16(0x0607), cpu.operandAddr)
	})

	t.Run("REL with a negative offset", func(t *testing.T) {
		mem := new(flatMem)
		mem.load(0x0600, 0xd0, 0xfb)
		cpu := New(mem)
		cpu.pc = 0x0600

		cpu.fetch(addrModeREL)

		assert.Equal(t, uint16(0x05fd), cpu.operandAddr)
	})

	t.Run("ACC exposes the accumulator", func(t *testing.T) {
		cpu := New(new(flatMem))
		cpu.a = 0x42

		cpu.fetch(addrModeACC)

		assert.Equal(t, uint8(0x42), cpu.operandValue)
	})

	t.Run("IMP leaves the scratch empty", func(t *testing.T) {
		cpu := New(new(flatMem))
		cpu.operandAddr = 0x1234
		cpu.operandValue = 0x56
		cpu.pageCrossed = true

		cpu.fetch(addrModeIMP)

		assert.Equal(t, uint16(0), cpu.operandAddr)
		assert.Equal(t, uint8(0), cpu.operandValue)
		assert.False(t, cpu.pageCrossed)
	})
}

func Test_AddrModeLength(t *testing.T) {
	assert.Equal(t, uint16(1), addrModeIMP.length())
	assert.Equal(t, uint16(1), addrModeACC.length())
	assert.Equal(t, uint16(2), addrModeIMM.length())
	assert.Equal(t, uint16(2), addrModeZP.length())
	assert.Equal(t, uint16(2), addrModeZPX.length())
	assert.Equal(t, uint16(2), addrModeZPY.length())
	assert.Equal(t, uint16(2), addrModeINDX.length())
	assert.Equal(t, uint16(2), addrModeINDY.length())
	assert.Equal(t, uint16(2), addrModeREL.length())
	assert.Equal(t, uint16(3), addrModeABS.length())
	assert.Equal(t, uint16(3), addrModeABSX.length())
	assert.Equal(t, uint16(3), addrModeABSY.length())
	assert.Equal(t, uint16(3), addrModeIND.length())
}
