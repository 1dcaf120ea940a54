package cpu

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Interrupt vector locations, all little-endian words.
const (
	NMIVector   = uint16(0xfffa)
	ResetVector = uint16(0xfffc)
	IRQVector   = uint16(0xfffe)
)

const stackStartAddr = uint16(0x100)

// ReadWriter is the memory the CPU executes against.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// CPU is an instruction-level MOS 6502 emulator. One instruction
// retires per Step; BRK halts the machine instead of raising a
// resumable interrupt. All mutating operations are serialized behind
// one mutex, so a debugger and a run loop may share an instance.
type CPU struct {
	mu      sync.Mutex
	running atomic.Bool

	a      uint8
	x      uint8
	y      uint8
	sp     uint8
	pc     uint16
	flags  Flags
	cycles uint64
	halted bool

	mem ReadWriter

	// operand scratch for the instruction being executed
	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool
}

func New(mem ReadWriter) *CPU {
	return &CPU{mem: mem}
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// Reset puts the CPU into its power-on state: registers cleared, sp at
// the top of the stack page, interrupts disabled, cycle counter at
// zero, pc loaded from the reset vector. Memory contents are left
// alone.
func (c *CPU) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running.Store(false)
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0xff
	c.flags = Flags{InterruptDisable: true}
	c.pc = c.read16(ResetVector)
	c.cycles = 0
	c.halted = false
}

// LoadProgram copies a raw program image into memory and points pc at
// it. The reset vector is not touched. Bytes that would land past the
// top of the address space are dropped.
func (c *CPU) LoadProgram(data []byte, start uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	addr := uint32(start)
	for _, b := range data {
		if addr > 0xffff {
			break
		}
		c.write8(uint16(addr), b)
		addr++
	}
	c.pc = start
}

// Step executes exactly one instruction. The bool result is true when
// the CPU is halted after the call. Stepping an already halted CPU
// fails with ErrHalted; an opcode without a table entry fails with
// UnknownOpcodeError. A failed Step leaves every register, flag and
// memory cell untouched.
func (c *CPU) Step() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step()
}

func (c *CPU) step() (bool, error) {
	if c.halted {
		return true, ErrHalted
	}

	opcode := c.read8(c.pc)
	in := opcodeTable[opcode]
	if in.name == opUnknown {
		return false, UnknownOpcodeError{Opcode: opcode, PC: c.pc}
	}

	c.fetch(in.mode)
	opPC := c.pc
	c.pc += in.mode.length()

	halt, err := c.execute(in.name)
	if err != nil {
		c.pc = opPC
		return false, err
	}

	c.cycles += uint64(in.cycles)
	if c.pageCrossed {
		c.cycles++
	}
	if halt {
		c.halted = true
	}
	return c.halted, nil
}

// Run steps the CPU until it halts, fails, or Stop is called. Stop is
// observed at the next step boundary, never mid-instruction. Run
// returns nil when the CPU halted or was stopped and the step error
// otherwise. A second concurrent Run is a no-op.
func (c *CPU) Run() error {
	if !c.running.CompareAndSwap(false, true) {
		return nil
	}
	defer c.running.Store(false)

	for c.running.Load() {
		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
	return nil
}

// Stop asks a concurrent Run to exit after the step in flight.
func (c *CPU) Stop() {
	c.running.Store(false)
}

// Status is a point-in-time copy of the externally visible CPU state.
type Status struct {
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	PC     uint16
	P      uint8
	Cycles uint64

	Running bool
	Halted  bool
}

func (s Status) String() string {
	return fmt.Sprintf("A:$%02X X:$%02X Y:$%02X SP:$%02X PC:$%04X P:$%02X(%s) Cycles:%d Running:%t Halted:%t",
		s.A, s.X, s.Y, s.SP, s.PC, s.P, FlagsFromByte(s.P), s.Cycles, s.Running, s.Halted)
}

// Status returns a snapshot of registers, flags, cycles and run state.
func (c *CPU) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Status{
		A:       c.a,
		X:       c.x,
		Y:       c.y,
		SP:      c.sp,
		PC:      c.pc,
		P:       c.flags.Byte(),
		Cycles:  c.cycles,
		Running: c.running.Load(),
		Halted:  c.halted,
	}
}
