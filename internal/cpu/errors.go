package cpu

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Step once BRK has halted the CPU. Only
// Reset clears the condition.
var ErrHalted = errors.New("cpu is halted")

// UnknownOpcodeError reports a fetched opcode with no table entry.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at $%04X", e.Opcode, e.PC)
}

// UnknownInstructionError reports a table entry whose mnemonic has no
// executor case.
type UnknownInstructionError struct {
	Mnemonic string
}

func (e UnknownInstructionError) Error() string {
	return fmt.Sprintf("no executor for instruction %s", e.Mnemonic)
}
