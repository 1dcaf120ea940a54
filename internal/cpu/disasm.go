package cpu

import "fmt"

// Disassemble renders the instruction at addr in the form
// "$0600: LDA #$05 {IMM}" and reports how many bytes it occupies, so
// callers can walk a region instruction by instruction.
func Disassemble(mem ReadWriter, addr uint16) (string, int) {
	opcode := mem.Read8(addr)
	in := opcodeTable[opcode]
	if in.name == opUnknown {
		return fmt.Sprintf("$%04X: ???", addr), 1
	}

	operand8 := func() uint8 {
		return mem.Read8(addr + 1)
	}
	operand16 := func() uint16 {
		return uint16(mem.Read8(addr+1)) | uint16(mem.Read8(addr+2))<<8
	}

	var text string
	switch in.mode {
	case addrModeIMM:
		text = fmt.Sprintf("$%04X: %s #$%02X {%s}", addr, in.name, operand8(), in.mode)
	case addrModeZP:
		text = fmt.Sprintf("$%04X: %s $%02X {%s}", addr, in.name, operand8(), in.mode)
	case addrModeZPX:
		text = fmt.Sprintf("$%04X: %s $%02X,X {%s}", addr, in.name, operand8(), in.mode)
	case addrModeZPY:
		text = fmt.Sprintf("$%04X: %s $%02X,Y {%s}", addr, in.name, operand8(), in.mode)
	case addrModeABS:
		text = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, in.name, operand16(), in.mode)
	case addrModeABSX:
		text = fmt.Sprintf("$%04X: %s $%04X,X {%s}", addr, in.name, operand16(), in.mode)
	case addrModeABSY:
		text = fmt.Sprintf("$%04X: %s $%04X,Y {%s}", addr, in.name, operand16(), in.mode)
	case addrModeIND:
		text = fmt.Sprintf("$%04X: %s ($%04X) {%s}", addr, in.name, operand16(), in.mode)
	case addrModeINDX:
		text = fmt.Sprintf("$%04X: %s ($%02X,X) {%s}", addr, in.name, operand8(), in.mode)
	case addrModeINDY:
		text = fmt.Sprintf("$%04X: %s ($%02X),Y {%s}", addr, in.name, operand8(), in.mode)
	case addrModeREL:
		target := uint16(operand8())
		if target&0x80 > 0 {
			target |= 0xff00
		}
		target += addr + 2
		text = fmt.Sprintf("$%04X: %s $%04X {%s}", addr, in.name, target, in.mode)
	case addrModeACC:
		text = fmt.Sprintf("$%04X: %s A {%s}", addr, in.name, in.mode)
	case addrModeIMP:
		text = fmt.Sprintf("$%04X: %s {%s}", addr, in.name, in.mode)
	}

	return text, int(in.mode.length())
}
