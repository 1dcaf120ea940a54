package cpu

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indexed Indirect (zp,X)
	addrModeINDY                     // Indirect Indexed (zp),Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

// length returns the whole instruction size in bytes, opcode included.
func (mode addrMode) length() uint16 {
	switch mode {
	case addrModeIMP, addrModeACC:
		return 1
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeIND:
		return 3
	}
	return 2
}

// fetch resolves the operand for the instruction at pc and stores it
// in the operand scratch fields. pc is not moved here: Step advances
// it by the instruction length afterwards, so executors that push pc
// (JSR, BRK) see it already past the operand bytes.
func (c *CPU) fetch(mode addrMode) {
	c.addrMode = mode
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false

	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc + 1
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.pc + 1))
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPX:
		// uint8 addition keeps the address inside page zero
		c.operandAddr = uint16(c.read8(c.pc+1) + c.x)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.pc+1) + c.y)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		c.operandAddr = c.read16(c.pc + 1)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSX:
		baseAddr := c.read16(c.pc + 1)
		c.operandAddr = baseAddr + uint16(c.x)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeABSY:
		baseAddr := c.read16(c.pc + 1)
		c.operandAddr = baseAddr + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeIND:
		lo := c.read16(c.pc + 1)
		hi := lo + 1
		if lo&0xff == 0xff {
			// the 6502 never carries into the pointer high byte,
			// so the target high byte comes from the start of the
			// same page
			hi = lo & 0xff00
		}
		c.operandAddr = uint16(c.read8(lo)) | uint16(c.read8(hi))<<8
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDX:
		ptr := c.read8(c.pc+1) + c.x // wraps inside page zero
		lo := uint16(c.read8(uint16(ptr)))
		hi := uint16(c.read8(uint16(ptr + 1)))
		c.operandAddr = lo | hi<<8
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDY:
		ptr := c.read8(c.pc + 1)
		baseAddr := uint16(c.read8(uint16(ptr))) | uint16(c.read8(uint16(ptr+1)))<<8
		c.operandAddr = baseAddr + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeREL:
		offset := uint16(c.read8(c.pc + 1))
		if offset&0x80 > 0 {
			offset |= 0xff00 // add leading 1 s to save the sign
		}
		c.operandAddr = c.pc + 2 + offset

	case addrModeACC:
		c.operandValue = c.a

	case addrModeIMP:
	}
}
