package cpu

type mnemonic uint8

const (
	opUnknown mnemonic = iota
	opADC
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opPHA
	opPHP
	opPLA
	opPLP
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA
)

var mnemonicNames = [...]string{
	opADC: "ADC", opAND: "AND", opASL: "ASL", opBCC: "BCC", opBCS: "BCS",
	opBEQ: "BEQ", opBIT: "BIT", opBMI: "BMI", opBNE: "BNE", opBPL: "BPL",
	opBRK: "BRK", opBVC: "BVC", opBVS: "BVS", opCLC: "CLC", opCLD: "CLD",
	opCLI: "CLI", opCLV: "CLV", opCMP: "CMP", opCPX: "CPX", opCPY: "CPY",
	opDEC: "DEC", opDEX: "DEX", opDEY: "DEY", opEOR: "EOR", opINC: "INC",
	opINX: "INX", opINY: "INY", opJMP: "JMP", opJSR: "JSR", opLDA: "LDA",
	opLDX: "LDX", opLDY: "LDY", opLSR: "LSR", opNOP: "NOP", opORA: "ORA",
	opPHA: "PHA", opPHP: "PHP", opPLA: "PLA", opPLP: "PLP", opROL: "ROL",
	opROR: "ROR", opRTI: "RTI", opRTS: "RTS", opSBC: "SBC", opSEC: "SEC",
	opSED: "SED", opSEI: "SEI", opSTA: "STA", opSTX: "STX", opSTY: "STY",
	opTAX: "TAX", opTAY: "TAY", opTSX: "TSX", opTXA: "TXA", opTXS: "TXS",
	opTYA: "TYA",
}

func (m mnemonic) String() string {
	if int(m) < len(mnemonicNames) && mnemonicNames[m] != "" {
		return mnemonicNames[m]
	}
	return "???"
}

// execute runs one decoded instruction against the operand scratch
// filled in by fetch. The bool result reports that the instruction
// halted the CPU.
func (c *CPU) execute(name mnemonic) (bool, error) {
	switch name {
	case opADC:
		c.adc()
	case opAND:
		c.and()
	case opASL:
		c.asl()
	case opBCC:
		c.bcc()
	case opBCS:
		c.bcs()
	case opBEQ:
		c.beq()
	case opBIT:
		c.bit()
	case opBMI:
		c.bmi()
	case opBNE:
		c.bne()
	case opBPL:
		c.bpl()
	case opBRK:
		c.brk()
		return true, nil
	case opBVC:
		c.bvc()
	case opBVS:
		c.bvs()
	case opCLC:
		c.clc()
	case opCLD:
		c.cld()
	case opCLI:
		c.cli()
	case opCLV:
		c.clv()
	case opCMP:
		c.cmp()
	case opCPX:
		c.cpx()
	case opCPY:
		c.cpy()
	case opDEC:
		c.dec()
	case opDEX:
		c.dex()
	case opDEY:
		c.dey()
	case opEOR:
		c.eor()
	case opINC:
		c.inc()
	case opINX:
		c.inx()
	case opINY:
		c.iny()
	case opJMP:
		c.jmp()
	case opJSR:
		c.jsr()
	case opLDA:
		c.lda()
	case opLDX:
		c.ldx()
	case opLDY:
		c.ldy()
	case opLSR:
		c.lsr()
	case opNOP:
	case opORA:
		c.ora()
	case opPHA:
		c.pha()
	case opPHP:
		c.php()
	case opPLA:
		c.pla()
	case opPLP:
		c.plp()
	case opROL:
		c.rol()
	case opROR:
		c.ror()
	case opRTI:
		c.rti()
	case opRTS:
		c.rts()
	case opSBC:
		c.sbc()
	case opSEC:
		c.sec()
	case opSED:
		c.sed()
	case opSEI:
		c.sei()
	case opSTA:
		c.sta()
	case opSTX:
		c.stx()
	case opSTY:
		c.sty()
	case opTAX:
		c.tax()
	case opTAY:
		c.tay()
	case opTSX:
		c.tsx()
	case opTXA:
		c.txa()
	case opTXS:
		c.txs()
	case opTYA:
		c.tya()
	default:
		return false, UnknownInstructionError{Mnemonic: name.String()}
	}
	return false, nil
}

func (c *CPU) adc() {
	r := int(c.a) + int(c.operandValue)
	if c.flags.Carry {
		r++
	}
	r8 := uint8(r)
	c.flags.Carry = r > 0xff
	c.flags.Overflow = (c.a^r8)&(c.operandValue^r8)&0x80 > 0
	c.flags.setNZ(r8)
	c.a = r8
}

func (c *CPU) and() {
	c.a &= c.operandValue
	c.flags.setNZ(c.a)
}

func (c *CPU) asl() {
	c.flags.Carry = c.operandValue&0x80 > 0
	r := c.operandValue << 1
	c.flags.setNZ(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

// jmpIf takes the branch to the resolved target. Taken branches cost
// no extra cycle: only the indexed read modes report one.
func (c *CPU) jmpIf(condition bool) {
	if condition {
		c.pc = c.operandAddr
	}
}

func (c *CPU) bcc() {
	c.jmpIf(!c.flags.Carry)
}

func (c *CPU) bcs() {
	c.jmpIf(c.flags.Carry)
}

func (c *CPU) beq() {
	c.jmpIf(c.flags.Zero)
}

func (c *CPU) bit() {
	c.flags.Zero = c.a&c.operandValue == 0
	c.flags.Negative = c.operandValue&flagN > 0
	c.flags.Overflow = c.operandValue&flagV > 0
}

func (c *CPU) bmi() {
	c.jmpIf(c.flags.Negative)
}

func (c *CPU) bne() {
	c.jmpIf(!c.flags.Zero)
}

func (c *CPU) bpl() {
	c.jmpIf(!c.flags.Negative)
}

// brk pushes the address of the byte after the BRK operand slot, then
// the flags with the break bit set, and vectors through IRQVector.
// pc already points one past the opcode when this runs.
func (c *CPU) brk() {
	c.stackPush16(c.pc + 1)
	c.stackPush8(c.flags.byteWithBreak())
	c.flags.InterruptDisable = true
	c.pc = c.read16(IRQVector)
}

func (c *CPU) bvc() {
	c.jmpIf(!c.flags.Overflow)
}

func (c *CPU) bvs() {
	c.jmpIf(c.flags.Overflow)
}

func (c *CPU) clc() {
	c.flags.Carry = false
}

func (c *CPU) cld() {
	c.flags.Decimal = false
}

func (c *CPU) cli() {
	c.flags.InterruptDisable = false
}

func (c *CPU) clv() {
	c.flags.Overflow = false
}

func (c *CPU) cmp() {
	c.flags.Carry = c.a >= c.operandValue
	c.flags.setNZ(c.a - c.operandValue)
}

func (c *CPU) cpx() {
	c.flags.Carry = c.x >= c.operandValue
	c.flags.setNZ(c.x - c.operandValue)
}

func (c *CPU) cpy() {
	c.flags.Carry = c.y >= c.operandValue
	c.flags.setNZ(c.y - c.operandValue)
}

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.flags.setNZ(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.x--
	c.flags.setNZ(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.flags.setNZ(c.y)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.flags.setNZ(c.a)
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.flags.setNZ(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) inx() {
	c.x++
	c.flags.setNZ(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.flags.setNZ(c.y)
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

// jsr pushes pc-1: pc already points past the 3-byte instruction, and
// RTS adds the 1 back on the way out.
func (c *CPU) jsr() {
	c.stackPush16(c.pc - 1)
	c.pc = c.operandAddr
}

func (c *CPU) lda() {
	c.a = c.operandValue
	c.flags.setNZ(c.a)
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.flags.setNZ(c.x)
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.flags.setNZ(c.y)
}

func (c *CPU) lsr() {
	c.flags.Carry = c.operandValue&0x1 > 0
	r := c.operandValue >> 1
	c.flags.setNZ(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.flags.setNZ(c.a)
}

func (c *CPU) pha() {
	c.stackPush8(c.a)
}

func (c *CPU) php() {
	c.stackPush8(c.flags.byteWithBreak())
}

func (c *CPU) pla() {
	c.a = c.stackPop8()
	c.flags.setNZ(c.a)
}

func (c *CPU) plp() {
	c.flags = FlagsFromByte(c.stackPop8())
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.flags.Carry {
		r |= 0x1
	}
	c.flags.Carry = c.operandValue&0x80 > 0
	c.flags.setNZ(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.flags.Carry {
		r |= 0x80
	}
	c.flags.Carry = c.operandValue&0x1 > 0
	c.flags.setNZ(r)
	if c.addrMode == addrModeACC {
		c.a = r
	} else {
		c.write8(c.operandAddr, r)
	}
}

func (c *CPU) rti() {
	c.flags = FlagsFromByte(c.stackPop8())
	c.pc = c.stackPop16()
}

func (c *CPU) rts() {
	c.pc = c.stackPop16()
	c.pc++
}

func (c *CPU) sbc() {
	r := int(c.a) - int(c.operandValue)
	if !c.flags.Carry {
		r--
	}
	r8 := uint8(r)
	c.flags.Carry = r >= 0
	c.flags.Overflow = (c.a^r8)&(c.a^c.operandValue)&0x80 > 0
	c.flags.setNZ(r8)
	c.a = r8
}

func (c *CPU) sec() {
	c.flags.Carry = true
}

func (c *CPU) sed() {
	c.flags.Decimal = true
}

func (c *CPU) sei() {
	c.flags.InterruptDisable = true
}

func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

func (c *CPU) stx() {
	c.write8(c.operandAddr, c.x)
}

func (c *CPU) sty() {
	c.write8(c.operandAddr, c.y)
}

func (c *CPU) tax() {
	c.x = c.a
	c.flags.setNZ(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.flags.setNZ(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.flags.setNZ(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.flags.setNZ(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.flags.setNZ(c.a)
}
