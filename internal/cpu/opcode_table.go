package cpu

type instr struct {
	name   mnemonic
	mode   addrMode
	cycles uint8
}

// opcodeTable maps every official opcode to its descriptor. Unmapped
// opcodes keep the zero value and make Step fail with
// UnknownOpcodeError.
var opcodeTable = [0x100]instr{
	0x00: {opBRK, addrModeIMP, 7},
	0x01: {opORA, addrModeINDX, 6},
	0x05: {opORA, addrModeZP, 3},
	0x06: {opASL, addrModeZP, 5},
	0x08: {opPHP, addrModeIMP, 3},
	0x09: {opORA, addrModeIMM, 2},
	0x0a: {opASL, addrModeACC, 2},
	0x0d: {opORA, addrModeABS, 4},
	0x0e: {opASL, addrModeABS, 6},
	0x10: {opBPL, addrModeREL, 2},
	0x11: {opORA, addrModeINDY, 5},
	0x15: {opORA, addrModeZPX, 4},
	0x16: {opASL, addrModeZPX, 6},
	0x18: {opCLC, addrModeIMP, 2},
	0x19: {opORA, addrModeABSY, 4},
	0x1d: {opORA, addrModeABSX, 4},
	0x1e: {opASL, addrModeABSX, 7},
	0x20: {opJSR, addrModeABS, 6},
	0x21: {opAND, addrModeINDX, 6},
	0x24: {opBIT, addrModeZP, 3},
	0x25: {opAND, addrModeZP, 3},
	0x26: {opROL, addrModeZP, 5},
	0x28: {opPLP, addrModeIMP, 4},
	0x29: {opAND, addrModeIMM, 2},
	0x2a: {opROL, addrModeACC, 2},
	0x2c: {opBIT, addrModeABS, 4},
	0x2d: {opAND, addrModeABS, 4},
	0x2e: {opROL, addrModeABS, 6},
	0x30: {opBMI, addrModeREL, 2},
	0x31: {opAND, addrModeINDY, 5},
	0x35: {opAND, addrModeZPX, 4},
	0x36: {opROL, addrModeZPX, 6},
	0x38: {opSEC, addrModeIMP, 2},
	0x39: {opAND, addrModeABSY, 4},
	0x3d: {opAND, addrModeABSX, 4},
	0x3e: {opROL, addrModeABSX, 7},
	0x40: {opRTI, addrModeIMP, 6},
	0x41: {opEOR, addrModeINDX, 6},
	0x45: {opEOR, addrModeZP, 3},
	0x46: {opLSR, addrModeZP, 5},
	0x48: {opPHA, addrModeIMP, 3},
	0x49: {opEOR, addrModeIMM, 2},
	0x4a: {opLSR, addrModeACC, 2},
	0x4c: {opJMP, addrModeABS, 3},
	0x4d: {opEOR, addrModeABS, 4},
	0x4e: {opLSR, addrModeABS, 6},
	0x50: {opBVC, addrModeREL, 2},
	0x51: {opEOR, addrModeINDY, 5},
	0x55: {opEOR, addrModeZPX, 4},
	0x56: {opLSR, addrModeZPX, 6},
	0x58: {opCLI, addrModeIMP, 2},
	0x59: {opEOR, addrModeABSY, 4},
	0x5d: {opEOR, addrModeABSX, 4},
	0x5e: {opLSR, addrModeABSX, 7},
	0x60: {opRTS, addrModeIMP, 6},
	0x61: {opADC, addrModeINDX, 6},
	0x65: {opADC, addrModeZP, 3},
	0x66: {opROR, addrModeZP, 5},
	0x68: {opPLA, addrModeIMP, 4},
	0x69: {opADC, addrModeIMM, 2},
	0x6a: {opROR, addrModeACC, 2},
	0x6c: {opJMP, addrModeIND, 5},
	0x6d: {opADC, addrModeABS, 4},
	0x6e: {opROR, addrModeABS, 6},
	0x70: {opBVS, addrModeREL, 2},
	0x71: {opADC, addrModeINDY, 5},
	0x75: {opADC, addrModeZPX, 4},
	0x76: {opROR, addrModeZPX, 6},
	0x78: {opSEI, addrModeIMP, 2},
	0x79: {opADC, addrModeABSY, 4},
	0x7d: {opADC, addrModeABSX, 4},
	0x7e: {opROR, addrModeABSX, 7},
	0x81: {opSTA, addrModeINDX, 6},
	0x84: {opSTY, addrModeZP, 3},
	0x85: {opSTA, addrModeZP, 3},
	0x86: {opSTX, addrModeZP, 3},
	0x88: {opDEY, addrModeIMP, 2},
	0x8a: {opTXA, addrModeIMP, 2},
	0x8c: {opSTY, addrModeABS, 4},
	0x8d: {opSTA, addrModeABS, 4},
	0x8e: {opSTX, addrModeABS, 4},
	0x90: {opBCC, addrModeREL, 2},
	0x91: {opSTA, addrModeINDY, 6},
	0x94: {opSTY, addrModeZPX, 4},
	0x95: {opSTA, addrModeZPX, 4},
	0x96: {opSTX, addrModeZPY, 4},
	0x98: {opTYA, addrModeIMP, 2},
	0x99: {opSTA, addrModeABSY, 5},
	0x9a: {opTXS, addrModeIMP, 2},
	0x9d: {opSTA, addrModeABSX, 5},
	0xa0: {opLDY, addrModeIMM, 2},
	0xa1: {opLDA, addrModeINDX, 6},
	0xa2: {opLDX, addrModeIMM, 2},
	0xa4: {opLDY, addrModeZP, 3},
	0xa5: {opLDA, addrModeZP, 3},
	0xa6: {opLDX, addrModeZP, 3},
	0xa8: {opTAY, addrModeIMP, 2},
	0xa9: {opLDA, addrModeIMM, 2},
	0xaa: {opTAX, addrModeIMP, 2},
	0xac: {opLDY, addrModeABS, 4},
	0xad: {opLDA, addrModeABS, 4},
	0xae: {opLDX, addrModeABS, 4},
	0xb0: {opBCS, addrModeREL, 2},
	0xb1: {opLDA, addrModeINDY, 5},
	0xb4: {opLDY, addrModeZPX, 4},
	0xb5: {opLDA, addrModeZPX, 4},
	0xb6: {opLDX, addrModeZPY, 4},
	0xb8: {opCLV, addrModeIMP, 2},
	0xb9: {opLDA, addrModeABSY, 4},
	0xba: {opTSX, addrModeIMP, 2},
	0xbc: {opLDY, addrModeABSX, 4},
	0xbd: {opLDA, addrModeABSX, 4},
	0xbe: {opLDX, addrModeABSY, 4},
	0xc0: {opCPY, addrModeIMM, 2},
	0xc1: {opCMP, addrModeINDX, 6},
	0xc4: {opCPY, addrModeZP, 3},
	0xc5: {opCMP, addrModeZP, 3},
	0xc6: {opDEC, addrModeZP, 5},
	0xc8: {opINY, addrModeIMP, 2},
	0xc9: {opCMP, addrModeIMM, 2},
	0xca: {opDEX, addrModeIMP, 2},
	0xcc: {opCPY, addrModeABS, 4},
	0xcd: {opCMP, addrModeABS, 4},
	0xce: {opDEC, addrModeABS, 6},
	0xd0: {opBNE, addrModeREL, 2},
	0xd1: {opCMP, addrModeINDY, 5},
	0xd5: {opCMP, addrModeZPX, 4},
	0xd6: {opDEC, addrModeZPX, 6},
	0xd8: {opCLD, addrModeIMP, 2},
	0xd9: {opCMP, addrModeABSY, 4},
	0xdd: {opCMP, addrModeABSX, 4},
	0xde: {opDEC, addrModeABSX, 7},
	0xe0: {opCPX, addrModeIMM, 2},
	0xe1: {opSBC, addrModeINDX, 6},
	0xe4: {opCPX, addrModeZP, 3},
	0xe5: {opSBC, addrModeZP, 3},
	0xe6: {opINC, addrModeZP, 5},
	0xe8: {opINX, addrModeIMP, 2},
	0xe9: {opSBC, addrModeIMM, 2},
	0xea: {opNOP, addrModeIMP, 2},
	0xec: {opCPX, addrModeABS, 4},
	0xed: {opSBC, addrModeABS, 4},
	0xee: {opINC, addrModeABS, 6},
	0xf0: {opBEQ, addrModeREL, 2},
	0xf1: {opSBC, addrModeINDY, 5},
	0xf5: {opSBC, addrModeZPX, 4},
	0xf6: {opINC, addrModeZPX, 6},
	0xf8: {opSED, addrModeIMP, 2},
	0xf9: {opSBC, addrModeABSY, 4},
	0xfd: {opSBC, addrModeABSX, 4},
	0xfe: {opINC, addrModeABSX, 7},
}

func opcodeIsSupported(opcode uint8) bool {
	return opcodeTable[opcode].name != opUnknown
}
