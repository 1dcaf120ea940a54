package cpu

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused, serialized as 1
	flagV                    // Overflow
	flagN                    // Negative
)

// Flags holds the seven processor status flags. Bit 5 of the status
// byte has no storage behind it: it is forced to 1 on serialization.
type Flags struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// FlagsFromByte unpacks all seven flags from a status byte.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Carry:            b&flagC > 0,
		Zero:             b&flagZ > 0,
		InterruptDisable: b&flagI > 0,
		Decimal:          b&flagD > 0,
		Break:            b&flagB > 0,
		Overflow:         b&flagV > 0,
		Negative:         b&flagN > 0,
	}
}

// Byte packs the flags into a status byte with bit 5 set.
func (f Flags) Byte() uint8 {
	b := flagU
	if f.Carry {
		b |= flagC
	}
	if f.Zero {
		b |= flagZ
	}
	if f.InterruptDisable {
		b |= flagI
	}
	if f.Decimal {
		b |= flagD
	}
	if f.Break {
		b |= flagB
	}
	if f.Overflow {
		b |= flagV
	}
	if f.Negative {
		b |= flagN
	}
	return b
}

// byteWithBreak is the stack image of the flags: PHP and BRK push the
// break bit set no matter what the stored flag says.
func (f Flags) byteWithBreak() uint8 {
	return f.Byte() | flagB
}

// setNZ sets Negative from bit 7 of value and Zero from value == 0.
func (f *Flags) setNZ(value uint8) {
	f.Zero = value == 0
	f.Negative = value&flagN > 0
}

// String renders the flags as one letter per bit, high bit first, with
// '-' for a cleared bit. The unused bit always shows as 'b'.
func (f Flags) String() string {
	buf := [8]byte{'-', '-', 'b', '-', '-', '-', '-', '-'}
	if f.Negative {
		buf[0] = 'N'
	}
	if f.Overflow {
		buf[1] = 'V'
	}
	if f.Break {
		buf[3] = 'B'
	}
	if f.Decimal {
		buf[4] = 'D'
	}
	if f.InterruptDisable {
		buf[5] = 'I'
	}
	if f.Zero {
		buf[6] = 'Z'
	}
	if f.Carry {
		buf[7] = 'C'
	}
	return string(buf[:])
}
