package attiny861

// bitForPin returns the bit position of pin inside its register group (pin % 8)
func bitForPin(pin Pin) uint8 {
	return uint8(pin) & 0x07
}

// groupForPin returns the register group index: 0 (A) for pins 0-7, 1 (B) otherwise.
// There is no upper bound check, pins above 15 land in group B.
func groupForPin(pin Pin) int {
	if pin < 8 {
		return 0
	}

	return 1
}

// regForPin returns the group A or group B register for specified pin
func regForPin(pin Pin, portA, portB Register) Register {
	if groupForPin(pin) == 0 {
		return portA
	}

	return portB
}

// Bitmask returns the single bit mask selecting pin inside its 8 bit register.
// The mask wraps modulo 8 for pins outside of the 0-15 range.
func Bitmask(pin Pin) uint8 {
	return 1 << bitForPin(pin)
}

// bitRead is 1 when the given bit of v is set, 0 otherwise
func bitRead(v, bit uint8) uint8 {
	return (v >> bit) & 1
}

func bitSet(v, bit uint8) uint8 {
	return v | 1<<bit
}

func bitClear(v, bit uint8) uint8 {
	return v &^ (1 << bit)
}

// bitWrite returns v with the given bit forced to 1 when on is non zero
func bitWrite(v, bit, on uint8) uint8 {
	if on == 0 {
		return bitClear(v, bit)
	}

	return bitSet(v, bit)
}
