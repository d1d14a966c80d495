//go:build tinygo && attiny861

package attiny861

import (
	"runtime/volatile"
	"unsafe"
)

// Data space addresses of the port registers (I/O address + 0x20)
const (
	_PINB  = 0x36
	_DDRB  = 0x37
	_PORTB = 0x38
	_PINA  = 0x39
	_DDRA  = 0x3A
	_PORTA = 0x3B
)

func reg8(addr uintptr) *volatile.Register8 {
	return (*volatile.Register8)(unsafe.Pointer(addr))
}

var hardware = Device{
	A: Port{DDR: reg8(_DDRA), PORT: reg8(_PORTA), PIN: reg8(_PINA)},
	B: Port{DDR: reg8(_DDRB), PORT: reg8(_PORTB), PIN: reg8(_PINB)},
}

// Hardware returns the Device bound to the chip registers
func Hardware() *Device {
	return &hardware
}

// Configure sets the mode of pin on the chip
func Configure(pin Pin, mode PinMode) {
	hardware.PinMode(pin, mode)
}

// Write sets pin on the chip to level
func Write(pin Pin, level PinLevel) {
	hardware.DigitalWrite(pin, level)
}

// Read returns 1 if pin reads high on the chip, 0 otherwise
func Read(pin Pin) uint8 {
	return hardware.DigitalRead(pin)
}

// Toggle inverts the output level of pin on the chip
func Toggle(pin Pin) {
	hardware.Toggle(pin)
}
