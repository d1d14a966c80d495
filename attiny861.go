/*
   ATtiny861 fast GPIO library.
   Pin numbering follows ATTinyCore tinyX61_new:

                     +-\/-+
        (D  8) PB0  1|    |20  PA0 (D  0)
       *(D  9) PB1  2|    |19  PA1 (D  1)
        (D 10) PB2  3|    |18  PA2 (D  2) INT1
       *(D 11) PB3  4|    |17  PA3 (D  3)
               VCC  5|    |16  AGND
               GND  6|    |15  AVCC
        (D 12) PB4  7|    |14  PA4 (D  4)
       *(D 13) PB5  8|    |13  PA5 (D  5)
   INT0 (D 14) PB6  9|    |12  PA6 (D  6)
        (D 15) PB7 10|    |11  PA7 (D  7)
                     +----+
*/
package attiny861

type Pin uint8
type PinMode uint8
type PinLevel uint8
type DevicePort uint8

const (
	INPUT        PinMode = 0
	OUTPUT       PinMode = 1
	INPUT_PULLUP PinMode = 2
)

const (
	LOW  PinLevel = 0
	HIGH PinLevel = 1
)

const (
	PORTA DevicePort = 0
	PORTB DevicePort = 1
)

const (
	D0 Pin = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	D10
	D11
	D12
	D13
	D14
	D15
)

// NumPins is the number of logical GPIO pins
const NumPins = 16

// Valid reports whether pin is inside the 0-15 range.
func (p Pin) Valid() bool {
	return p < NumPins
}

// Values written by Reset, indexed by group
var (
	defaultDDR  = [2]uint8{0x00, 0x00}
	defaultPORT = [2]uint8{0x00, 0x00}
)

// SetDefaultPinMode sets the pinMode on Reset
func SetDefaultPinMode(mode PinMode) {
	switch mode {
	case INPUT:
		defaultDDR = [2]uint8{0x00, 0x00}
		defaultPORT = [2]uint8{0x00, 0x00}
	case INPUT_PULLUP:
		defaultDDR = [2]uint8{0x00, 0x00}
		defaultPORT = [2]uint8{0xFF, 0xFF}
	default:
		defaultDDR = [2]uint8{0xFF, 0xFF}
	}
}

// SetDefaultValues sets the output register values written on reset
func SetDefaultValues(portA, portB uint8) {
	defaultPORT = [2]uint8{portA, portB}
}

// Port is one register group: the direction, output and input registers
// serving eight physical pins.
type Port struct {
	DDR  Register
	PORT Register
	PIN  Register
}

// Device is the pair of register groups of the chip. Group A serves
// pins 0-7, group B serves pins 8-15.
type Device struct {
	A Port
	B Port
}

// New returns a Device over the given register groups.
func New(a, b Port) *Device {
	return &Device{A: a, B: b}
}

func (d *Device) port(n DevicePort) *Port {
	if n == PORTB {
		return &d.B
	}

	return &d.A
}

// DDR returns the data direction register governing pin
func (d *Device) DDR(pin Pin) Register {
	return regForPin(pin, d.A.DDR, d.B.DDR)
}

// PORT returns the output register governing pin
func (d *Device) PORT(pin Pin) Register {
	return regForPin(pin, d.A.PORT, d.B.PORT)
}

// PIN returns the input register governing pin
func (d *Device) PIN(pin Pin) Register {
	return regForPin(pin, d.A.PIN, d.B.PIN)
}

// PinMode sets the specified pin (0-15 range) mode.
// Each bit update is a separate load and store of the register, not
// sbi/cbi. An interrupt handler touching the same register between the
// two can have its change overwritten.
func (d *Device) PinMode(pin Pin, mode PinMode) {
	ddr := d.DDR(pin)
	mask := Bitmask(pin)

	switch mode {
	case INPUT:
		ddr.ClearBits(mask)
		d.PORT(pin).ClearBits(mask)
	case INPUT_PULLUP:
		ddr.ClearBits(mask)
		d.PORT(pin).SetBits(mask)
	default:
		ddr.SetBits(mask)
	}
}

// DigitalWrite sets pin (0-15 range) to specified level
func (d *Device) DigitalWrite(pin Pin, level PinLevel) {
	if level == LOW {
		d.PORT(pin).ClearBits(Bitmask(pin))
		return
	}

	d.PORT(pin).SetBits(Bitmask(pin))
}

// DigitalRead returns 1 if the specified pin (0-15 range) reads high, 0 otherwise
func (d *Device) DigitalRead(pin Pin) uint8 {
	return bitRead(d.PIN(pin).Get(), bitForPin(pin))
}

// DigitalReadLevel is DigitalRead returning a PinLevel
func (d *Device) DigitalReadLevel(pin Pin) PinLevel {
	return PinLevel(d.DigitalRead(pin))
}

// Toggle inverts the output register bit of pin. Writing a one to PINx
// flips PORTx on this chip, so only the pin's mask is stored.
func (d *Device) Toggle(pin Pin) {
	d.PIN(pin).Set(Bitmask(pin))
}

// ReadPort reads the input register of the specified group
func (d *Device) ReadPort(n DevicePort) uint8 {
	return d.port(n).PIN.Get()
}

// WritePort sets the output register of the specified group
func (d *Device) WritePort(n DevicePort, value uint8) {
	d.port(n).PORT.Set(value)
}

// ReadPortAB reads both groups and returns a 16 bit value containing B in
// the high byte and A in the low byte
func (d *Device) ReadPortAB() uint16 {
	return uint16(d.B.PIN.Get())<<8 | uint16(d.A.PIN.Get())
}

// WritePortAB sets both output registers, A from the low byte
func (d *Device) WritePortAB(value uint16) {
	d.A.PORT.Set(uint8(value & 0xFF))
	d.B.PORT.Set(uint8(value >> 8 & 0xFF))
}

// Reset writes the default direction and output values to both groups.
// With the power-on defaults every pin ends up a floating input.
func (d *Device) Reset() {
	for i, p := range [2]*Port{&d.A, &d.B} {
		p.DDR.Set(defaultDDR[i])
		p.PORT.Set(defaultPORT[i])
	}
}
