package attiny861

import (
	"fmt"
	"strconv"
	"strings"
)

var pinNames = [NumPins]string{
	"PA0", "PA1", "PA2", "PA3", "PA4", "PA5", "PA6", "PA7",
	"PB0", "PB1", "PB2", "PB3", "PB4", "PB5", "PB6", "PB7",
}

// Package pin of each logical pin on the 20 pin DIP/SOIC
var physicalPins = [NumPins]uint8{
	20, 19, 18, 17, 14, 13, 12, 11,
	1, 2, 3, 4, 7, 8, 9, 10,
}

// PinName returns the port bit name of pin, e.g. "PB1". Returns an empty
// string for pins outside of the 0-15 range.
func PinName(pin Pin) string {
	if !pin.Valid() {
		return ""
	}

	return pinNames[pin]
}

// PhysicalPin returns the package pin number of pin, 0 if out of range
func PhysicalPin(pin Pin) uint8 {
	if !pin.Valid() {
		return 0
	}

	return physicalPins[pin]
}

// PortForPin returns the register group serving pin
func PortForPin(pin Pin) DevicePort {
	return DevicePort(groupForPin(pin))
}

// PinByName parses a port bit name ("PA3"), an Arduino name ("D11") or a
// plain logical number ("11").
func PinByName(name string) (Pin, error) {
	s := strings.ToUpper(strings.TrimSpace(name))

	if len(s) == 3 && s[0] == 'P' && (s[1] == 'A' || s[1] == 'B') && s[2] >= '0' && s[2] <= '7' {
		pin := Pin(s[2] - '0')
		if s[1] == 'B' {
			pin += 8
		}
		return pin, nil
	}

	s = strings.TrimPrefix(s, "D")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid pin name %q", name)
	}

	if n < 0 || n >= NumPins {
		return 0, fmt.Errorf("pin %d out of range (0-%d)", n, NumPins-1)
	}

	return Pin(n), nil
}
