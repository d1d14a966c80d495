package attiny861

import (
	"math/bits"
	"testing"
)

func TestBitmask(t *testing.T) {
	for p := 0; p < 256; p++ {
		pin := Pin(p)
		m := Bitmask(pin)

		if bits.OnesCount8(m) != 1 {
			t.Fatalf("Bitmask(%d) = 0x%02X, expected exactly one bit", pin, m)
		}
		if bits.TrailingZeros8(m) != p%8 {
			t.Errorf("Bitmask(%d) = 0x%02X, expected bit %d", pin, m, p%8)
		}
	}
}

func TestBitWrite(t *testing.T) {
	tests := []struct {
		value, bit, b, expected uint8
	}{
		{0x00, 0, 1, 0x01},
		{0x00, 7, 1, 0x80},
		{0xFF, 3, 0, 0xF7},
		{0x10, 4, 1, 0x10},
		{0x10, 4, 0, 0x00},
		{0x00, 2, 5, 0x04},
	}

	for _, tt := range tests {
		if v := bitWrite(tt.value, tt.bit, tt.b); v != tt.expected {
			t.Errorf("bitWrite(0x%02X, %d, %d) = 0x%02X, expected 0x%02X", tt.value, tt.bit, tt.b, v, tt.expected)
		}
	}
}

func TestBitRead(t *testing.T) {
	for bit := uint8(0); bit < 8; bit++ {
		if bitRead(0xFF, bit) != 1 {
			t.Errorf("bitRead(0xFF, %d) should be 1", bit)
		}
		if bitRead(^(uint8(1) << bit), bit) != 0 {
			t.Errorf("bit %d should read 0", bit)
		}
	}
}

func TestGroupForPin(t *testing.T) {
	for pin := Pin(0); pin < NumPins; pin++ {
		expected := 0
		if pin >= 8 {
			expected = 1
		}
		if g := groupForPin(pin); g != expected {
			t.Errorf("groupForPin(%d) = %d, expected %d", pin, g, expected)
		}
	}
}
