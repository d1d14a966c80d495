package attiny861

import (
	"testing"
)

func TestSimulatorPowerOn(t *testing.T) {
	sim := NewSimulator()

	for _, n := range []DevicePort{PORTA, PORTB} {
		ddr, port, pin := sim.Registers(n)
		if ddr != 0 || port != 0 || pin != 0 {
			t.Errorf("group %d not in power-on state: %02X %02X %02X", n, ddr, port, pin)
		}
	}
}

func TestSimulatorPINWrites(t *testing.T) {
	sim := NewSimulator()
	d := sim.Device()

	d.A.PORT.Set(0x0F)

	// writing ones to PINA toggles PORTA
	d.A.PIN.Set(0x3C)
	if _, port, _ := sim.Registers(PORTA); port != 0x33 {
		t.Errorf("PORTA = 0x%02X, expected 0x33", port)
	}

	// clearing every bit of PINA stores zero, nothing changes
	d.A.PIN.ClearBits(0xFF)
	if _, port, _ := sim.Registers(PORTA); port != 0x33 {
		t.Errorf("PORTA = 0x%02X, expected 0x33", port)
	}
}

func TestSimulatorDriveMixedGroup(t *testing.T) {
	sim := NewSimulator()
	d := sim.Device()

	d.PinMode(D0, OUTPUT)
	d.DigitalWrite(D0, HIGH)
	d.PinMode(D1, INPUT_PULLUP)
	d.PinMode(D2, INPUT)
	sim.Drive(D2, HIGH)
	sim.Drive(D3, LOW)

	if v := d.ReadPort(PORTA); v != 0x07 {
		t.Errorf("PINA = 0x%02X, expected 0x07", v)
	}
}

func TestSimulatorTrace(t *testing.T) {
	sim := NewSimulator()
	sim.SetTrace(true)
	defer sim.SetTrace(false)

	sim.Device().PinMode(D9, OUTPUT)
	sim.Device().Toggle(D9)

	if sim.Device().DigitalRead(D9) != 1 {
		t.Error("D9 should read 1 with tracing enabled")
	}
}

func TestSimulatorPINSetBitsWritesBackLevels(t *testing.T) {
	sim := NewSimulator()
	d := sim.Device()

	d.B.DDR.Set(0xFF)
	d.B.PORT.Set(0x04)

	// load/store on PINB stores 0x06: bit 1 toggles and so does bit 2
	d.B.PIN.SetBits(0x02)
	if _, port, _ := sim.Registers(PORTB); port != 0x02 {
		t.Errorf("PORTB = 0x%02X, expected 0x02", port)
	}
}
