//go:build !tinygo

package attiny861

import (
	"github.com/d2r2/go-logger"
)

var lg = logger.NewPackageLogger("attiny861", logger.InfoLevel)

type regKind uint8

const (
	regDDR regKind = iota
	regPORT
	regPIN
)

var regNames = [2][3]string{
	{"DDRA", "PORTA", "PINA"},
	{"DDRB", "PORTB", "PINB"},
}

// simGroup is the state of one simulated register group plus what the
// outside world drives onto its pins.
type simGroup struct {
	DDR    uint8
	PORT   uint8
	Ext    uint8 // externally driven levels
	Driven uint8 // pins with an external driver attached
}

// levels computes the PINx value: outputs read back PORTx, driven inputs
// read the external level and undriven inputs follow the pull-up.
func (g *simGroup) levels() uint8 {
	out := g.PORT & g.DDR
	in := (g.Driven & g.Ext) | (^g.Driven & g.PORT)

	return out | in&^g.DDR
}

// Simulator models the port registers of the chip in memory. It is meant
// for host side tests and tooling and is not safe for concurrent use.
type Simulator struct {
	Groups [2]simGroup
	trace  bool
	dev    *Device
}

type simRegister struct {
	sim   *Simulator
	group int
	kind  regKind
}

// NewSimulator returns a simulator in the power-on state: all pins
// floating inputs with nothing attached.
func NewSimulator() *Simulator {
	s := &Simulator{}

	port := func(g int) Port {
		return Port{
			DDR:  &simRegister{sim: s, group: g, kind: regDDR},
			PORT: &simRegister{sim: s, group: g, kind: regPORT},
			PIN:  &simRegister{sim: s, group: g, kind: regPIN},
		}
	}
	s.dev = New(port(0), port(1))

	return s
}

// Device returns the Device wired to the simulated registers
func (s *Simulator) Device() *Device {
	return s.dev
}

// SetTrace enables logging of every register write at debug level
func (s *Simulator) SetTrace(enabled bool) {
	s.trace = enabled
	level := logger.InfoLevel
	if enabled {
		level = logger.DebugLevel
	}
	_ = logger.ChangePackageLogLevel("attiny861", level)
}

// Drive attaches an external driver to pin forcing it to level.
// The level is only visible while the pin is an input.
func (s *Simulator) Drive(pin Pin, level PinLevel) {
	g := &s.Groups[groupForPin(pin)]
	bit := bitForPin(pin)

	g.Driven = bitSet(g.Driven, bit)
	g.Ext = bitWrite(g.Ext, bit, uint8(level))
}

// Release detaches the external driver from pin
func (s *Simulator) Release(pin Pin) {
	g := &s.Groups[groupForPin(pin)]
	bit := bitForPin(pin)

	g.Driven = bitClear(g.Driven, bit)
	g.Ext = bitClear(g.Ext, bit)
}

// Registers returns a snapshot of the direction, output and input
// registers of the specified group
func (s *Simulator) Registers(n DevicePort) (ddr, port, pin uint8) {
	g := &s.Groups[n&1]
	return g.DDR, g.PORT, g.levels()
}

func (r *simRegister) g() *simGroup {
	return &r.sim.Groups[r.group]
}

func (r *simRegister) Get() uint8 {
	g := r.g()
	switch r.kind {
	case regDDR:
		return g.DDR
	case regPORT:
		return g.PORT
	}

	return g.levels()
}

func (r *simRegister) Set(value uint8) {
	g := r.g()
	switch r.kind {
	case regDDR:
		g.DDR = value
	case regPORT:
		g.PORT = value
	case regPIN:
		// ones written to PINx toggle PORTx
		g.PORT ^= value
	}

	if r.sim.trace {
		lg.Debugf("%s <- 0x%02X", regNames[r.group][r.kind], value)
	}
}

// SetBits and ClearBits are a load followed by a store, like
// volatile.Register8. On PINx the store writes back every pin that reads
// high, toggling those too.
func (r *simRegister) SetBits(mask uint8) {
	r.Set(r.Get() | mask)
}

func (r *simRegister) ClearBits(mask uint8) {
	r.Set(r.Get() &^ mask)
}
