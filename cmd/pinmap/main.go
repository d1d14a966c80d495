// pinmap prints the ATtiny861 pin map, or runs pin operations on a
// simulated chip and shows the resulting port registers.
//
//	pinmap
//	pinmap -pin PB1 -mode pullup
//	pinmap -pin 3 -mode output -level high -v
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/d2r2/go-logger"
	"github.com/davecgh/go-spew/spew"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"
	attiny861 "github.com/racerxdl/go-attiny861"
)

var lg = logger.NewPackageLogger("pinmap", logger.InfoLevel)

const usage = "pinmap [-v] [-dump] [-pin PIN -mode {input|pullup|output} [-level {low|high}] [-drive {low|high}]]"

func main() {
	err := run(os.Stdout, os.Args[1:])
	if err != nil {
		lg.Errorf("%s", err)
		fmt.Fprintln(os.Stderr, "usage:", usage)
	}
	logger.FinalizeLogger()
	if err != nil {
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	flag, args := flags.New(args, "-v", "-dump")
	parm, args := parms.New(args, "-pin", "-mode", "-level", "-drive")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}

	if flag.ByName["-v"] {
		_ = logger.ChangePackageLogLevel("pinmap", logger.DebugLevel)
	}

	if len(parm.ByName["-pin"]) == 0 {
		printPinMap(w)
		return nil
	}

	pin, err := attiny861.PinByName(parm.ByName["-pin"])
	if err != nil {
		return err
	}

	sim := attiny861.NewSimulator()
	sim.SetTrace(flag.ByName["-v"])
	dev := sim.Device()

	if s := parm.ByName["-drive"]; len(s) > 0 {
		level, err := parseLevel(s)
		if err != nil {
			return err
		}
		lg.Debugf("driving %s externally to %d", attiny861.PinName(pin), level)
		sim.Drive(pin, level)
	}

	if s := parm.ByName["-mode"]; len(s) > 0 {
		mode, err := parseMode(s)
		if err != nil {
			return err
		}
		lg.Debugf("configuring %s as %s", attiny861.PinName(pin), s)
		dev.PinMode(pin, mode)
	}

	if s := parm.ByName["-level"]; len(s) > 0 {
		level, err := parseLevel(s)
		if err != nil {
			return err
		}
		lg.Debugf("writing %d to %s", level, attiny861.PinName(pin))
		dev.DigitalWrite(pin, level)
	}

	fmt.Fprintf(w, "D%d (%s) reads %d\n", pin, attiny861.PinName(pin), dev.DigitalRead(pin))
	printRegisters(w, sim)

	if flag.ByName["-dump"] {
		spew.Fdump(w, sim.Groups)
	}

	return nil
}

func parseMode(s string) (attiny861.PinMode, error) {
	switch strings.ToLower(s) {
	case "input", "in":
		return attiny861.INPUT, nil
	case "pullup", "input_pullup":
		return attiny861.INPUT_PULLUP, nil
	case "output", "out":
		return attiny861.OUTPUT, nil
	}

	return 0, fmt.Errorf("%s: invalid mode", s)
}

func parseLevel(s string) (attiny861.PinLevel, error) {
	switch strings.ToLower(s) {
	case "low", "0":
		return attiny861.LOW, nil
	case "high", "1":
		return attiny861.HIGH, nil
	}

	return 0, fmt.Errorf("%s: invalid level", s)
}

func printPinMap(w io.Writer) {
	fmt.Fprintf(w, "%-4s %-5s %-8s %-5s %s\n", "PIN", "NAME", "PHYSICAL", "GROUP", "MASK")
	for pin := attiny861.Pin(0); pin < attiny861.NumPins; pin++ {
		group := "A"
		if attiny861.PortForPin(pin) == attiny861.PORTB {
			group = "B"
		}
		fmt.Fprintf(w, "D%-3d %-5s %-8d %-5s 0x%02X\n", pin, attiny861.PinName(pin),
			attiny861.PhysicalPin(pin), group, attiny861.Bitmask(pin))
	}
}

func printRegisters(w io.Writer, sim *attiny861.Simulator) {
	for _, n := range []attiny861.DevicePort{attiny861.PORTA, attiny861.PORTB} {
		name := "A"
		if n == attiny861.PORTB {
			name = "B"
		}
		ddr, port, pin := sim.Registers(n)
		fmt.Fprintf(w, "DDR%s=%08b PORT%s=%08b PIN%s=%08b\n", name, ddr, name, port, name, pin)
	}
}
