// Package avr enumerates the ATmega2560 resources a pin map can refer to:
// GPIO ports, the I/O registers behind them, timers, pin-change interrupt
// groups and interrupt vectors. Everything here is a hardware fact; wiring
// choices live in pinmap.
package avr

// Port identifies one 8-bit GPIO port. The 2560 has no port I.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
	PortJ
	PortK
	PortL

	numPorts
)

var portLetters = [numPorts]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'J', 'K', 'L'}

// Ports lists every port in register order.
func Ports() []Port {
	out := make([]Port, 0, numPorts)
	for p := PortA; p < numPorts; p++ {
		out = append(out, p)
	}
	return out
}

func (p Port) Valid() bool { return p < numPorts }

// Letter returns the datasheet letter, or '?' for an invalid port.
func (p Port) Letter() byte {
	if !p.Valid() {
		return '?'
	}
	return portLetters[p]
}

func (p Port) String() string { return "PORT" + string(p.Letter()) }

// Each port owns three consecutive registers (PINx, DDRx, PORTx) and the
// Register enumeration keeps them in that order, so all three forms are
// derived from the port and can't disagree.

// In returns the PINx input register.
func (p Port) In() Register { return regPINA + Register(p)*3 }

// DDR returns the DDRx data-direction register.
func (p Port) DDR() Register { return regPINA + Register(p)*3 + 1 }

// Out returns the PORTx output register.
func (p Port) Out() Register { return regPINA + Register(p)*3 + 2 }
