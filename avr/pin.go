package avr

import "strconv"

// Pin is one physical I/O line: a port and a bit index within it, packed
// as port*8+bit so every pin is a compile-time constant.
type Pin uint8

// NoPin marks an unwired role.
const NoPin Pin = 0xff

// PinOf builds a pin from its parts. Bits above 7 yield NoPin.
func PinOf(p Port, bit uint8) Pin {
	if !p.Valid() || bit > 7 {
		return NoPin
	}
	return Pin(uint8(p)*8 + bit)
}

func (p Pin) Valid() bool { return p < Pin(numPorts)*8 }

func (p Pin) Port() Port { return Port(p >> 3) }

func (p Pin) Bit() uint8 { return uint8(p) & 7 }

// Mask is the single-bit mask for this pin within its port.
func (p Pin) Mask() uint8 { return 1 << p.Bit() }

func (p Pin) DDR() Register { return p.Port().DDR() }
func (p Pin) Out() Register { return p.Port().Out() }
func (p Pin) In() Register  { return p.Port().In() }

// String gives the datasheet name, e.g. "PK1".
func (p Pin) String() string {
	if p == NoPin {
		return "NoPin"
	}
	if !p.Valid() {
		return "Pin(" + strconv.Itoa(int(p)) + ")"
	}
	return "P" + string(p.Port().Letter()) + strconv.Itoa(int(p.Bit()))
}

const (
	PA0 Pin = iota + Pin(PortA)*8
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
)

const (
	PB0 Pin = iota + Pin(PortB)*8
	PB1
	PB2
	PB3
	PB4
	PB5
	PB6
	PB7
)

const (
	PC0 Pin = iota + Pin(PortC)*8
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
)

const (
	PD0 Pin = iota + Pin(PortD)*8
	PD1
	PD2
	PD3
	PD4
	PD5
	PD6
	PD7
)

const (
	PE0 Pin = iota + Pin(PortE)*8
	PE1
	PE2
	PE3
	PE4
	PE5
	PE6
	PE7
)

const (
	PF0 Pin = iota + Pin(PortF)*8
	PF1
	PF2
	PF3
	PF4
	PF5
	PF6
	PF7
)

const (
	PG0 Pin = iota + Pin(PortG)*8
	PG1
	PG2
	PG3
	PG4
	PG5
)

const (
	PH0 Pin = iota + Pin(PortH)*8
	PH1
	PH2
	PH3
	PH4
	PH5
	PH6
	PH7
)

const (
	PJ0 Pin = iota + Pin(PortJ)*8
	PJ1
	PJ2
	PJ3
	PJ4
	PJ5
	PJ6
	PJ7
)

const (
	PK0 Pin = iota + Pin(PortK)*8
	PK1
	PK2
	PK3
	PK4
	PK5
	PK6
	PK7
)

const (
	PL0 Pin = iota + Pin(PortL)*8
	PL1
	PL2
	PL3
	PL4
	PL5
	PL6
	PL7
)
