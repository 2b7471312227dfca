package avr

import "strconv"

// Vector is an interrupt vector number as used by avr-libc (_VECTOR(n)).
type Vector uint8

const (
	PCINT0_vect      Vector = 9
	PCINT1_vect      Vector = 10
	PCINT2_vect      Vector = 11
	USART0_RX_vect   Vector = 25
	USART0_UDRE_vect Vector = 26
	USART1_RX_vect   Vector = 36
	USART1_UDRE_vect Vector = 37
	USART2_RX_vect   Vector = 51
	USART2_UDRE_vect Vector = 52
	USART3_RX_vect   Vector = 54
	USART3_UDRE_vect Vector = 55
)

var vectorNames = map[Vector]string{
	PCINT0_vect:      "PCINT0_vect",
	PCINT1_vect:      "PCINT1_vect",
	PCINT2_vect:      "PCINT2_vect",
	USART0_RX_vect:   "USART0_RX_vect",
	USART0_UDRE_vect: "USART0_UDRE_vect",
	USART1_RX_vect:   "USART1_RX_vect",
	USART1_UDRE_vect: "USART1_UDRE_vect",
	USART2_RX_vect:   "USART2_RX_vect",
	USART2_UDRE_vect: "USART2_UDRE_vect",
	USART3_RX_vect:   "USART3_RX_vect",
	USART3_UDRE_vect: "USART3_UDRE_vect",
}

func (v Vector) String() string {
	if n, ok := vectorNames[v]; ok {
		return n
	}
	return "_VECTOR(" + strconv.Itoa(int(v)) + ")"
}

// PCIntGroup is a pin-change interrupt group. Enable and masking work per
// group (one PCIE bit in PCICR, one PCMSKn register), never per pin.
type PCIntGroup uint8

const (
	PCIntGroup0 PCIntGroup = iota // PB0..PB7
	PCIntGroup1                   // PE0, PJ0..PJ6
	PCIntGroup2                   // PK0..PK7

	numPCIntGroups
)

func (g PCIntGroup) Valid() bool { return g < numPCIntGroups }

func (g PCIntGroup) String() string { return "PCINT group " + strconv.Itoa(int(g)) }

// EnableBit is the PCIEn bit position in PCICR.
func (g PCIntGroup) EnableBit() uint8 { return uint8(g) }

func (g PCIntGroup) MaskRegister() Register { return PCMSK0 + Register(g) }

func (g PCIntGroup) Vector() Vector { return PCINT0_vect + Vector(g) }

// PCInt returns the pin-change group of p and its bit in that group's
// PCMSK register. Pins without a PCINT line report false.
func PCInt(p Pin) (PCIntGroup, uint8, bool) {
	switch {
	case p.Port() == PortB && p.Valid():
		return PCIntGroup0, p.Bit(), true
	case p == PE0:
		return PCIntGroup1, 0, true
	case p.Port() == PortJ && p.Bit() <= 6:
		return PCIntGroup1, p.Bit() + 1, true
	case p.Port() == PortK:
		return PCIntGroup2, p.Bit(), true
	}
	return 0, 0, false
}

// USART is one of the four serial units.
type USART uint8

const (
	USART0 USART = iota
	USART1
	USART2
	USART3
)

func (u USART) String() string { return "USART" + strconv.Itoa(int(u)) }

func (u USART) RXVector() Vector {
	return [...]Vector{USART0_RX_vect, USART1_RX_vect, USART2_RX_vect, USART3_RX_vect}[u&3]
}

func (u USART) UDREVector() Vector {
	return [...]Vector{USART0_UDRE_vect, USART1_UDRE_vect, USART2_UDRE_vect, USART3_UDRE_vect}[u&3]
}
