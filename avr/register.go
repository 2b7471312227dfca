package avr

import "strconv"

// Register is a symbolic I/O register identifier. The set is closed: only
// registers the pin map and spindle PWM can name are enumerated.
type Register uint8

const (
	regPINA Register = iota
	regDDRA
	regPORTA
	regPINB
	regDDRB
	regPORTB
	regPINC
	regDDRC
	regPORTC
	regPIND
	regDDRD
	regPORTD
	regPINE
	regDDRE
	regPORTE
	regPINF
	regDDRF
	regPORTF
	regPING
	regDDRG
	regPORTG
	regPINH
	regDDRH
	regPORTH
	regPINJ
	regDDRJ
	regPORTJ
	regPINK
	regDDRK
	regPORTK
	regPINL
	regDDRL
	regPORTL

	TCCR0A
	TCCR0B
	OCR0A
	OCR0B

	TCCR2A
	TCCR2B
	OCR2A
	OCR2B

	TCCR1A
	TCCR1B
	TCCR1C
	ICR1
	OCR1A
	OCR1B
	OCR1C

	TCCR3A
	TCCR3B
	TCCR3C
	ICR3
	OCR3A
	OCR3B
	OCR3C

	TCCR4A
	TCCR4B
	TCCR4C
	ICR4
	OCR4A
	OCR4B
	OCR4C

	TCCR5A
	TCCR5B
	TCCR5C
	ICR5
	OCR5A
	OCR5B
	OCR5C

	PCICR
	PCMSK0
	PCMSK1
	PCMSK2

	numRegisters
)

// Port registers under their datasheet names.
const (
	PINA, DDRA, PORTA = regPINA, regDDRA, regPORTA
	PINB, DDRB, PORTB = regPINB, regDDRB, regPORTB
	PINC, DDRC, PORTC = regPINC, regDDRC, regPORTC
	PIND, DDRD, PORTD = regPIND, regDDRD, regPORTD
	PINE, DDRE, PORTE = regPINE, regDDRE, regPORTE
	PINF, DDRF, PORTF = regPINF, regDDRF, regPORTF
	PING, DDRG, PORTG = regPING, regDDRG, regPORTG
	PINH, DDRH, PORTH = regPINH, regDDRH, regPORTH
	PINJ, DDRJ, PORTJ = regPINJ, regDDRJ, regPORTJ
	PINK, DDRK, PORTK = regPINK, regDDRK, regPORTK
	PINL, DDRL, PORTL = regPINL, regDDRL, regPORTL
)

type registerInfo struct {
	name string
	addr uint16 // data-space address
	wide bool   // 16-bit register pair (low byte at addr)
}

var registers = [numRegisters]registerInfo{
	TCCR0A: {"TCCR0A", 0x44, false},
	TCCR0B: {"TCCR0B", 0x45, false},
	OCR0A:  {"OCR0A", 0x47, false},
	OCR0B:  {"OCR0B", 0x48, false},

	TCCR2A: {"TCCR2A", 0xB0, false},
	TCCR2B: {"TCCR2B", 0xB1, false},
	OCR2A:  {"OCR2A", 0xB3, false},
	OCR2B:  {"OCR2B", 0xB4, false},

	TCCR1A: {"TCCR1A", 0x80, false},
	TCCR1B: {"TCCR1B", 0x81, false},
	TCCR1C: {"TCCR1C", 0x82, false},
	ICR1:   {"ICR1", 0x86, true},
	OCR1A:  {"OCR1A", 0x88, true},
	OCR1B:  {"OCR1B", 0x8A, true},
	OCR1C:  {"OCR1C", 0x8C, true},

	TCCR3A: {"TCCR3A", 0x90, false},
	TCCR3B: {"TCCR3B", 0x91, false},
	TCCR3C: {"TCCR3C", 0x92, false},
	ICR3:   {"ICR3", 0x96, true},
	OCR3A:  {"OCR3A", 0x98, true},
	OCR3B:  {"OCR3B", 0x9A, true},
	OCR3C:  {"OCR3C", 0x9C, true},

	TCCR4A: {"TCCR4A", 0xA0, false},
	TCCR4B: {"TCCR4B", 0xA1, false},
	TCCR4C: {"TCCR4C", 0xA2, false},
	ICR4:   {"ICR4", 0xA6, true},
	OCR4A:  {"OCR4A", 0xA8, true},
	OCR4B:  {"OCR4B", 0xAA, true},
	OCR4C:  {"OCR4C", 0xAC, true},

	TCCR5A: {"TCCR5A", 0x120, false},
	TCCR5B: {"TCCR5B", 0x121, false},
	TCCR5C: {"TCCR5C", 0x122, false},
	ICR5:   {"ICR5", 0x126, true},
	OCR5A:  {"OCR5A", 0x128, true},
	OCR5B:  {"OCR5B", 0x12A, true},
	OCR5C:  {"OCR5C", 0x12C, true},

	PCICR:  {"PCICR", 0x68, false},
	PCMSK0: {"PCMSK0", 0x6B, false},
	PCMSK1: {"PCMSK1", 0x6C, false},
	PCMSK2: {"PCMSK2", 0x6D, false},
}

// Ports A-G sit in the low I/O space, H-L in extended I/O.
func init() {
	for p := PortA; p < numPorts; p++ {
		base := uint16(0x20) + uint16(p)*3
		if p >= PortH {
			base = 0x100 + uint16(p-PortH)*3
		}
		l := string(p.Letter())
		registers[p.In()] = registerInfo{"PIN" + l, base, false}
		registers[p.DDR()] = registerInfo{"DDR" + l, base + 1, false}
		registers[p.Out()] = registerInfo{"PORT" + l, base + 2, false}
	}
}

func (r Register) Valid() bool { return r < numRegisters }

func (r Register) String() string {
	if !r.Valid() {
		return "Register(" + strconv.Itoa(int(r)) + ")"
	}
	return registers[r].name
}

// Addr is the data-space address, usable with volatile access from TinyGo.
func (r Register) Addr() uint16 {
	if !r.Valid() {
		return 0
	}
	return registers[r].addr
}

// Wide reports a 16-bit register pair.
func (r Register) Wide() bool { return r.Valid() && registers[r].wide }

// PortOf returns the port a PINx/DDRx/PORTx register belongs to.
func (r Register) PortOf() (Port, bool) {
	if r > regPORTL {
		return 0, false
	}
	return Port(r / 3), true
}
