package avr

// Arduino Mega 2560 header numbering.
const (
	D0  = PE0 // RX0
	D1  = PE1 // TX0
	D2  = PE4
	D3  = PE5
	D4  = PG5
	D5  = PE3
	D6  = PH3
	D7  = PH4
	D8  = PH5
	D9  = PH6
	D10 = PB4
	D11 = PB5
	D12 = PB6
	D13 = PB7
	D14 = PJ1
	D15 = PJ0
	D16 = PH1
	D17 = PH0
	D18 = PD3
	D19 = PD2
	D20 = PD1
	D21 = PD0
	D22 = PA0
	D23 = PA1
	D24 = PA2
	D25 = PA3
	D26 = PA4
	D27 = PA5
	D28 = PA6
	D29 = PA7
	D30 = PC7
	D31 = PC6
	D32 = PC5
	D33 = PC4
	D34 = PC3
	D35 = PC2
	D36 = PC1
	D37 = PC0
	D38 = PD7
	D39 = PG2
	D40 = PG1
	D41 = PG0
	D42 = PL7
	D43 = PL6
	D44 = PL5
	D45 = PL4
	D46 = PL3
	D47 = PL2
	D48 = PL1
	D49 = PL0
	D50 = PB3 // MISO
	D51 = PB2 // MOSI
	D52 = PB1 // SCK
	D53 = PB0 // SS
	D54 = PF0
	D55 = PF1
	D56 = PF2
	D57 = PF3
	D58 = PF4
	D59 = PF5
	D60 = PF6
	D61 = PF7
	D62 = PK0
	D63 = PK1
	D64 = PK2
	D65 = PK3
	D66 = PK4
	D67 = PK5
	D68 = PK6
	D69 = PK7
)

// Analog header aliases.
const (
	A0, A1, A2, A3, A4, A5, A6, A7         = D54, D55, D56, D57, D58, D59, D60, D61
	A8, A9, A10, A11, A12, A13, A14, A15 = D62, D63, D64, D65, D66, D67, D68, D69
)

// NumDigital is the number of header pins D0..D69.
const NumDigital = 70

var digital = [NumDigital]Pin{
	D0, D1, D2, D3, D4, D5, D6, D7, D8, D9,
	D10, D11, D12, D13, D14, D15, D16, D17, D18, D19,
	D20, D21, D22, D23, D24, D25, D26, D27, D28, D29,
	D30, D31, D32, D33, D34, D35, D36, D37, D38, D39,
	D40, D41, D42, D43, D44, D45, D46, D47, D48, D49,
	D50, D51, D52, D53, D54, D55, D56, D57, D58, D59,
	D60, D61, D62, D63, D64, D65, D66, D67, D68, D69,
}

// Digital returns the pin behind header number n.
func Digital(n int) (Pin, bool) {
	if n < 0 || n >= NumDigital {
		return NoPin, false
	}
	return digital[n], true
}

// HeaderNumber is the inverse of Digital. Ports without header pins
// (e.g. PE2) report false.
func HeaderNumber(p Pin) (int, bool) {
	for n, d := range digital {
		if d == p {
			return n, true
		}
	}
	return 0, false
}

// CPUFrequency is the Mega 2560 crystal.
const CPUFrequency = 16_000_000
