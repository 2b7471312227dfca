//go:build spindle_pwm_d6 && !spindle_pwm_d8

package cpumap

import (
	"cpumap-go/avr"
	"cpumap-go/spindle"
)

// D6: OC4A, so OCR4A is the duty register and TOP moves to ICR4 (mode 14).
const (
	SpindlePWMPin = spindle.PinD6

	SpindlePWMOutput      = avr.D6
	SpindlePWMTimer       = avr.Timer4
	SpindlePWMCompare     = avr.OCR4A
	SpindlePWMControlA    = avr.TCCR4A
	SpindlePWMControlB    = avr.TCCR4B
	SpindlePWMTopRegister = avr.ICR4
	SpindlePWMEnableBit   = 7    // COM4A1
	SpindlePWMInitMaskA   = 0x02 // WGM41
	SpindlePWMInitMaskB   = 0x1A // WGM43 | WGM42 | CS41
	SpindlePWMPrescale    = 8

	SpindlePWMTop uint16 = 0xFF
)
