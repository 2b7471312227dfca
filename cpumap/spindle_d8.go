//go:build spindle_pwm_d8 && !spindle_pwm_d6

package cpumap

import (
	"cpumap-go/avr"
	"cpumap-go/spindle"
)

// D8: OC4C, fast PWM mode 15 with TOP in OCR4A, clk/8.
const (
	SpindlePWMPin = spindle.PinD8

	SpindlePWMOutput      = avr.D8
	SpindlePWMTimer       = avr.Timer4
	SpindlePWMCompare     = avr.OCR4C
	SpindlePWMControlA    = avr.TCCR4A
	SpindlePWMControlB    = avr.TCCR4B
	SpindlePWMTopRegister = avr.OCR4A
	SpindlePWMEnableBit   = 3    // COM4C1
	SpindlePWMInitMaskA   = 0x03 // WGM41 | WGM40
	SpindlePWMInitMaskB   = 0x1A // WGM43 | WGM42 | CS41
	SpindlePWMPrescale    = 8

	SpindlePWMTop uint16 = 0x400
)
