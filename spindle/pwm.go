// Package spindle derives the hardware PWM channel that drives spindle
// speed from the chosen output pin.
package spindle

import (
	"fmt"

	"cpumap-go/avr"
	"cpumap-go/errcode"
	"cpumap-go/pinmap"
)

// Pin is the build-time choice of spindle PWM output.
type Pin uint8

const (
	PinNone Pin = iota
	PinD8       // RAMPS 12V output with heat sink
	PinD6       // RAMPS servo 2 signal
)

var pinNames = [...]string{PinNone: "none", PinD8: "d8", PinD6: "d6"}

func (p Pin) String() string {
	if int(p) < len(pinNames) {
		return pinNames[p]
	}
	return fmt.Sprintf("Pin(%d)", uint8(p))
}

// ParsePin accepts the names String produces.
func ParsePin(s string) (Pin, bool) {
	for i, n := range pinNames {
		if n == s && Pin(i) != PinNone {
			return Pin(i), true
		}
	}
	return PinNone, false
}

// Choices lists the selectable pins.
func Choices() []Pin { return []Pin{PinD8, PinD6} }

type profile struct {
	pin      avr.Pin
	label    string
	top      uint16
	prescale int
}

// ~1.9 kHz on D8 (10-bit span); D6 trades resolution for an 8-bit span.
var profiles = map[Pin]profile{
	PinD8: {avr.D8, "D8 12V out", 0x400, 8},
	PinD6: {avr.D6, "D6 servo 2", 0xFF, 8},
}

// Physical returns the header pin behind a choice.
func (p Pin) Physical() (avr.Pin, bool) {
	pr, ok := profiles[p]
	return pr.pin, ok
}

// Channel is everything the spindle driver needs to run the timer.
type Channel struct {
	Choice Pin
	Pin    pinmap.Binding

	Timer     avr.Timer
	Compare   avr.Register // OCRnX, duty register
	ControlA  avr.Register // TCCRnA
	ControlB  avr.Register // TCCRnB
	EnableBit uint8        // COMnX1 in TCCRnA
	InitMaskA uint8
	InitMaskB uint8
	Prescale  int

	TopRegister avr.Register
	Top         uint16

	Max   uint16
	Min   uint16
	Off   uint16
	Range uint16
}

type settings struct {
	min uint16
}

type Option func(*settings)

// WithMin overrides the lowest non-off duty (default 1).
func WithMin(v uint16) Option { return func(s *settings) { s.min = v } }

// Configure builds the channel for choice.
func Configure(choice Pin, opts ...Option) (Channel, error) {
	const op = "spindle"
	if choice == PinNone {
		return Channel{}, &errcode.E{C: errcode.NoPWMPinSelected, Op: op,
			Msg: "choose one of d8, d6"}
	}
	pr, ok := profiles[choice]
	if !ok {
		return Channel{}, &errcode.E{C: errcode.UnsupportedPWMPin, Op: op, Msg: choice.String()}
	}
	timer, ch, ok := avr.OutputCompare(pr.pin)
	if !ok || !timer.Wide() {
		return Channel{}, &errcode.E{C: errcode.UnsupportedPWMPin, Op: op,
			Msg: fmt.Sprintf("%s (%s) has no 16-bit compare unit", choice, pr.pin)}
	}

	st := settings{min: 1}
	for _, o := range opts {
		o(&st)
	}

	ocr, _ := timer.Compare(ch)
	c := Channel{
		Choice:    choice,
		Pin:       pinmap.Bind(pr.pin, pr.label),
		Timer:     timer,
		Compare:   ocr,
		ControlA:  timer.ControlA(),
		ControlB:  timer.ControlB(),
		EnableBit: ch.COM1(),
		Prescale:  pr.prescale,
		Top:       pr.top,
		Max:       pr.top,
		Min:       st.min,
		Off:       0,
	}

	// Fast PWM. OCRnA can't be both TOP and the duty register, so channel A
	// counts to ICRn (mode 14) and B/C count to OCRnA (mode 15).
	var mode uint8 = 15
	c.TopRegister, _ = timer.Compare(avr.ChannelA)
	if ch == avr.ChannelA {
		mode = 14
		c.TopRegister, _ = timer.InputCapture()
	}
	cs, _ := timer.ClockSelect(pr.prescale)
	c.InitMaskA, c.InitMaskB = avr.WaveformMasks(mode)
	c.InitMaskB |= cs

	if c.Min == 0 {
		return Channel{}, &errcode.E{C: errcode.PWMMinNotPositive, Op: op,
			Msg: "minimum duty must stay above the off value"}
	}
	if c.Min >= c.Max {
		return Channel{}, &errcode.E{C: errcode.PWMMinAboveMax, Op: op,
			Msg: fmt.Sprintf("min %d, max %d", c.Min, c.Max)}
	}
	if c.Top != c.Max {
		return Channel{}, &errcode.E{C: errcode.PWMTopMismatch, Op: op,
			Msg: fmt.Sprintf("top %#x, max %d", c.Top, c.Max)}
	}
	c.Range = c.Max - c.Min
	return c, nil
}

// MustConfigure is for tooling and tests that pass constant choices.
func MustConfigure(choice Pin, opts ...Option) Channel {
	c, err := Configure(choice, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Frequency is the PWM carrier in Hz.
func (c Channel) Frequency() float64 {
	return float64(avr.CPUFrequency) / (float64(c.Prescale) * (float64(c.Top) + 1))
}

// Assignment exposes the PWM pin to pin-map collision checks.
func (c Channel) Assignment() pinmap.Assignment {
	return pinmap.Assignment{Role: pinmap.SpindlePWM, Binding: c.Pin}
}
