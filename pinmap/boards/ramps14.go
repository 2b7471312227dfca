package boards

import (
	"cpumap-go/avr"
	"cpumap-go/pinmap"
)

// Ramps14 is an Arduino Mega 2560 carrying a RAMPS 1.4 shield. Axes 3..5
// use the E0, E1 and Aux-3 driver sockets.
var Ramps14 = pinmap.Board{
	Name: "ramps14",
	MCU:  "atmega2560",

	Axes: []pinmap.AxisPins{
		{
			Step:           pinmap.Bind(avr.D54, "D54/A0 X1 step"),
			Direction:      pinmap.Bind(avr.D55, "D55/A1 X1 dir"),
			StepperDisable: pinmap.Bind(avr.D38, "D38 X1 enable"),
			MinLimit:       pinmap.Bind(avr.D3, "D3 X1 min"),
			MaxLimit:       pinmap.Bind(avr.D42, "D42 X1 max"),
		},
		{
			Step:           pinmap.Bind(avr.D60, "D60/A6 Y1 step"),
			Direction:      pinmap.Bind(avr.D61, "D61/A7 Y1 dir"),
			StepperDisable: pinmap.Bind(avr.D56, "D56/A2 Y1 enable"),
			MinLimit:       pinmap.Bind(avr.D14, "D14 Y1 min"),
			MaxLimit:       pinmap.Bind(avr.D44, "D44 Y1 max"),
		},
		{
			Step:           pinmap.Bind(avr.D46, "D46 Z step"),
			Direction:      pinmap.Bind(avr.D48, "D48 Z dir"),
			StepperDisable: pinmap.Bind(avr.D62, "D62/A8 Z enable"),
			MinLimit:       pinmap.Bind(avr.D69, "D69/A15 Z min"),
			MaxLimit:       pinmap.Bind(avr.D19, "D19 Z max"),
		},
		{
			Step:           pinmap.Bind(avr.D26, "D26 X2 step (E0)"),
			Direction:      pinmap.Bind(avr.D28, "D28 X2 dir (E0)"),
			StepperDisable: pinmap.Bind(avr.D24, "D24 X2 enable (E0)"),
			MinLimit:       pinmap.Bind(avr.D2, "D2 X2 min"),
			MaxLimit:       pinmap.Bind(avr.D40, "D40 X2 max"),
		},
		{
			Step:           pinmap.Bind(avr.D36, "D36 Y2 step (E1)"),
			Direction:      pinmap.Bind(avr.D34, "D34 Y2 dir (E1)"),
			StepperDisable: pinmap.Bind(avr.D30, "D30 Y2 enable (E1)"),
			MinLimit:       pinmap.Bind(avr.D15, "D15 Y2 min"),
			MaxLimit:       pinmap.Bind(avr.D59, "D59/A5 Y2 max"),
		},
		{
			Step:           pinmap.Bind(avr.D49, "D49 axis 6 step (Aux-3)"),
			Direction:      pinmap.Bind(avr.D51, "D51 axis 6 dir (Aux-3)"),
			StepperDisable: pinmap.Bind(avr.D53, "D53 axis 6 enable (Aux-3)"),
			MinLimit:       pinmap.Bind(avr.D57, "D57/A3 axis 6 min"),
			MaxLimit:       pinmap.Bind(avr.D58, "D58/A4 axis 6 max"),
		},
	},

	SpindleEnable:    pinmap.Bind(avr.D4, "D4 servo 4"),
	SpindleDirection: pinmap.Bind(avr.D5, "D5 servo 3"),
	CoolantFlood:     pinmap.Bind(avr.D10, "D10 12V out"),
	CoolantMist:      pinmap.Bind(avr.D9, "D9 12V out"),

	// M62-M65 outputs on AUX-4.
	DigitalOutputs: []pinmap.Binding{
		pinmap.Bind(avr.D16, "D16 AUX-4"),
		pinmap.Bind(avr.D17, "D17 AUX-4"),
		pinmap.Bind(avr.D23, "D23 AUX-4"),
		pinmap.Bind(avr.D25, "D25 AUX-4"),
	},

	// A9..A12 on AUX-2. Port K shares nothing enabled with the limits:
	// PK0 (Z enable) and PK7 (Z min) stay outside the control mask.
	Control: pinmap.ControlCluster{
		Port:       avr.PortK,
		Reset:      1,
		FeedHold:   2,
		CycleStart: 3,
		SafetyDoor: 4,
		Label:      "A9..A12 AUX-2",
	},

	Probe: pinmap.Bind(avr.D18, "D18"),

	Serial: pinmap.SerialPort{USART: avr.USART0},

	// Limit inputs are spread over ports E, L, J, K, D, G and F, so they
	// are read by the stepper ISR (hardware limits) or during homing, not
	// through pin-change groups.
	LimitInterrupts: nil,
}
