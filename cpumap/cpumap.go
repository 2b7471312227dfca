// Package cpumap is the pin map a firmware build links against. Everything
// is fixed by build tags:
//
//	board          default RAMPS 1.4; cpumap_custom for a user map
//	axis count     default 3; naxis4, naxis5 or naxis6
//	spindle PWM    exactly one of spindle_pwm_d8, spindle_pwm_d6
//	hard limits    ramps_hw_limits polls limits in the stepper ISR
//
// Per-axis tables are arrays of length NAxis, so a constant index past the
// configured axes does not compile.
package cpumap

import "cpumap-go/pinmap"

var (
	Step           = axisPins(pinmap.Step)
	Direction      = axisPins(pinmap.Direction)
	StepperDisable = axisPins(pinmap.StepperDisable)
	MinLimit       = axisPins(pinmap.MinLimit)
	MaxLimit       = axisPins(pinmap.MaxLimit)
)

var (
	SpindleEnable    = board.SpindleEnable
	SpindleDirection = board.SpindleDirection
	CoolantFlood     = board.CoolantFlood
	CoolantMist      = board.CoolantMist

	DigitalOutput = digitalOutputs()

	Control          = board.Control
	ControlMask      = board.Control.Mask()
	ControlInterrupt = controlInterrupt()

	Probe     = board.Probe
	ProbeMask = board.ProbeMask()

	Serial = board.Serial
)

func axisPins(r pinmap.Role) (out [NAxis]pinmap.Binding) {
	for i := range out {
		out[i], _ = board.Axes[i].Get(r)
	}
	return out
}

func digitalOutputs() (out [NDigitalOutputs]pinmap.Binding) {
	copy(out[:], board.DigitalOutputs)
	return out
}

// Zero when the cluster spans pin-change groups; Check and the package
// tests reject that map with control_no_interrupt.
func controlInterrupt() pinmap.ControlInterrupt {
	ci, _ := board.Control.Interrupt()
	return ci
}

// Board returns the selected table.
func Board() *pinmap.Board { return board }

// Check validates the selected table for this build's axis count and
// spindle pin. The build pipeline runs it through the package tests and
// `cpumap check`.
func Check() error {
	ch, err := SpindleChannel()
	if err != nil {
		return err
	}
	return pinmap.Validate(board, NAxis, ch.Assignment())
}
