// Package pinmap resolves logical machine roles (per-axis step, direction,
// driver enable and limit switches, spindle, coolant, digital outputs,
// operator controls, probe) to physical pins of a board variant.
package pinmap

import "strconv"

// Role is a logical function a pin serves.
type Role uint8

const (
	Step Role = iota
	Direction
	StepperDisable
	MinLimit
	MaxLimit

	SpindleEnable
	SpindleDirection
	SpindlePWM
	CoolantFlood
	CoolantMist
	DigitalOutput

	ControlReset
	ControlFeedHold
	ControlCycleStart
	ControlSafetyDoor

	Probe

	numRoles
)

var roleNames = [numRoles]string{
	Step:              "step",
	Direction:         "direction",
	StepperDisable:    "stepper_disable",
	MinLimit:          "min_limit",
	MaxLimit:          "max_limit",
	SpindleEnable:     "spindle_enable",
	SpindleDirection:  "spindle_direction",
	SpindlePWM:        "spindle_pwm",
	CoolantFlood:      "coolant_flood",
	CoolantMist:       "coolant_mist",
	DigitalOutput:     "digital_output",
	ControlReset:      "control_reset",
	ControlFeedHold:   "control_feed_hold",
	ControlCycleStart: "control_cycle_start",
	ControlSafetyDoor: "control_safety_door",
	Probe:             "probe",
}

func (r Role) String() string {
	if r >= numRoles {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// ParseRole is the inverse of String.
func ParseRole(s string) (Role, bool) {
	for r, n := range roleNames {
		if n == s {
			return Role(r), true
		}
	}
	return 0, false
}

// Axial roles take an axis index.
func (r Role) Axial() bool { return r <= MaxLimit }

// Indexed roles take an index: axial roles and digital outputs.
func (r Role) Indexed() bool { return r.Axial() || r == DigitalOutput }

// Limit reports a limit-switch role.
func (r Role) Limit() bool { return r == MinLimit || r == MaxLimit }

// Control reports a member of the control cluster.
func (r Role) Control() bool { return r >= ControlReset && r <= ControlSafetyDoor }

// Input reports roles read by the firmware rather than driven.
func (r Role) Input() bool { return r.Limit() || r.Control() || r == Probe }

// AxialRoles lists the per-axis roles in table order.
func AxialRoles() []Role { return []Role{Step, Direction, StepperDisable, MinLimit, MaxLimit} }
