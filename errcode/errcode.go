package errcode

import "errors"

// Code is a stable diagnostic identifier for pin-map configuration faults.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	UnknownBoard         Code = "unknown_board"
	UnknownRole          Code = "unknown_role"
	AxisOutOfRange       Code = "axis_out_of_range"
	AxisCountUnsupported Code = "axis_count_unsupported"
	NoSuchChannel        Code = "no_such_channel"
	BitOutOfRange        Code = "bit_out_of_range"
	PinCollision         Code = "pin_collision"

	ControlNoInterrupt      Code = "control_no_interrupt"
	ControlSharesLimitGroup Code = "control_shares_limit_group"
	LimitOnControlPort      Code = "limit_on_control_port"

	NoPWMPinSelected  Code = "no_pwm_pin_selected"
	UnsupportedPWMPin Code = "unsupported_pwm_pin"
	PWMMinNotPositive Code = "pwm_min_not_positive"
	PWMMinAboveMax    Code = "pwm_min_above_max"
	PWMTopMismatch    Code = "pwm_top_mismatch"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// New builds an *E for op with a formatted-by-caller message.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Of extracts a Code from an error, defaulting to Error. For joined errors
// the first coded member wins.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			if c := Of(e); c != Error {
				return c
			}
		}
	}
	return Error
}

// Has reports whether c appears anywhere in err's tree.
func Has(err error, c Code) bool {
	if err == nil {
		return false
	}
	if Of(err) == c {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if Has(e, c) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(u.Unwrap(), c)
	}
	return false
}

// All flattens a joined error into its coded members.
func All(err error) []*E {
	var out []*E
	var walk func(error)
	walk = func(err error) {
		if err == nil {
			return
		}
		var e *E
		if j, ok := err.(interface{ Unwrap() []error }); ok {
			for _, m := range j.Unwrap() {
				walk(m)
			}
			return
		}
		if errors.As(err, &e) {
			out = append(out, e)
		}
	}
	walk(err)
	return out
}
