package pinmap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"cpumap-go/avr"
	"cpumap-go/errcode"
)

const opValidate = "validate"

// Validate checks the invariants a board must satisfy when it drives nAxis
// axes. extra carries roles owned elsewhere (the spindle PWM pin) so they
// take part in collision checks. All violations are returned joined.
func Validate(b *Board, nAxis int, extra ...Assignment) error {
	as, err := b.Assignments(nAxis)
	if err != nil {
		return err
	}
	as = append(as, extra...)

	var errs []error
	fail := func(c errcode.Code, format string, args ...any) {
		errs = append(errs, errcode.New(c, opValidate, b.Name+": "+fmt.Sprintf(format, args...)))
	}

	owner := make(map[avr.Pin]Assignment, len(as))
	for _, a := range as {
		p := a.Binding.Pin
		if !p.Valid() {
			fail(errcode.BitOutOfRange, "%s is not a valid pin (%s)", a.Name(), p)
			continue
		}
		if prev, dup := owner[p]; dup {
			fail(errcode.PinCollision, "%s and %s both on %s", prev.Name(), a.Name(), p)
			continue
		}
		owner[p] = a
	}

	ci, ok := b.Control.Interrupt()
	if !ok {
		fail(errcode.ControlNoInterrupt, "control inputs on %s have no common pin-change group", b.Control.Port)
	} else if slices.Contains(b.LimitInterrupts, ci.Group) {
		fail(errcode.ControlSharesLimitGroup, "control %s is also enabled for limit switches", ci.Group)
	}

	// With limits interrupt-driven, no limit pin may sit in the control
	// group at all; otherwise only the control mask bits must stay clear,
	// which the collision pass already guarantees.
	if ok && len(b.LimitInterrupts) > 0 {
		for _, a := range as {
			if !a.Role.Limit() {
				continue
			}
			if g, _, has := avr.PCInt(a.Binding.Pin); has && g == ci.Group {
				fail(errcode.ControlSharesLimitGroup, "%s on %s shares %s with the control inputs", a.Name(), a.Binding.Pin, g)
			}
		}
	}

	return errors.Join(errs...)
}

// Notes reports wiring that Validate accepts but a reader of the table
// should know about: limit switches on the control port. That is legal
// while limits are polled (no LimitInterrupts); with interrupt-driven
// limits Validate rejects any of them that share the control group.
func Notes(b *Board, nAxis int) []*errcode.E {
	as, err := b.Assignments(nAxis)
	if err != nil {
		return nil
	}
	var notes []*errcode.E
	for _, a := range as {
		if a.Role.Limit() && a.Binding.Port() == b.Control.Port {
			notes = append(notes, errcode.New(errcode.LimitOnControlPort, opValidate,
				fmt.Sprintf("%s: %s on %s shares %s with the control inputs", b.Name, a.Name(), a.Binding.Pin, b.Control.Port)))
		}
	}
	return notes
}
