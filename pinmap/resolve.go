package pinmap

import (
	"fmt"

	"golang.org/x/exp/slices"

	"cpumap-go/errcode"
	"cpumap-go/x/mathx"
)

// Resolve returns the binding for role (and index, for indexed roles).
// Non-indexed roles ignore index. SpindlePWM is owned by the spindle
// package and is not resolvable here.
func (b *Board) Resolve(role Role, index int) (Binding, error) {
	const op = "resolve"
	switch {
	case role.Axial():
		if index < 0 || index >= len(b.Axes) {
			return Binding{}, &errcode.E{C: errcode.AxisOutOfRange, Op: op,
				Msg: fmt.Sprintf("%s: axis %d, board %s has %d", role, index, b.Name, len(b.Axes))}
		}
		bd, _ := b.Axes[index].Get(role)
		return bd, nil
	case role == DigitalOutput:
		if index < 0 || index >= len(b.DigitalOutputs) {
			return Binding{}, &errcode.E{C: errcode.NoSuchChannel, Op: op,
				Msg: fmt.Sprintf("digital output %d, board %s has %d", index, b.Name, len(b.DigitalOutputs))}
		}
		return b.DigitalOutputs[index], nil
	case role.Control():
		return Binding{Pin: b.Control.Pin(role), Label: b.Control.Label}, nil
	}
	switch role {
	case SpindleEnable:
		return b.SpindleEnable, nil
	case SpindleDirection:
		return b.SpindleDirection, nil
	case CoolantFlood:
		return b.CoolantFlood, nil
	case CoolantMist:
		return b.CoolantMist, nil
	case Probe:
		return b.Probe, nil
	}
	return Binding{}, &errcode.E{C: errcode.UnknownRole, Op: op, Msg: role.String()}
}

// Assignments lists every role active when the board drives nAxis axes,
// axial roles first, in table order.
func (b *Board) Assignments(nAxis int) ([]Assignment, error) {
	if !mathx.Between(nAxis, MinAxes, MaxAxes) || nAxis > len(b.Axes) {
		return nil, &errcode.E{C: errcode.AxisCountUnsupported, Op: "assignments",
			Msg: fmt.Sprintf("%d axes on %s (supports %d..%d)", nAxis, b.Name, MinAxes, min(len(b.Axes), MaxAxes))}
	}
	out := make([]Assignment, 0, nAxis*5+16)
	for _, r := range AxialRoles() {
		for i := 0; i < nAxis; i++ {
			bd, _ := b.Axes[i].Get(r)
			out = append(out, Assignment{Role: r, Index: i, Binding: bd})
		}
	}
	for _, r := range []Role{SpindleEnable, SpindleDirection, CoolantFlood, CoolantMist} {
		bd, _ := b.Resolve(r, 0)
		out = append(out, Assignment{Role: r, Binding: bd})
	}
	for i, bd := range b.DigitalOutputs {
		out = append(out, Assignment{Role: DigitalOutput, Index: i, Binding: bd})
	}
	for _, r := range controlRoles {
		bd, _ := b.Resolve(r, 0)
		out = append(out, Assignment{Role: r, Binding: bd})
	}
	out = append(out, Assignment{Role: Probe, Binding: b.Probe})
	return out, nil
}

// SortByPin orders assignments by port and bit, for reports.
func SortByPin(as []Assignment) {
	slices.SortStableFunc(as, func(a, b Assignment) int {
		return int(a.Binding.Pin) - int(b.Binding.Pin)
	})
}
