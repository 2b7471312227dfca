package pinmap

import (
	"testing"

	"cpumap-go/avr"
	"cpumap-go/errcode"
)

// fixture is a small, valid 3..4 axis board on an arbitrary wiring.
func fixture() *Board {
	axis := func(step, dir, en, min, max avr.Pin) AxisPins {
		return AxisPins{Bind(step, ""), Bind(dir, ""), Bind(en, ""), Bind(min, ""), Bind(max, "")}
	}
	return &Board{
		Name: "fixture",
		Axes: []AxisPins{
			axis(avr.PA0, avr.PA1, avr.PA2, avr.PB0, avr.PB1),
			axis(avr.PA3, avr.PA4, avr.PA5, avr.PB2, avr.PB3),
			axis(avr.PC0, avr.PC1, avr.PC2, avr.PB4, avr.PB5),
			axis(avr.PC3, avr.PC4, avr.PC5, avr.PB6, avr.PB7),
		},
		SpindleEnable:    Bind(avr.PD0, ""),
		SpindleDirection: Bind(avr.PD1, ""),
		CoolantFlood:     Bind(avr.PD2, ""),
		CoolantMist:      Bind(avr.PD3, ""),
		DigitalOutputs:   []Binding{Bind(avr.PL0, ""), Bind(avr.PL1, "")},
		Control: ControlCluster{
			Port: avr.PortK, Reset: 0, FeedHold: 1, CycleStart: 2, SafetyDoor: 3,
		},
		Probe:           Bind(avr.PD4, ""),
		LimitInterrupts: []avr.PCIntGroup{avr.PCIntGroup0},
	}
}

func TestFixtureIsValid(t *testing.T) {
	b := fixture()
	for n := MinAxes; n <= len(b.Axes); n++ {
		if err := Validate(b, n); err != nil {
			t.Fatalf("%d axes: %v", n, err)
		}
	}
}

func TestResolve(t *testing.T) {
	b := fixture()
	got, err := b.Resolve(Direction, 1)
	if err != nil || got.Pin != avr.PA4 {
		t.Fatalf("direction[1] = %v, %v", got.Pin, err)
	}
	if got.DDR() != avr.DDRA || got.Out() != avr.PORTA || got.In() != avr.PINA || got.Bit() != 4 {
		t.Fatal("derived registers disagree with the port")
	}
	if _, err := b.Resolve(Step, 4); errcode.Of(err) != errcode.AxisOutOfRange {
		t.Fatalf("axis 4: %v", err)
	}
	if _, err := b.Resolve(DigitalOutput, 2); errcode.Of(err) != errcode.NoSuchChannel {
		t.Fatalf("output 2: %v", err)
	}
	if _, err := b.Resolve(SpindlePWM, 0); errcode.Of(err) != errcode.UnknownRole {
		t.Fatalf("spindle pwm: %v", err)
	}
	c, err := b.Resolve(ControlCycleStart, 0)
	if err != nil || c.Pin != avr.PK2 {
		t.Fatalf("cycle start = %v, %v", c.Pin, err)
	}
}

func TestAssignmentsCoverEveryRole(t *testing.T) {
	b := fixture()
	as, err := b.Assignments(3)
	if err != nil {
		t.Fatal(err)
	}
	// 5 axial x 3 + 4 shared + 2 outputs + 4 control + probe
	if len(as) != 15+4+2+4+1 {
		t.Fatalf("got %d assignments", len(as))
	}
	for _, a := range as {
		if a.Role.Axial() && a.Index >= 3 {
			t.Fatalf("%s is beyond the axis count", a.Name())
		}
	}
	for _, n := range []int{2, 5, 7} {
		if _, err := b.Assignments(n); errcode.Of(err) != errcode.AxisCountUnsupported {
			t.Fatalf("%d axes: %v", n, err)
		}
	}
}

func TestValidateCollision(t *testing.T) {
	b := fixture()
	b.Probe = Bind(avr.PA0, "")
	err := Validate(b, 3)
	if !errcode.Has(err, errcode.PinCollision) {
		t.Fatalf("want collision, got %v", err)
	}

	b = fixture()
	extra := Assignment{Role: SpindlePWM, Binding: Bind(avr.PD0, "")}
	if err := Validate(b, 3, extra); !errcode.Has(err, errcode.PinCollision) {
		t.Fatalf("spindle pwm on spindle enable: %v", err)
	}
}

func TestValidateCollisionOnlyForActiveAxes(t *testing.T) {
	b := fixture()
	b.Axes[3].Step = Bind(avr.PD4, "") // probe pin, axis 3 only
	if err := Validate(b, 3); err != nil {
		t.Fatalf("inactive axis must not collide: %v", err)
	}
	if err := Validate(b, 4); !errcode.Has(err, errcode.PinCollision) {
		t.Fatalf("active axis must collide: %v", err)
	}
}

func TestValidateControlCluster(t *testing.T) {
	b := fixture()
	b.Control.SafetyDoor = b.Control.Reset
	if err := Validate(b, 3); !errcode.Has(err, errcode.PinCollision) {
		t.Fatalf("duplicate control bit: %v", err)
	}

	b = fixture()
	b.Control.Port = avr.PortL // no pin-change lines
	if err := Validate(b, 3); !errcode.Has(err, errcode.ControlNoInterrupt) {
		t.Fatalf("port L: %v", err)
	}

	b = fixture()
	b.Control.SafetyDoor = 9
	if err := Validate(b, 3); !errcode.Has(err, errcode.BitOutOfRange) {
		t.Fatalf("bit 9: %v", err)
	}

	b = fixture()
	b.LimitInterrupts = append(b.LimitInterrupts, avr.PCIntGroup2)
	if err := Validate(b, 3); !errcode.Has(err, errcode.ControlSharesLimitGroup) {
		t.Fatalf("shared group: %v", err)
	}

	b = fixture()
	b.Axes[0].MinLimit = Bind(avr.PK7, "")
	if err := Validate(b, 3); !errcode.Has(err, errcode.ControlSharesLimitGroup) {
		t.Fatalf("interrupt-driven limit on the control port: %v", err)
	}
	b.LimitInterrupts = nil
	if err := Validate(b, 3); err != nil {
		t.Fatalf("polled limit outside the control mask is fine: %v", err)
	}
}

func TestControlInterrupt(t *testing.T) {
	c := ControlCluster{Port: avr.PortJ, Reset: 0, FeedHold: 1, CycleStart: 2, SafetyDoor: 3}
	ci, ok := c.Interrupt()
	if !ok || ci.Group != avr.PCIntGroup1 || ci.MaskRegister != avr.PCMSK1 {
		t.Fatalf("port J: %+v %v", ci, ok)
	}
	// PJn is PCINT(9+n), one bit above its port bit.
	if c.Mask() != 0x0F || ci.Mask != 0x1E {
		t.Fatalf("masks %#x %#x", c.Mask(), ci.Mask)
	}
}

func TestRoleNames(t *testing.T) {
	for r := Step; r < numRoles; r++ {
		got, ok := ParseRole(r.String())
		if !ok || got != r {
			t.Fatalf("%s round trip", r)
		}
	}
	if !MinLimit.Input() || Step.Input() || !ControlReset.Control() || !DigitalOutput.Indexed() {
		t.Fatal("role predicates")
	}
}

func TestSortByPin(t *testing.T) {
	as := []Assignment{
		{Role: Probe, Binding: Bind(avr.PK1, "")},
		{Role: Step, Binding: Bind(avr.PA2, "")},
		{Role: Direction, Binding: Bind(avr.PA1, "")},
	}
	SortByPin(as)
	if as[0].Role != Direction || as[2].Role != Probe {
		t.Fatalf("order: %v %v %v", as[0].Name(), as[1].Name(), as[2].Name())
	}
}
