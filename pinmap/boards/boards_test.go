package boards

import (
	"strings"
	"testing"

	"cpumap-go/avr"
	"cpumap-go/errcode"
	"cpumap-go/pinmap"
	"cpumap-go/spindle"
)

func TestRamps14ValidForEveryAxisCountAndSpindlePin(t *testing.T) {
	for n := pinmap.MinAxes; n <= pinmap.MaxAxes; n++ {
		for _, p := range spindle.Choices() {
			ch := spindle.MustConfigure(p)
			if err := pinmap.Validate(&Ramps14, n, ch.Assignment()); err != nil {
				t.Fatalf("%d axes, spindle %s: %v", n, p, err)
			}
		}
	}
}

func TestRamps14ReferenceBindings(t *testing.T) {
	cases := []struct {
		role  pinmap.Role
		index int
		pin   avr.Pin
	}{
		{pinmap.Step, 0, avr.PF0},
		{pinmap.Direction, 0, avr.PF1},
		{pinmap.StepperDisable, 0, avr.PD7},
		{pinmap.MinLimit, 0, avr.PE5},
		{pinmap.MaxLimit, 0, avr.PL7},
		{pinmap.Step, 2, avr.PL3},
		{pinmap.MinLimit, 2, avr.PK7},
		{pinmap.Step, 5, avr.PL0},
		{pinmap.SpindleEnable, 0, avr.PG5},
		{pinmap.SpindleDirection, 0, avr.PE3},
		{pinmap.CoolantFlood, 0, avr.PB4},
		{pinmap.CoolantMist, 0, avr.PH6},
		{pinmap.DigitalOutput, 0, avr.PH1},
		{pinmap.DigitalOutput, 1, avr.PH0},
		{pinmap.DigitalOutput, 2, avr.PA1},
		{pinmap.DigitalOutput, 3, avr.PA3},
		{pinmap.ControlReset, 0, avr.PK1},
		{pinmap.ControlSafetyDoor, 0, avr.PK4},
		{pinmap.Probe, 0, avr.PD3},
	}
	for _, c := range cases {
		b, err := Ramps14.Resolve(c.role, c.index)
		if err != nil {
			t.Fatalf("%s[%d]: %v", c.role, c.index, err)
		}
		if b.Pin != c.pin {
			t.Fatalf("%s[%d] = %s, want %s", c.role, c.index, b.Pin, c.pin)
		}
	}
	step0, _ := Ramps14.Resolve(pinmap.Step, 0)
	if step0.DDR() != avr.DDRF || step0.Out() != avr.PORTF || step0.In() != avr.PINF || step0.Bit() != 0 {
		t.Fatal("step[0] registers")
	}
	if _, err := Ramps14.Resolve(pinmap.DigitalOutput, 4); errcode.Of(err) != errcode.NoSuchChannel {
		t.Fatalf("output 4: %v", err)
	}
}

func TestRamps14Assignments(t *testing.T) {
	as, err := Ramps14.Assignments(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range as {
		if a.Role.Axial() && a.Index > 2 {
			t.Fatalf("%s active with 3 axes", a.Name())
		}
	}
	if _, err := Ramps14.Resolve(pinmap.Step, 6); errcode.Of(err) != errcode.AxisOutOfRange {
		t.Fatalf("axis 6: %v", err)
	}
}

func TestRamps14ControlCluster(t *testing.T) {
	c := Ramps14.Control
	if c.Mask() != 0x1E {
		t.Fatalf("control mask %#x", c.Mask())
	}
	ci, ok := c.Interrupt()
	if !ok {
		t.Fatal("control cluster has no pin-change group")
	}
	if ci.Group != avr.PCIntGroup2 || ci.EnableBit != 2 || ci.MaskRegister != avr.PCMSK2 || ci.Vector != avr.PCINT2_vect || ci.Mask != 0x1E {
		t.Fatalf("control interrupt %+v", ci)
	}
	if c.DDR() != avr.DDRK || c.In() != avr.PINK || c.Out() != avr.PORTK {
		t.Fatal("control registers")
	}
	// No limit pin is reachable through the control mask.
	for n := 0; n < len(Ramps14.Axes); n++ {
		for _, r := range []pinmap.Role{pinmap.MinLimit, pinmap.MaxLimit} {
			b, _ := Ramps14.Resolve(r, n)
			if b.Port() == c.Port && b.Mask()&c.Mask() != 0 {
				t.Fatalf("%s[%d] inside control mask", r, n)
			}
		}
	}
	if Ramps14.ProbeMask() != 1<<3 {
		t.Fatal("probe mask")
	}
}

func TestRamps14NotesZMinOnControlPort(t *testing.T) {
	for n := pinmap.MinAxes; n <= pinmap.MaxAxes; n++ {
		notes := pinmap.Notes(&Ramps14, n)
		if len(notes) != 1 || notes[0].C != errcode.LimitOnControlPort || !strings.Contains(notes[0].Msg, "min_limit[2]") {
			t.Fatalf("%d axes: notes %v", n, notes)
		}
	}
	// The same wiring with interrupt-driven limits on the control group fails.
	b := Ramps14
	b.LimitInterrupts = []avr.PCIntGroup{avr.PCIntGroup2}
	if err := pinmap.Validate(&b, 3); !errcode.Has(err, errcode.ControlSharesLimitGroup) {
		t.Fatalf("interrupt-driven limits on PCINT2: %v", err)
	}
}

func TestRamps14Serial(t *testing.T) {
	s := Ramps14.Serial
	if s.RXVector() != avr.USART0_RX_vect || s.UDREVector() != avr.USART0_UDRE_vect {
		t.Fatal("serial vectors")
	}
}

func TestRegistry(t *testing.T) {
	b, err := ByName("ramps14")
	if err != nil || b != &Ramps14 {
		t.Fatalf("ByName: %v", err)
	}
	if _, err := ByName("nope"); errcode.Of(err) != errcode.UnknownBoard {
		t.Fatalf("unknown board: %v", err)
	}
	if names := Names(); len(names) != 1 || names[0] != "ramps14" {
		t.Fatalf("names %v", names)
	}
}
