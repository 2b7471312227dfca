package pinmap

import (
	"strconv"

	"cpumap-go/avr"
)

// Supported axis counts.
const (
	MinAxes = 3
	MaxAxes = 6
)

// Binding is a role's physical pin plus the board's name for it. The
// register accessors (DDR, Out, In) and Mask come from the pin.
type Binding struct {
	avr.Pin
	Label string
}

// Bind is shorthand for board tables.
func Bind(p avr.Pin, label string) Binding { return Binding{Pin: p, Label: label} }

// AxisPins is the wiring of one axis.
type AxisPins struct {
	Step           Binding
	Direction      Binding
	StepperDisable Binding
	MinLimit       Binding
	MaxLimit       Binding
}

// Get returns the binding for an axial role.
func (a AxisPins) Get(r Role) (Binding, bool) {
	switch r {
	case Step:
		return a.Step, true
	case Direction:
		return a.Direction, true
	case StepperDisable:
		return a.StepperDisable, true
	case MinLimit:
		return a.MinLimit, true
	case MaxLimit:
		return a.MaxLimit, true
	}
	return Binding{}, false
}

// ControlCluster holds the operator inputs. All four live on one port,
// because pin-change enable and masking are per port group.
type ControlCluster struct {
	Port       avr.Port
	Reset      uint8
	FeedHold   uint8
	CycleStart uint8
	SafetyDoor uint8
	Label      string
}

// Bit returns the bit index of a control role.
func (c ControlCluster) Bit(r Role) (uint8, bool) {
	switch r {
	case ControlReset:
		return c.Reset, true
	case ControlFeedHold:
		return c.FeedHold, true
	case ControlCycleStart:
		return c.CycleStart, true
	case ControlSafetyDoor:
		return c.SafetyDoor, true
	}
	return 0, false
}

// Pin resolves a control role to its pin (NoPin for non-control roles).
func (c ControlCluster) Pin(r Role) avr.Pin {
	b, ok := c.Bit(r)
	if !ok {
		return avr.NoPin
	}
	return avr.PinOf(c.Port, b)
}

// Mask covers all four control bits in the port registers.
func (c ControlCluster) Mask() uint8 {
	return 1<<c.Reset | 1<<c.FeedHold | 1<<c.CycleStart | 1<<c.SafetyDoor
}

func (c ControlCluster) DDR() avr.Register { return c.Port.DDR() }
func (c ControlCluster) In() avr.Register  { return c.Port.In() }
func (c ControlCluster) Out() avr.Register { return c.Port.Out() }

// ControlInterrupt is the pin-change plumbing derived from the cluster.
type ControlInterrupt struct {
	Group        avr.PCIntGroup
	EnableBit    uint8        // PCIEn in PCICR
	MaskRegister avr.Register // PCMSKn
	Mask         uint8        // value for PCMSKn; differs from the port mask on port J
	Vector       avr.Vector
}

// Interrupt derives the pin-change group serving the cluster. It fails when
// any control pin lacks a PCINT line or the pins span groups.
func (c ControlCluster) Interrupt() (ControlInterrupt, bool) {
	var ci ControlInterrupt
	for i, r := range controlRoles {
		g, line, ok := avr.PCInt(c.Pin(r))
		if !ok || (i > 0 && g != ci.Group) {
			return ControlInterrupt{}, false
		}
		ci.Group = g
		ci.Mask |= 1 << line
	}
	ci.EnableBit = ci.Group.EnableBit()
	ci.MaskRegister = ci.Group.MaskRegister()
	ci.Vector = ci.Group.Vector()
	return ci, true
}

var controlRoles = [4]Role{ControlReset, ControlFeedHold, ControlCycleStart, ControlSafetyDoor}

// SerialPort names the USART the command channel uses.
type SerialPort struct {
	USART avr.USART
}

func (s SerialPort) RXVector() avr.Vector   { return s.USART.RXVector() }
func (s SerialPort) UDREVector() avr.Vector { return s.USART.UDREVector() }

// Board is one wiring of roles to pins. Axes lists every axis the board can
// drive; a build uses the first N of them.
type Board struct {
	Name string
	MCU  string

	Axes []AxisPins

	SpindleEnable    Binding
	SpindleDirection Binding
	CoolantFlood     Binding
	CoolantMist      Binding

	DigitalOutputs []Binding

	Control ControlCluster
	Probe   Binding

	Serial SerialPort

	// LimitInterrupts lists the pin-change groups the limit handler enables.
	// Empty when limits are not pin-change driven on this board.
	LimitInterrupts []avr.PCIntGroup
}

// ProbeMask is the input mask for the probe pin.
func (b *Board) ProbeMask() uint8 { return b.Probe.Mask() }

// Assignment is one active role instance.
type Assignment struct {
	Role    Role
	Index   int
	Binding Binding
}

func (a Assignment) Name() string {
	if a.Role.Indexed() {
		return a.Role.String() + "[" + strconv.Itoa(a.Index) + "]"
	}
	return a.Role.String()
}
