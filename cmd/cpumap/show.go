package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cpumap-go/avr"
	"cpumap-go/pinmap"
	"cpumap-go/pinmap/boards"
	"cpumap-go/spindle"
)

var showOpts = struct {
	board   string
	axes    int
	spindle string
	format  string
}{}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved pin table for one configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := boards.ByName(showOpts.board)
		if err != nil {
			return err
		}
		p, ok := spindle.ParsePin(showOpts.spindle)
		if !ok {
			return fmt.Errorf("--spindle-pwm %q: want d8 or d6", showOpts.spindle)
		}
		rep, err := buildReport(b, showOpts.axes, p)
		if err != nil {
			return err
		}
		switch showOpts.format {
		case "yaml":
			return writeYAML(os.Stdout, rep)
		case "text":
			return writeText(os.Stdout, rep)
		}
		return fmt.Errorf("-o %q: want text or yaml", showOpts.format)
	},
}

func init() {
	f := showCmd.Flags()
	f.StringVar(&showOpts.board, "board", "ramps14", "board table")
	f.IntVar(&showOpts.axes, "axes", pinmap.MinAxes, "number of axes")
	f.StringVar(&showOpts.spindle, "spindle-pwm", "d8", "spindle PWM pin (d8, d6)")
	f.StringVarP(&showOpts.format, "output", "o", "text", "output format (text, yaml)")
}

type pinRow struct {
	Role   string `yaml:"role"`
	Pin    string `yaml:"pin"`
	Header string `yaml:"header,omitempty"`
	Label  string `yaml:"label,omitempty"`
	DDR    string `yaml:"ddr"`
	Port   string `yaml:"port"`
	In     string `yaml:"in"`
	Bit    uint8  `yaml:"bit"`
}

type controlRow struct {
	Port      string `yaml:"port"`
	Mask      string `yaml:"mask"`
	Interrupt string `yaml:"interrupt"`
	PCMSK     string `yaml:"pcmsk"`
	PCIEBit   uint8  `yaml:"pcie_bit"`
}

type spindleRow struct {
	Pin         string  `yaml:"pin"`
	Timer       string  `yaml:"timer"`
	Compare     string  `yaml:"compare"`
	TopRegister string  `yaml:"top_register"`
	InitA       string  `yaml:"tccra_mask"`
	InitB       string  `yaml:"tccrb_mask"`
	Prescale    int     `yaml:"prescale"`
	Max         uint16  `yaml:"max"`
	Min         uint16  `yaml:"min"`
	Off         uint16  `yaml:"off"`
	FrequencyHz float64 `yaml:"frequency_hz"`
}

type report struct {
	Board   string     `yaml:"board"`
	MCU     string     `yaml:"mcu"`
	Axes    int        `yaml:"axes"`
	Pins    []pinRow   `yaml:"pins"`
	Control controlRow `yaml:"control"`
	Spindle spindleRow `yaml:"spindle_pwm"`
	Serial  string     `yaml:"serial"`
	Notes   []string   `yaml:"notes,omitempty"`
}

func buildReport(b *pinmap.Board, nAxis int, p spindle.Pin) (*report, error) {
	ch, err := spindle.Configure(p)
	if err != nil {
		return nil, err
	}
	if err := pinmap.Validate(b, nAxis, ch.Assignment()); err != nil {
		return nil, err
	}
	as, err := b.Assignments(nAxis)
	if err != nil {
		return nil, err
	}
	as = append(as, ch.Assignment())

	rep := &report{
		Board:  b.Name,
		MCU:    b.MCU,
		Axes:   nAxis,
		Serial: b.Serial.USART.String(),
	}
	for _, a := range as {
		rep.Pins = append(rep.Pins, row(a))
	}
	for _, n := range pinmap.Notes(b, nAxis) {
		rep.Notes = append(rep.Notes, n.Msg)
	}

	ci, ok := b.Control.Interrupt()
	if !ok {
		return nil, fmt.Errorf("%s: control cluster has no pin-change group", b.Name)
	}
	rep.Control = controlRow{
		Port:      b.Control.Port.String(),
		Mask:      hex8(b.Control.Mask()),
		Interrupt: ci.Vector.String(),
		PCMSK:     ci.MaskRegister.String(),
		PCIEBit:   ci.EnableBit,
	}
	rep.Spindle = spindleRow{
		Pin:         ch.Pin.Pin.String(),
		Timer:       ch.Timer.String(),
		Compare:     ch.Compare.String(),
		TopRegister: ch.TopRegister.String(),
		InitA:       hex8(ch.InitMaskA),
		InitB:       hex8(ch.InitMaskB),
		Prescale:    ch.Prescale,
		Max:         ch.Max,
		Min:         ch.Min,
		Off:         ch.Off,
		FrequencyHz: ch.Frequency(),
	}
	return rep, nil
}

func row(a pinmap.Assignment) pinRow {
	b := a.Binding
	r := pinRow{
		Role:  a.Name(),
		Pin:   b.Pin.String(),
		Label: b.Label,
		DDR:   b.DDR().String(),
		Port:  b.Out().String(),
		In:    b.In().String(),
		Bit:   b.Bit(),
	}
	if n, ok := avr.HeaderNumber(b.Pin); ok {
		r.Header = "D" + strconv.Itoa(n)
	}
	return r
}

func hex8(v uint8) string { return fmt.Sprintf("0x%02x", v) }

func writeYAML(w io.Writer, rep *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, rep *report) error {
	fmt.Fprintf(w, "%s (%s), %d axes, serial %s\n\n", rep.Board, rep.MCU, rep.Axes, rep.Serial)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tPIN\tHEADER\tDDR\tPORT\tIN\tBIT\tLABEL")
	for _, r := range rep.Pins {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n", r.Role, r.Pin, r.Header, r.DDR, r.Port, r.In, r.Bit, r.Label)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	c := rep.Control
	fmt.Fprintf(w, "\ncontrol: %s mask %s, %s via %s (PCIE%d)\n", c.Port, c.Mask, c.Interrupt, c.PCMSK, c.PCIEBit)
	for _, n := range rep.Notes {
		fmt.Fprintf(w, "note: %s\n", n)
	}
	s := rep.Spindle
	_, err := fmt.Fprintf(w, "spindle pwm: %s %s %s top=%s max=%d min=%d off=%d /%d %.0f Hz (A=%s B=%s)\n",
		s.Pin, s.Timer, s.Compare, s.TopRegister, s.Max, s.Min, s.Off, s.Prescale, s.FrequencyHz, s.InitA, s.InitB)
	return err
}
