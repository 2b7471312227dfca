package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"cpumap-go/errcode"
	"cpumap-go/pinmap"
	"cpumap-go/pinmap/boards"
	"cpumap-go/spindle"
)

func TestReportRamps14(t *testing.T) {
	rep, err := buildReport(&boards.Ramps14, 3, spindle.PinD8)
	if err != nil {
		t.Fatal(err)
	}
	var step0 *pinRow
	for i := range rep.Pins {
		if rep.Pins[i].Role == "step[0]" {
			step0 = &rep.Pins[i]
		}
		if rep.Pins[i].Role == "step[3]" {
			t.Fatal("axis 3 listed with 3 axes")
		}
	}
	if step0 == nil || step0.Pin != "PF0" || step0.Header != "D54" || step0.DDR != "DDRF" || step0.Port != "PORTF" || step0.In != "PINF" {
		t.Fatalf("step[0] row %+v", step0)
	}
	if rep.Control.Mask != "0x1e" || rep.Control.PCMSK != "PCMSK2" {
		t.Fatalf("control %+v", rep.Control)
	}
	if rep.Spindle.Max != 1024 || rep.Spindle.Compare != "OCR4C" {
		t.Fatalf("spindle %+v", rep.Spindle)
	}
	if len(rep.Notes) != 1 || !strings.Contains(rep.Notes[0], "PK7") {
		t.Fatalf("notes %v", rep.Notes)
	}
	if rep.Spindle.InitA != "0x03" || rep.Spindle.InitB != "0x1a" {
		t.Fatalf("spindle masks A=%s B=%s", rep.Spindle.InitA, rep.Spindle.InitB)
	}
}

func TestHex8IsTwoDigits(t *testing.T) {
	for v, want := range map[uint8]string{0x00: "0x00", 0x02: "0x02", 0x1e: "0x1e", 0xff: "0xff"} {
		if got := hex8(v); got != want {
			t.Fatalf("hex8(%d) = %q, want %q", v, got, want)
		}
	}
}

func TestReportYAML(t *testing.T) {
	rep, err := buildReport(&boards.Ramps14, 6, spindle.PinD6)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeYAML(&buf, rep); err != nil {
		t.Fatal(err)
	}
	var back report
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if back.Axes != 6 || back.Spindle.Max != 255 || len(back.Pins) != len(rep.Pins) {
		t.Fatalf("yaml round trip: %+v", back)
	}
}

func TestReportText(t *testing.T) {
	rep, err := buildReport(&boards.Ramps14, 3, spindle.PinD8)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeText(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "spindle_pwm") || !strings.Contains(buf.String(), "PCINT2") {
		t.Fatalf("text output:\n%s", buf.String())
	}
}

func TestCheckOneReportsCodes(t *testing.T) {
	if err := checkOne(&boards.Ramps14, 4, spindle.PinD8); err != nil {
		t.Fatal(err)
	}
	if err := checkOne(&boards.Ramps14, 4, spindle.PinNone); errcode.Of(err) != errcode.NoPWMPinSelected {
		t.Fatalf("no pin: %v", err)
	}

	bad := boards.Ramps14
	bad.Axes = append([]pinmap.AxisPins(nil), boards.Ramps14.Axes...)
	bad.Axes[1].Step = bad.Axes[0].Step
	err := checkOne(&bad, 3, spindle.PinD8)
	if !errcode.Has(err, errcode.PinCollision) {
		t.Fatalf("collision: %v", err)
	}
	if !strings.Contains(describe(err), "PF0") {
		t.Fatalf("describe: %s", describe(err))
	}
}
