package buildcheck

import (
	"context"
	"strings"
)

// Case is a configuration and what its build must do. An empty Expect means
// it must build cleanly; otherwise some diagnostic must contain Expect.
type Case struct {
	Tags   []string
	Expect string
}

// Outcome is a case after it ran.
type Outcome struct {
	Case   Case
	Result *Result
	Err    error
	Pass   bool
	Detail string
}

var (
	axisTags    = []string{"", "naxis4", "naxis5", "naxis6"}
	spindleTags = []string{"spindle_pwm_d8", "spindle_pwm_d6"}
)

// Diagnostic fragments the failing configurations must produce.
const (
	ExpectNoSpindlePin = "SpindlePWMPinNotSelected"
	ExpectAxisClash    = "NAxis redeclared"
	ExpectNoCustomMap  = "CustomCPUMapNotProvided"
)

// Matrix is every supported configuration plus the ones that must fail.
func Matrix() []Case {
	var cs []Case
	for _, a := range axisTags {
		for _, s := range spindleTags {
			tags := []string{s}
			if a != "" {
				tags = append([]string{a}, tags...)
			}
			cs = append(cs, Case{Tags: tags})
		}
	}
	return append(cs,
		Case{Tags: []string{"ramps_hw_limits", "spindle_pwm_d8"}},
		Case{Tags: nil, Expect: ExpectNoSpindlePin},
		Case{Tags: []string{"naxis5"}, Expect: ExpectNoSpindlePin},
		Case{Tags: []string{"spindle_pwm_d8", "spindle_pwm_d6"}, Expect: ExpectNoSpindlePin},
		Case{Tags: []string{"naxis4", "naxis5", "spindle_pwm_d8"}, Expect: ExpectAxisClash},
		Case{Tags: []string{"cpumap_custom", "spindle_pwm_d8"}, Expect: ExpectNoCustomMap},
	)
}

// Run loads every case with base's flags and directory. Cases run in order;
// each one is a `go list` invocation.
func Run(ctx context.Context, base Config, cases []Case) []Outcome {
	out := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		cfg := base
		cfg.Tags = append(append([]string(nil), base.Tags...), c.Tags...)
		o := Outcome{Case: c}
		o.Result, o.Err = Load(ctx, cfg)
		switch {
		case o.Err != nil:
			o.Detail = o.Err.Error()
		case c.Expect == "" && o.Result.OK():
			o.Pass = true
		case c.Expect == "":
			o.Detail = "unexpected: " + o.Result.Diagnostics[0].String()
		case o.Result.Mentions(c.Expect):
			o.Pass = true
			o.Detail = "fails as required: " + c.Expect
		case o.Result.OK():
			o.Detail = "built, but must fail with " + c.Expect
		default:
			o.Detail = "wrong failure: " + o.Result.Diagnostics[0].String()
		}
		out = append(out, o)
		if ctx.Err() != nil {
			break
		}
	}
	return out
}

// Name is the tag list of a case.
func (c Case) Name() string {
	if len(c.Tags) == 0 {
		return "(no tags)"
	}
	return strings.Join(c.Tags, ",")
}
