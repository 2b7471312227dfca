package cpumap

import "cpumap-go/spindle"

// Spindle PWM levels. The register constants live in the selected pin file.
const (
	SpindlePWMMaxValue = SpindlePWMTop
	SpindlePWMOffValue = 0
	SpindlePWMRange    = SpindlePWMMaxValue - SpindlePWMMinValue
)

const _ = uint(SpindlePWMMaxValue - 1 - SpindlePWMMinValue) // min below max

// SpindleDuty converts a speed fraction in [0, 1] to a compare value with
// the constants above. Zero or less is off.
func SpindleDuty(s float32) uint16 {
	if !(s > 0) {
		return SpindlePWMOffValue
	}
	if s >= 1 {
		return SpindlePWMMaxValue
	}
	d := uint16(float32(SpindlePWMMinValue) + s*float32(SpindlePWMRange) + 0.5)
	return max(d, SpindlePWMMinValue)
}

// SpindleChannel builds the tooling view of the selected channel.
func SpindleChannel() (spindle.Channel, error) {
	return spindle.Configure(SpindlePWMPin, spindle.WithMin(SpindlePWMMinValue))
}
