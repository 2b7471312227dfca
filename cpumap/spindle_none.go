//go:build !(spindle_pwm_d8 || spindle_pwm_d6) || (spindle_pwm_d8 && spindle_pwm_d6)

package cpumap

import "cpumap-go/spindle"

const SpindlePWMPin spindle.Pin = SpindlePWMPinNotSelected_set_exactly_one_tag_spindle_pwm_d8_or_spindle_pwm_d6
