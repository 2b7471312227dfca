package spindle

import "cpumap-go/x/mathx"

// Duty converts a speed fraction to a compare value: Off for s <= 0,
// otherwise Min + s*Range rounded and kept in [Min, Max]. Off never
// aliases a running spindle because Min > 0.
func (c Channel) Duty(s float32) uint16 {
	if !(s > 0) {
		return c.Off
	}
	s = mathx.Clamp(s, 0, 1)
	d := float32(c.Min) + s*float32(c.Range) + 0.5
	return mathx.Clamp(uint16(d), c.Min, c.Max)
}

// Speed maps rpm within [minRPM, maxRPM] to a duty, the way the spindle
// driver scales programmed S words. rpm <= 0 is off; anything below minRPM
// runs at Min.
func (c Channel) Speed(rpm, minRPM, maxRPM float32) uint16 {
	if !(rpm > 0) {
		return c.Off
	}
	if maxRPM <= minRPM {
		return c.Max
	}
	f := (rpm - minRPM) / (maxRPM - minRPM)
	if f <= 0 {
		return c.Min
	}
	return c.Duty(f)
}
