//go:build !ramps_hw_limits

package cpumap

// HardwareLimits polls the limit pins from the stepper ISR. Bouncing
// switches can misread there, so it is off unless ramps_hw_limits is set.
const HardwareLimits = false
