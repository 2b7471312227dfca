//go:build !ramps_hw_limits

package cpumap

const hardwareLimitsTagged = false
