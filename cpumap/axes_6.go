//go:build naxis6

package cpumap

const NAxis = 6
