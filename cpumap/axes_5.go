//go:build naxis5

package cpumap

const NAxis = 5
