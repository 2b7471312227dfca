//go:build naxis4

package cpumap

const NAxis = 4
