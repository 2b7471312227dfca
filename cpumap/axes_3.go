//go:build !naxis4 && !naxis5 && !naxis6

package cpumap

const NAxis = 3
