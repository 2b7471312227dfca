//go:build !cpumap_custom

package cpumap

import "cpumap-go/pinmap/boards"

var board = &boards.Ramps14

const (
	boardAxes       = 6
	NDigitalOutputs = 4
)
