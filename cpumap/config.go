package cpumap

import "cpumap-go/pinmap"

// SpindlePWMMinValue is the lowest duty for a running spindle. It must stay
// above zero so off and slowest are distinct.
const SpindlePWMMinValue = 1

// Each line fails with a constant overflow when its bound is broken.
const (
	_ = uint(SpindlePWMMinValue - 1) // SpindlePWMMinValue > 0
	_ = uint(NAxis - pinmap.MinAxes) // NAxis >= 3
	_ = uint(pinmap.MaxAxes - NAxis) // NAxis <= 6
	_ = uint(boardAxes - NAxis)      // board wires NAxis axes
)
