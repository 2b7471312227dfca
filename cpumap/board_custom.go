//go:build cpumap_custom

package cpumap

// Replace this file with the custom wiring: a board table plus boardAxes and
// NDigitalOutputs, laid out like board_ramps14.go.
var board = CustomCPUMapNotProvided_replace_board_custom_go
