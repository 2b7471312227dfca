// Package boards holds the board-variant pin tables. Each table describes
// wiring only; which one a firmware build uses is picked in cpumap.
package boards

import (
	"golang.org/x/exp/slices"

	"cpumap-go/errcode"
	"cpumap-go/pinmap"
)

var registry = map[string]*pinmap.Board{
	Ramps14.Name: &Ramps14,
}

// ByName looks up a board table for tooling.
func ByName(name string) (*pinmap.Board, error) {
	if b, ok := registry[name]; ok {
		return b, nil
	}
	return nil, &errcode.E{C: errcode.UnknownBoard, Op: "boards", Msg: name}
}

// Names lists registered boards, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
