package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cpumap-go/errcode"
	"cpumap-go/pinmap"
	"cpumap-go/pinmap/boards"
	"cpumap-go/spindle"
)

var checkOpts = struct {
	board string
}{}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every axis count and spindle pin of the board tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := boards.Names()
		if checkOpts.board != "" {
			names = []string{checkOpts.board}
		}
		out := newStatusWriter()
		failed := 0
		for _, name := range names {
			b, err := boards.ByName(name)
			if err != nil {
				return err
			}
			for n := pinmap.MinAxes; n <= min(len(b.Axes), pinmap.MaxAxes); n++ {
				for _, p := range spindle.Choices() {
					label := fmt.Sprintf("%s axes=%d spindle=%s", name, n, p)
					err := checkOne(b, n, p)
					if err != nil {
						failed++
						out.status(false, label, describe(err))
						continue
					}
					out.status(true, label, "")
				}
			}
			for _, n := range pinmap.Notes(b, min(len(b.Axes), pinmap.MaxAxes)) {
				out.note(n.Msg)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d configuration(s) failed", failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkOpts.board, "board", "", "check only this board")
}

func checkOne(b *pinmap.Board, nAxis int, p spindle.Pin) error {
	ch, err := spindle.Configure(p)
	if err != nil {
		return err
	}
	return pinmap.Validate(b, nAxis, ch.Assignment())
}

func describe(err error) string {
	es := errcode.All(err)
	if len(es) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
