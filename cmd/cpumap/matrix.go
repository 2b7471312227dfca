package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"cpumap-go/internal/buildcheck"
)

var matrixOpts = struct {
	buildFlags string
	dir        string
	tags       []string
}{}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Type-check the cpumap package under every supported and forbidden tag set",
	Long: "Loads cpumap-go/cpumap once per build configuration. Supported configurations must " +
		"compile; missing or conflicting choices must fail with their diagnostic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := shlex.Split(matrixOpts.buildFlags)
		if err != nil {
			return fmt.Errorf("--build-flags: %w", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		base := buildcheck.Config{BuildFlags: flags, Dir: matrixOpts.dir, Tags: matrixOpts.tags}
		out := newStatusWriter()
		failed := 0
		for _, o := range buildcheck.Run(ctx, base, buildcheck.Matrix()) {
			if !o.Pass {
				failed++
			}
			out.status(o.Pass, o.Case.Name(), o.Detail)
		}
		if failed > 0 {
			return fmt.Errorf("%d build configuration(s) misbehaved", failed)
		}
		return nil
	},
}

func init() {
	f := matrixCmd.Flags()
	f.StringVar(&matrixOpts.buildFlags, "build-flags", "", "extra go build flags, shell-quoted")
	f.StringVar(&matrixOpts.dir, "dir", "", "directory inside the module to run from")
	f.StringSliceVar(&matrixOpts.tags, "tags", nil, "tags added to every configuration")
}
