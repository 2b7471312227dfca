// Command cpumap inspects and verifies the pin maps: it prints the resolved
// table for a configuration, validates every board configuration, and runs
// the build-tag matrix against the cpumap package.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cpumap",
	Short:         "Inspect and verify CNC pin maps",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cpumap: ")

	rootCmd.AddCommand(showCmd, checkCmd, matrixCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
