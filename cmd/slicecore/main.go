// Command slicecore slices a triangulated mesh into an HTML layer
// viewer: <config.yaml> <input.stl> <output.html>.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "slicecore <config.yaml> <input.stl> <output.html>",
		Short:        "Slice a triangulated mesh into a per-layer HTML toolpath viewer",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], args[2])
		},
	}
	return cmd
}
