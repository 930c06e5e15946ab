package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/stlsplit/version"
)

var rootCmd = &cobra.Command{
	Use:   "stlsplit [file]",
	Short: "Split an STL model into upper and lower halves",
	Long: `stlsplit cuts an STL (Stereolithography) model at the vertical midpoint
of its bounding box and writes the triangles above and below the cut as two
independent STL files. Triangles crossing the cut are left out; no clipping
is performed.

When no file is given, the input directory is scanned for STL files and one
can be picked interactively.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	RunE:          runSplit,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
