package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slmsupport",
	Short: "Generate powder-bed-fusion support structures for a mesh",
	Long: `slmsupport runs the support-generation core end to end: overhang
detection, block-support extraction, truss slicing, and conformal
skinning, over a Part loaded from a minimal JSON mesh file.`,
}
