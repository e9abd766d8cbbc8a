package main

import (
	"fmt"

	"github.com/amcore/slmsupport/coreconfig"
	"github.com/spf13/cobra"
)

var configFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective parameters",
	Long:  `config prints the coreconfig.Parameters that generate would run with, after merging defaults with an optional TOML file.`,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to a TOML parameters file (defaults printed if omitted)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	params := coreconfig.Default()
	if configFile != "" {
		var err error
		params, err = coreconfig.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	fmt.Printf("rayProjectionResolution   = %g\n", params.RayProjectionResolution)
	fmt.Printf("overhangAngle             = %g\n", params.OverhangAngle)
	fmt.Printf("minimumAreaThreshold      = %g\n", params.MinimumAreaThreshold)
	fmt.Printf("outerSupportEdgeGap       = %g\n", params.OuterSupportEdgeGap)
	fmt.Printf("innerSupportEdgeGap       = %g\n", params.InnerSupportEdgeGap)
	fmt.Printf("upperProjectionOffset     = %g\n", params.UpperProjectionOffset)
	fmt.Printf("lowerProjectionOffset     = %g\n", params.LowerProjectionOffset)
	fmt.Printf("triangulationSpacing      = %g\n", params.TriangulationSpacing)
	fmt.Printf("simplifyPolygonFactor     = %g\n", params.SimplifyPolygonFactor)
	fmt.Printf("gridSpacing               = (%g, %g)\n", params.GridSpacing.X, params.GridSpacing.Y)
	fmt.Printf("trussWidth                = %g\n", params.TrussWidth)
	fmt.Printf("trussAngle                = %g\n", params.TrussAngle)
	fmt.Printf("supportBorderDistance     = %g\n", params.SupportBorderDistance)
	fmt.Printf("supportWallThickness      = %g\n", params.SupportWallThickness)
	fmt.Printf("tooth                     = {A:%g B:%g C:%g D:%g}\n", params.Tooth.A, params.Tooth.B, params.Tooth.C, params.Tooth.D)
	fmt.Printf("supportTeethUpperPenetration = %g\n", params.SupportTeethUpperPenetration)
	fmt.Printf("useUpperSupportTeeth      = %t\n", params.UseUpperSupportTeeth)
	fmt.Printf("useLowerSupportTeeth      = %t\n", params.UseLowerSupportTeeth)
	fmt.Printf("numSkinMeshSubdivideIterations = %d\n", params.NumSkinMeshSubdivideIterations)
	fmt.Printf("mergeMesh                 = %t\n", params.MergeMesh)
	fmt.Printf("useApproxBasePlateSupport = %t\n", params.UseApproxBasePlateSupport)
	return nil
}
