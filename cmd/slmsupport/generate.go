package main

import (
	"context"
	"fmt"

	"github.com/amcore/slmsupport/blocksupport"
	"github.com/amcore/slmsupport/coreconfig"
	"github.com/amcore/slmsupport/corelog"
	"github.com/amcore/slmsupport/coremetrics"
	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/skin"
	"github.com/amcore/slmsupport/support"
	"github.com/amcore/slmsupport/truss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	generateInput         string
	generateOutput        string
	generateConfigFile    string
	generateFill          bool
	generateBorder        bool
	generateSelfIntersect bool
	generateVerbose       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate support geometry for a mesh",
	Long: `generate loads a Part from a JSON mesh file, runs overhang
detection, block-support extraction, and (unless --fill=false) truss +
skin fill, and writes the combined support geometry back out as a JSON
mesh.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Path to input Part JSON file [required]")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "support.json", "Path to write the combined support geometry")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to a TOML parameters file (defaults used if omitted)")
	generateCmd.Flags().BoolVar(&generateFill, "fill", true, "Materialize truss+skin fill geometry instead of emitting plain support volumes")
	generateCmd.Flags().BoolVar(&generateBorder, "border", true, "Include a solid border ring around each truss slice/skin patch")
	generateCmd.Flags().BoolVar(&generateSelfIntersect, "find-self-intersecting", true, "Test each support volume for self-intersection with the source part")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateVerbose {
		corelog.SetLevel(logrus.DebugLevel)
	}
	log := corelog.For("cmd").WithField("run_id", corelog.NewRunID())

	part, err := geom3d.LoadPart(generateInput)
	if err != nil {
		return fmt.Errorf("loading part: %w", err)
	}

	params := coreconfig.Default()
	if generateConfigFile != "" {
		params, err = coreconfig.Load(generateConfigFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	tol := coreconfig.DefaultTolerances()
	rec := coremetrics.NewRecorder()

	blocks, err := support.IdentifySupportRegions(context.Background(), part, params, tol, nil, nil, generateSelfIntersect, rec)
	if err != nil {
		return fmt.Errorf("identifying support regions: %w", err)
	}
	log.WithField("block_count", len(blocks)).Info("support regions identified")

	var combined *geom3d.Part
	for i, b := range blocks {
		mesh, err := materialize(b, params, tol, rec)
		if err != nil {
			log.WithField("block_id", i).WithError(err).Warn("skipping block")
			continue
		}
		combined = combined.Append(mesh)
	}
	if combined == nil {
		return fmt.Errorf("generate: no support geometry produced")
	}

	if err := geom3d.SavePart(combined, generateOutput); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.WithField("path", generateOutput).Info("wrote support geometry")
	return nil
}

// materialize returns b's final mesh: the plain support volume when
// --fill is false, otherwise the truss-slice + conformal-skin composite
// tagged via blocksupport's grid variant.
func materialize(b blocksupport.BlockSupport, params coreconfig.Parameters, tol coreconfig.Tolerances, rec *coremetrics.Recorder) (*geom3d.Part, error) {
	if !generateFill {
		return blocksupport.Geometry(b)
	}

	b = b.WithGridParams(blocksupport.GridParams{Params: params, Tol: tol})
	tp := truss.Params{P: params, Tol: tol, UseSupportBorder: generateBorder}

	slices, err := truss.GenerateSlices(b, tp)
	if err != nil {
		return nil, fmt.Errorf("generating truss slices: %w", err)
	}
	var fill *geom3d.Part
	for _, s := range slices {
		fill = fill.Append(s)
	}

	skinMesh, err := skin.GenerateSkin(b, tp)
	if err != nil {
		return nil, fmt.Errorf("generating skin: %w", err)
	}
	fill = fill.Append(skinMesh)

	if fill == nil {
		return nil, fmt.Errorf("materialize: no truss or skin geometry produced")
	}
	rec.BlockEmitted()
	b.SetGridGeometry(fill)
	return blocksupport.Geometry(b)
}
