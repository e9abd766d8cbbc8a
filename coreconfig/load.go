package coreconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a TOML configuration file at path into a Parameters value,
// pre-seeded with Default() so a partial file only overrides the keys
// it names.
func Load(path string) (Parameters, error) {
	def := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	seedDefaults(v, def)

	if err := v.ReadInConfig(); err != nil {
		return Parameters{}, fmt.Errorf("coreconfig: reading %s: %w", path, err)
	}

	var out Parameters
	if err := v.Unmarshal(&out); err != nil {
		return Parameters{}, fmt.Errorf("coreconfig: unmarshal: %w", err)
	}
	return out, nil
}

func seedDefaults(v *viper.Viper, def Parameters) {
	v.SetDefault("rayprojectionresolution", def.RayProjectionResolution)
	v.SetDefault("overhangangle", def.OverhangAngle)
	v.SetDefault("minimumareathreshold", def.MinimumAreaThreshold)
	v.SetDefault("outersupportedgegap", def.OuterSupportEdgeGap)
	v.SetDefault("innersupportedgegap", def.InnerSupportEdgeGap)
	v.SetDefault("upperprojectionoffset", def.UpperProjectionOffset)
	v.SetDefault("lowerprojectionoffset", def.LowerProjectionOffset)
	v.SetDefault("triangulationspacing", def.TriangulationSpacing)
	v.SetDefault("simplifypolygonfactor", def.SimplifyPolygonFactor)
	v.SetDefault("gridspacing.x", def.GridSpacing.X)
	v.SetDefault("gridspacing.y", def.GridSpacing.Y)
	v.SetDefault("trusswidth", def.TrussWidth)
	v.SetDefault("trussangle", def.TrussAngle)
	v.SetDefault("supportborderdistance", def.SupportBorderDistance)
	v.SetDefault("supportwallthickness", def.SupportWallThickness)
	v.SetDefault("tooth.a", def.Tooth.A)
	v.SetDefault("tooth.b", def.Tooth.B)
	v.SetDefault("tooth.c", def.Tooth.C)
	v.SetDefault("tooth.d", def.Tooth.D)
	v.SetDefault("supportteethupperpenetration", def.SupportTeethUpperPenetration)
	v.SetDefault("useuppersupportteeth", def.UseUpperSupportTeeth)
	v.SetDefault("uselowersupportteeth", def.UseLowerSupportTeeth)
	v.SetDefault("numskinmeshsubdivideiterations", def.NumSkinMeshSubdivideIterations)
	v.SetDefault("mergemesh", def.MergeMesh)
	v.SetDefault("useapproxbaseplatesupport", def.UseApproxBasePlateSupport)
}
