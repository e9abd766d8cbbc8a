package support

import (
	"fmt"

	"github.com/amcore/slmsupport/geom3d"
	"github.com/amcore/slmsupport/primitives"
)

// RasterDepthMap is the default primitives.DepthRasterizer: it samples
// p's height field on a regular grid by casting a vertical ray per
// pixel via geom3d.CastZ — a float-height sampler over a 3D Part in the
// same spirit as a 2D mesh rasterizer, adapted from per-pixel RGBA fill
// to per-pixel height sampling.
type RasterDepthMap struct{}

var _ primitives.DepthRasterizer = RasterDepthMap{}

// Rasterize samples p's height field over bbox's XY extent at pixelSize
// spacing, casting along dir (+1 for first-hit-from-below/Upper,
// -1 for first-hit-from-above/Lower).
func (RasterDepthMap) Rasterize(p *geom3d.Part, pixelSize float64, dir geom3d.Vec3, bbox geom3d.AABB3) ([][]float64, error) {
	if pixelSize <= 0 {
		return nil, fmt.Errorf("support: pixelSize must be positive, got %v", pixelSize)
	}
	size := bbox.Size()
	w := int(size.X/pixelSize) + 1
	h := int(size.Y/pixelSize) + 1
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("support: degenerate bbox for rasterization")
	}

	rayDir := 1.0
	if dir.Z < 0 {
		rayDir = -1.0
	}

	grid := make([][]float64, h)
	for row := 0; row < h; row++ {
		grid[row] = make([]float64, w)
		y := bbox.Min.Y + float64(row)*pixelSize
		for col := 0; col < w; col++ {
			x := bbox.Min.X + float64(col)*pixelSize
			hit := geom3d.CastZ(p, x, y, rayDir)
			if hit.Hit {
				grid[row][col] = hit.Z
			} else {
				grid[row][col] = NoHit
			}
		}
	}
	return grid, nil
}

// heightMapFromGrids assembles a HeightMap from raw upper/lower float
// grids of identical dimensions.
func heightMapFromGrids(upper, lower [][]float64) *HeightMap {
	h := len(upper)
	w := 0
	if h > 0 {
		w = len(upper[0])
	}
	hm := NewHeightMap(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			hm.Set(col, row, upper[row][col], lower[row][col])
		}
	}
	return hm
}
