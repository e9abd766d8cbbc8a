package support

import "math"

// sobelMagnitude computes the Sobel gradient magnitude of grid, treating
// NoHit cells as background (magnitude 0, since a no-hit cell carries no
// depth discontinuity information worth segmenting on).
func sobelMagnitude(grid [][]float64) [][]float64 {
	h := len(grid)
	if h == 0 {
		return nil
	}
	w := len(grid[0])

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		v := grid[y][x]
		if v == NoHit {
			return 0
		}
		return v
	}

	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			gx := (at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x-1, y) + at(x-1, y+1))
			gy := (at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)) -
				(at(x-1, y-1) + 2*at(x, y-1) + at(x+1, y-1))
			out[y][x] = math.Hypot(gx, gy)
		}
	}
	return out
}

// isoRegions labels connected components of magnitude that are below
// tau (smooth, contiguous depth) and whose combined height exceeds
// 2mm — the iso-contour segmentation step that splits one overhang
// patch into per-sub-region pixel masks wherever the depth map changes
// sharply enough to cross tau, treating those high-gradient pixels as
// the boundary between sub-regions rather than part of either. The
// height mask excludes background/no-hit pixels (height <= 2, which
// includes NoHit since it's -Inf) from ever seeding or joining a
// region, so a zero-gradient background never gets swept into a real
// sub-region (4-connected flood fill).
func isoRegions(magnitude, height [][]float64, tau float64) [][][2]int {
	h := len(magnitude)
	if h == 0 {
		return nil
	}
	w := len(magnitude[0])

	in := func(x, y int) bool {
		return magnitude[y][x] < tau && height[y][x] > 2
	}

	visited := make([][]bool, h)
	for i := range visited {
		visited[i] = make([]bool, w)
	}

	var regions [][][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y][x] || !in(x, y) {
				continue
			}
			var region [][2]int
			queue := [][2]int{{x, y}}
			visited[y][x] = true
			for len(queue) > 0 {
				cur := queue[len(queue)-1]
				queue = queue[:len(queue)-1]
				region = append(region, cur)
				cx, cy := cur[0], cur[1]
				for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || visited[ny][nx] {
						continue
					}
					if !in(nx, ny) {
						continue
					}
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
