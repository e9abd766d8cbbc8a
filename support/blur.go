package support

import (
	"image"

	"github.com/disintegration/imaging"
)

// gaussianBlur smooths a float64 depth grid with a Gaussian kernel of
// the given sigma, delegating to disintegration/imaging's Blur rather
// than hand-rolling convolution. Depth values are normalized into a
// 16-bit grayscale image (enough dynamic range for millimeter-scale
// depth maps sampled at sub-millimeter resolution) since imaging
// operates on image.Image, then decoded back to float64 afterward.
func gaussianBlur(grid [][]float64, sigma float64) [][]float64 {
	h := len(grid)
	if h == 0 {
		return grid
	}
	w := len(grid[0])

	lo, hi := gridExtent(grid)
	if hi <= lo {
		return grid
	}

	img := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := grid[y][x]
			if v == NoHit {
				v = lo
			}
			norm := (v - lo) / (hi - lo)
			img.SetGray16(x, y, colorGray16(norm))
		}
	}

	blurred := imaging.Blur(img, sigma)

	out := make([][]float64, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			c := blurred.At(x, y)
			gr, _, _, _ := c.RGBA()
			norm := float64(gr) / 65535
			out[y][x] = lo + norm*(hi-lo)
		}
	}
	return out
}

func gridExtent(grid [][]float64) (lo, hi float64) {
	lo, hi = NoHit, NoHit
	first := true
	for _, row := range grid {
		for _, v := range row {
			if v == NoHit {
				continue
			}
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if first {
		return 0, 0
	}
	return lo, hi
}

func colorGray16(norm float64) uint16 {
	if norm < 0 {
		norm = 0
	}
	if norm > 1 {
		norm = 1
	}
	return uint16(norm * 65535)
}
