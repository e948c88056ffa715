package jxlimage

import (
	"image"

	"golang.org/x/image/draw"
)

// DownscaleActivityMap resamples src to a w x h grayscale activity map,
// used to feed jxl.RegionOfInterest.DistanceMultiplier a coarse per-block
// estimate of local detail without having to scan the full-resolution
// frame on every lookup. Bilinear resampling (rather than a simple box
// average) keeps the falloff a ROI's DistanceMultiplier applies smooth
// across block boundaries.
func DownscaleActivityMap(src *image.Gray, w, h int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
