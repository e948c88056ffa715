package vardct

// BlockSize identifies one of the 9 admissible VarDCT block shapes by a
// stable integer tag, used both in the bitstream and as a map key.
type BlockSize int

const (
	Block8x8 BlockSize = iota
	Block16x16
	Block32x32
	Block16x8
	Block8x16
	Block32x8
	Block8x32
	Block32x16
	Block16x32
)

type blockDims struct{ w, h int }

var blockDimsTable = map[BlockSize]blockDims{
	Block8x8:   {8, 8},
	Block16x16: {16, 16},
	Block32x32: {32, 32},
	Block16x8:  {16, 8},
	Block8x16:  {8, 16},
	Block32x8:  {32, 8},
	Block8x32:  {8, 32},
	Block32x16: {32, 16},
	Block16x32: {16, 32},
}

// Dims returns the (width, height) in samples for a block size tag.
func (bs BlockSize) Dims() (w, h int) {
	d := blockDimsTable[bs]
	return d.w, d.h
}

// AllBlockSizes lists every admissible shape in the fixed tag order used
// by the bitstream.
var AllBlockSizes = []BlockSize{
	Block8x8, Block16x16, Block32x32,
	Block16x8, Block8x16,
	Block32x8, Block8x32,
	Block32x16, Block16x32,
}

// blockVariance computes the sample variance of a w x h region of plane
// src anchored at (x0,y0), clamped to the plane's bounds.
func blockVariance(src []float64, stride, x0, y0, w, h int) float64 {
	var sum, sumSq float64
	n := 0
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			v := src[y*stride+x]
			sum += v
			sumSq += v * v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

// SelectBlockSize picks one of the 9 admissible shapes for the maxW x
// maxH region of a luma plane anchored at (x0,y0), by comparing the
// variance of the full candidate region against the variance of its four
// quadrants: a region whose quadrants vary wildly relative to the whole
// is better served by smaller, more numerous blocks, while a flat or
// smoothly varying region benefits from one large block's lower per-block
// header overhead. Anisotropic regions (horizontal structure differing
// strongly from vertical) prefer a non-square shape aligned with the
// dominant direction.
func SelectBlockSize(src []float64, stride, x0, y0, maxW, maxH int) BlockSize {
	if maxW >= 32 && maxH >= 32 {
		return selectAt32(src, stride, x0, y0)
	}
	if maxW >= 16 && maxH >= 16 {
		return selectAt16(src, stride, x0, y0)
	}
	return Block8x8
}

func selectAt32(src []float64, stride, x0, y0 int) BlockSize {
	full := blockVariance(src, stride, x0, y0, 32, 32)
	quad := 0.0
	for _, off := range [][2]int{{0, 0}, {16, 0}, {0, 16}, {16, 16}} {
		quad += blockVariance(src, stride, x0+off[0], y0+off[1], 16, 16)
	}
	quad /= 4
	horiz := blockVariance(src, stride, x0, y0, 32, 8)
	vert := blockVariance(src, stride, x0, y0, 8, 32)

	if quad > full*1.5 {
		return selectAt16(src, stride, x0, y0)
	}
	if horiz < vert*0.5 {
		return Block32x8
	}
	if vert < horiz*0.5 {
		return Block8x32
	}
	return Block32x32
}

func selectAt16(src []float64, stride, x0, y0 int) BlockSize {
	full := blockVariance(src, stride, x0, y0, 16, 16)
	quad := 0.0
	for _, off := range [][2]int{{0, 0}, {8, 0}, {0, 8}, {8, 8}} {
		quad += blockVariance(src, stride, x0+off[0], y0+off[1], 8, 8)
	}
	quad /= 4
	if quad > full*1.5 {
		return Block8x8
	}
	horiz := blockVariance(src, stride, x0, y0, 16, 8)
	vert := blockVariance(src, stride, x0, y0, 8, 16)
	if horiz < vert*0.5 {
		return Block16x8
	}
	if vert < horiz*0.5 {
		return Block8x16
	}
	return Block16x16
}
