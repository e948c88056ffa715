// Package vardct implements the lossy VarDCT pipeline: YCbCr/XYB colour
// transforms, variable-size 2D DCT, chroma-from-luma prediction, DC
// prediction between blocks, adaptive quantisation, zigzag/natural
// coefficient ordering, and progressive pass partitioning.
package vardct

import "math"

// PixelType mirrors the frame header's pixel-type tag, which determines
// the normalisation offset used by the YCbCr transform.
type PixelType int

const (
	PixelUint8 PixelType = iota
	PixelUint16
	PixelFloat32
)

// chromaOffsetFor returns the "max/2" recentring offset for YCbCr chroma
// planes, per the storage pixel type.
func chromaOffsetFor(pt PixelType) float64 {
	switch pt {
	case PixelUint8:
		return 128
	default: // uint16 and float32 both live in the 16-bit domain here
		return 32768
	}
}

// ForwardYCbCr converts one RGB triple (each in the pixel type's native
// range, already normalised to the 16-bit domain used throughout the
// core) to BT.601 YCbCr as unnormalised floats.
func ForwardYCbCr(r, g, b float64, pt PixelType) (y, cb, cr float64) {
	offset := chromaOffsetFor(pt)
	y = 0.299*r + 0.587*g + 0.114*b
	cb = -0.168736*r - 0.331264*g + 0.5*b + offset
	cr = 0.5*r - 0.418688*g - 0.081312*b + offset
	return
}

// inverseYCbCrMatrix is the exact inverse of ForwardYCbCr's coefficient
// matrix.
var inverseYCbCrMatrix = invert3x3([3][3]float64{
	{0.299, 0.587, 0.114},
	{-0.168736, -0.331264, 0.5},
	{0.5, -0.418688, -0.081312},
})

// InverseYCbCr is the closed-form inverse of ForwardYCbCr.
func InverseYCbCr(y, cb, cr float64, pt PixelType) (r, g, b float64) {
	offset := chromaOffsetFor(pt)
	cbc := cb - offset
	crc := cr - offset
	m := &inverseYCbCrMatrix
	r = m[0][0]*y + m[0][1]*cbc + m[0][2]*crc
	g = m[1][0]*y + m[1][1]*cbc + m[1][2]*crc
	b = m[2][0]*y + m[2][1]*cbc + m[2][2]*crc
	return
}

// Opsin absorbance matrix and cube-root transfer constants (spec.md §9
// GLOSSARY), fixed by the XYB colour space definition.
var opsinMatrix = [3][3]float64{
	{0.30078125, 0.63046875, 0.06875},
	{0.23046875, 0.69531250, 0.07421875},
	{0.24218750, 0.07812500, 0.67968750},
}

const xybBias = 0.00379246

var cubeRootBias = math.Cbrt(xybBias)

func cubeRootTransfer(x float64) float64 {
	if x < 0 {
		x = 0
	}
	return math.Cbrt(x+xybBias) - cubeRootBias
}

func inverseCubeRootTransfer(v float64) float64 {
	t := v + cubeRootBias
	return t*t*t - xybBias
}

// ForwardXYB converts one RGB triple, normalised to [0,1], into JPEG XL's
// XYB perceptual colour space.
func ForwardXYB(r, g, b float64) (x, y, bb float64) {
	l := opsinMatrix[0][0]*r + opsinMatrix[0][1]*g + opsinMatrix[0][2]*b
	m := opsinMatrix[1][0]*r + opsinMatrix[1][1]*g + opsinMatrix[1][2]*b
	s := opsinMatrix[2][0]*r + opsinMatrix[2][1]*g + opsinMatrix[2][2]*b

	lp := cubeRootTransfer(l)
	mp := cubeRootTransfer(m)
	sp := cubeRootTransfer(s)

	x = (lp - mp) / 2
	y = (lp + mp) / 2
	bb = sp
	return
}

// inverseOpsinMatrix is the fixed 3x3 inverse of opsinMatrix, computed
// once at init time.
var inverseOpsinMatrix [3][3]float64

func init() {
	inverseOpsinMatrix = invert3x3(opsinMatrix)
}

func invert3x3(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	invDet := 1 / det
	var out [3][3]float64
	out[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	out[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	out[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	out[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	out[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	out[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	out[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	out[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	out[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return out
}

// InverseXYB reconstructs RGB in [0,1] from an XYB triple.
func InverseXYB(x, y, bb float64) (r, g, b float64) {
	lp := x + y
	mp := y - x
	sp := bb

	l := inverseCubeRootTransfer(lp)
	m := inverseCubeRootTransfer(mp)
	s := inverseCubeRootTransfer(sp)

	r = inverseOpsinMatrix[0][0]*l + inverseOpsinMatrix[0][1]*m + inverseOpsinMatrix[0][2]*s
	g = inverseOpsinMatrix[1][0]*l + inverseOpsinMatrix[1][1]*m + inverseOpsinMatrix[1][2]*s
	b = inverseOpsinMatrix[2][0]*l + inverseOpsinMatrix[2][1]*m + inverseOpsinMatrix[2][2]*s
	return
}
