package vardct

import "math"

// cflEpsilon guards against dividing by a near-zero luma energy, below
// which the slope is defined to be zero (an essentially flat luma block
// carries no useful chroma prediction).
const cflEpsilon = 1e-10

// CfLSlope computes the least-squares chroma-from-luma slope over AC
// coefficient positions only (index 0, the DC term, is excluded since DC
// is handled separately by DC prediction). luma and chroma must be
// equal-length coefficient slices in the same coefficient ordering.
func CfLSlope(luma, chroma []float64) float64 {
	var sumLC, sumLL float64
	for i := 1; i < len(luma) && i < len(chroma); i++ {
		sumLC += luma[i] * chroma[i]
		sumLL += luma[i] * luma[i]
	}
	if sumLL < cflEpsilon {
		return 0
	}
	return sumLC / sumLL
}

// QuantizeCfLSlope rounds alpha*256 to the nearest integer, the form
// written to the bitstream as a signed varint.
func QuantizeCfLSlope(alpha float64) int {
	return int(math.Round(alpha * 256))
}

// DequantizeCfLSlope is QuantizeCfLSlope's inverse.
func DequantizeCfLSlope(q int) float64 {
	return float64(q) / 256
}

// ApplyCfLForward subtracts alpha*luma from every AC position of chroma,
// leaving the DC position (index 0) untouched.
func ApplyCfLForward(chroma, luma []float64, alpha float64) []float64 {
	out := make([]float64, len(chroma))
	out[0] = chroma[0]
	for i := 1; i < len(chroma); i++ {
		out[i] = chroma[i] - alpha*luma[i]
	}
	return out
}

// ApplyCfLInverse reconstructs the original chroma AC coefficients from
// the residual produced by ApplyCfLForward.
func ApplyCfLInverse(residual, luma []float64, alpha float64) []float64 {
	out := make([]float64, len(residual))
	out[0] = residual[0]
	for i := 1; i < len(residual); i++ {
		out[i] = residual[i] + alpha*luma[i]
	}
	return out
}
