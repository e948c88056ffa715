package vardct

import (
	"math"
	"testing"
)

func TestQBaseLosslessAtZeroDistance(t *testing.T) {
	if QBase(0) != 1 {
		t.Fatalf("expected qBase=1 at distance 0, got %v", QBase(0))
	}
}

func TestQBaseScalesWithDistance(t *testing.T) {
	if got := QBase(1); got != 8 {
		t.Fatalf("expected qBase=8 at distance 1, got %v", got)
	}
	if got := QBase(2.5); got != 20 {
		t.Fatalf("expected qBase=20 at distance 2.5, got %v", got)
	}
}

func TestActivityScaleMonotonic(t *testing.T) {
	opts := QuantOptions{}
	opts.setDefaults()
	low := ActivityScale(0.0, opts)
	high := ActivityScale(1.0, opts)
	if !(low < high) {
		t.Fatalf("expected activity scale to increase with activity: low=%v high=%v", low, high)
	}
}

func TestQuantizeDequantizeApproximatesOriginal(t *testing.T) {
	w, h := 8, 8
	coeffs := make([]float64, w*h)
	for i := range coeffs {
		coeffs[i] = float64(i) * 3.5
	}
	qBase := QBase(1.0)
	levels := Quantize(coeffs, w, h, qBase, 1.0, false, 1.0)
	back := Dequantize(levels, w, h, qBase, 1.0, false, 1.0)
	for i := range coeffs {
		step := QuantStep(qBase, i%w, i/w, 1.0, false, 1.0)
		if math.Abs(coeffs[i]-back[i]) > step {
			t.Fatalf("dequantised coefficient %d too far from original: got %v want ~%v (step %v)", i, back[i], coeffs[i], step)
		}
	}
}

func TestQuantizeLosslessAtZeroDistanceWithUnitScale(t *testing.T) {
	// At distance 0 (qBase clamped to 1) with unit activity scale and a
	// block position where the multipliers reduce to 1 (u=v=0, luma),
	// quantisation must be the identity on integers.
	levels := Quantize([]float64{7}, 1, 1, QBase(0), 1.0, false, 1.0)
	if levels[0] != 7 {
		t.Fatalf("expected exact integer preservation at distance 0, got %d", levels[0])
	}
}

func TestChromaStepIsLarger(t *testing.T) {
	lumaStep := QuantStep(8, 2, 2, 1.0, false, 1.0)
	chromaStep := QuantStep(8, 2, 2, 1.0, true, 1.0)
	if chromaStep != lumaStep*1.5 {
		t.Fatalf("expected chroma step to be 1.5x luma step: luma=%v chroma=%v", lumaStep, chromaStep)
	}
}
