package vardct

import (
	"math"
	"math/rand"
	"testing"
)

func TestDCTRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, dims := range [][2]int{{8, 8}, {16, 16}, {32, 32}, {16, 8}, {8, 16}, {32, 8}, {8, 32}, {32, 16}, {16, 32}} {
		w, h := dims[0], dims[1]
		block := make([]float64, w*h)
		for i := range block {
			block[i] = rng.Float64()*255 - 127
		}
		coeffs := ForwardDCT2D(block, w, h)
		back := InverseDCT2D(coeffs, w, h)
		for i := range block {
			if math.Abs(block[i]-back[i]) > 1e-6 {
				t.Fatalf("%dx%d DCT round trip mismatch at %d: got %v want %v", w, h, i, back[i], block[i])
			}
		}
	}
}

func TestDCTConstantBlockIsolatesDC(t *testing.T) {
	w, h := 8, 8
	block := make([]float64, w*h)
	for i := range block {
		block[i] = 42
	}
	coeffs := ForwardDCT2D(block, w, h)
	for i, c := range coeffs {
		if i == 0 {
			continue
		}
		if math.Abs(c) > 1e-6 {
			t.Fatalf("expected zero AC coefficient at %d for constant block, got %v", i, c)
		}
	}
	if coeffs[0] <= 0 {
		t.Fatalf("expected positive DC coefficient, got %v", coeffs[0])
	}
}

func TestDCTOrthonormal(t *testing.T) {
	// Parseval: the sum of squares should be preserved by an orthonormal
	// transform.
	rng := rand.New(rand.NewSource(9))
	w, h := 8, 8
	block := make([]float64, w*h)
	var sumSquaresIn float64
	for i := range block {
		block[i] = rng.Float64()*100 - 50
		sumSquaresIn += block[i] * block[i]
	}
	coeffs := ForwardDCT2D(block, w, h)
	var sumSquaresOut float64
	for _, c := range coeffs {
		sumSquaresOut += c * c
	}
	if math.Abs(sumSquaresIn-sumSquaresOut) > 1e-6 {
		t.Fatalf("Parseval check failed: in=%v out=%v", sumSquaresIn, sumSquaresOut)
	}
}
