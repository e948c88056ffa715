package vardct

import (
	"math"
	"math/rand"
	"testing"
)

func randomFloatPlane(w, h int, rng *rand.Rand) *FloatPlane {
	p := NewFloatPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = rng.Float64() * 255
	}
	return p
}

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > m {
			m = d
		}
	}
	return m
}

func TestEncodeDecodeChannelLowDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := randomFloatPlane(16, 16, rng)
	orig := append([]float64(nil), p.Pix...)

	opts := FrameOptions{Distance: 0.1}
	body, _, err := EncodeChannel(p, false, nil, opts)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	dec, _, err := DecodeChannel(body, 16, 16, false, nil, opts)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if d := maxAbsDiff(orig, dec.Pix); d > 50 {
		t.Fatalf("reconstruction too far from original at low distance: maxdiff=%v", d)
	}
}

func TestEncodeDecodeChannelANS(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	p := randomFloatPlane(16, 8, rng)
	orig := append([]float64(nil), p.Pix...)

	opts := FrameOptions{Distance: 0.5, UseANS: true}
	body, _, err := EncodeChannel(p, false, nil, opts)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	dec, _, err := DecodeChannel(body, 16, 8, false, nil, opts)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if d := maxAbsDiff(orig, dec.Pix); d > 80 {
		t.Fatalf("ANS reconstruction too far from original: maxdiff=%v", d)
	}
}

func TestEncodeDecodeChannelProgressive(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	p := randomFloatPlane(8, 8, rng)

	opts := FrameOptions{Distance: 0.5, Progressive: true}
	body, _, err := EncodeChannel(p, false, nil, opts)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	dec, _, err := DecodeChannel(body, 8, 8, false, nil, opts)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if dec.W != 8 || dec.H != 8 {
		t.Fatalf("unexpected decoded plane dimensions")
	}
}

func TestEncodeDecodeChannelAdaptiveQuantization(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	p := randomFloatPlane(16, 16, rng)

	opts := FrameOptions{Distance: 0.5, AdaptiveQuantization: true}
	body, _, err := EncodeChannel(p, false, nil, opts)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	dec, _, err := DecodeChannel(body, 16, 16, false, nil, opts)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(dec.Pix) != 16*16 {
		t.Fatalf("unexpected decoded plane size")
	}
}

func TestEncodeDecodeFrameWithColorTransformAndCfL(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	w, h := 16, 16
	planes := []*FloatPlane{randomFloatPlane(w, h, rng), randomFloatPlane(w, h, rng), randomFloatPlane(w, h, rng)}

	opts := FrameOptions{Distance: 0.3, ColorTransform: ColorTransformYCbCr, PixelType: PixelUint8}
	enc, err := EncodeFrame(planes, opts)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	dec, err := DecodeFrame(enc, w, h, 3, opts)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(dec) != 3 {
		t.Fatalf("expected 3 channels back, got %d", len(dec))
	}
	for c, p := range dec {
		if d := maxAbsDiff(planes[c].Pix, p.Pix); d > 60 {
			t.Fatalf("channel %d reconstruction too far from original: maxdiff=%v", c, d)
		}
	}
}

func TestEncodeDecodeFrameLosslessDistanceZero(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	w, h := 8, 8
	planes := []*FloatPlane{randomFloatPlane(w, h, rng)}
	opts := FrameOptions{Distance: 0, ColorTransform: ColorTransformNone}
	enc, err := EncodeFrame(planes, opts)
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	dec, err := DecodeFrame(enc, w, h, 1, opts)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if d := maxAbsDiff(planes[0].Pix, dec[0].Pix); d > 5 {
		t.Fatalf("distance-0 reconstruction should be near-exact, maxdiff=%v", d)
	}
}
