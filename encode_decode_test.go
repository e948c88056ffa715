package jxl

import (
	"math"
	"testing"
)

func TestDecodeLossless1x1Grayscale(t *testing.T) {
	frame := newTestFrame(1, 1, 1, ColorSpaceGrey)
	frame.SetPixel(0, 0, 0, 127)

	data, err := Encode(frame, EncodingOptions{Mode: ModeLossless()})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	hdr, err := DecodeHeader(data)
	if err != nil {
		t.Fatalf("header decode error: %v", err)
	}
	if hdr.Width != 1 || hdr.Height != 1 {
		t.Fatalf("unexpected dims: %+v", hdr)
	}

	out := newTestFrame(1, 1, 1, ColorSpaceGrey)
	if err := Decode(data, out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got := out.GetPixel(0, 0, 0); got != 127 {
		t.Fatalf("expected 127, got %d", got)
	}
}

func TestCodestreamBeginsWithSignature(t *testing.T) {
	frame := newTestFrame(1, 1, 1, ColorSpaceGrey)
	frame.SetPixel(0, 0, 0, 127)
	data, err := Encode(frame, EncodingOptions{Mode: ModeLossless()})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}
	codestream, err := extractCodestream(data)
	if err != nil {
		t.Fatalf("extract codestream error: %v", err)
	}
	if len(codestream) < 2 || codestream[0] != 0xFF || codestream[1] != 0x0A {
		t.Fatalf("codestream does not begin with FF 0A: %v", codestream[:2])
	}
}

func TestVarDCTDistance1SmallRGBRoundTrip(t *testing.T) {
	frame := newTestFrame(2, 2, 3, ColorSpaceRGB)
	corners := [4][3]uint16{
		{255, 0, 0}, // red
		{0, 255, 0}, // green
		{0, 0, 255}, // blue
		{255, 255, 255},
	}
	coords := [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// corners are 8-bit values; the frame holds them in the core's 16-bit
	// domain (x257), and the error below is measured back in 8-bit units.
	for i, c := range coords {
		for ch := 0; ch < 3; ch++ {
			frame.SetPixel(c[0], c[1], ch, corners[i][ch]*257)
		}
	}

	data, err := Encode(frame, EncodingOptions{Mode: ModeDistance(1)})
	if err != nil {
		t.Fatalf("encode error: %v", err)
	}

	out := newTestFrame(2, 2, 3, ColorSpaceRGB)
	if err := Decode(data, out); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	var sumAbs, count float64
	for i, c := range coords {
		for ch := 0; ch < 3; ch++ {
			want := float64(corners[i][ch])
			got := float64(out.GetPixel(c[0], c[1], ch)) / 257
			sumAbs += math.Abs(want - got)
			count++
		}
	}
	mean := sumAbs / count
	if mean > 4.0 {
		t.Fatalf("mean absolute error too high: %v", mean)
	}
}

func TestEncodeRejectsZeroDimension(t *testing.T) {
	frame := newTestFrame(0, 4, 1, ColorSpaceGrey)
	if _, err := Encode(frame, EncodingOptions{Mode: ModeLossless()}); err == nil {
		t.Fatalf("expected error for zero width")
	} else if kindErr, ok := err.(*Error); !ok || kindErr.Kind != KindDimensioning {
		t.Fatalf("expected KindDimensioning, got %v", err)
	}
}

func TestEncodeRejectsOversizedDimension(t *testing.T) {
	frame := newTestFrame(MaxDimensionPerAxis+1, 1, 1, ColorSpaceGrey)
	if _, err := Encode(frame, EncodingOptions{Mode: ModeLossless()}); err == nil {
		t.Fatalf("expected error for oversized width")
	} else if kindErr, ok := err.(*Error); !ok || kindErr.Kind != KindDimensioning {
		t.Fatalf("expected KindDimensioning, got %v", err)
	}
}

func TestQualityToDistanceBoundaries(t *testing.T) {
	cases := []struct {
		q    float64
		want float64
	}{
		{100, 0.0},
		{100.5, 0.0},
		{30, 0.1 + 70.0/10},
		{0, 7.0 + 30.0/3.75},
	}
	for _, c := range cases {
		if got := QualityToDistance(c.q); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("QualityToDistance(%v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestModeLosslessResolvesToLosslessPath(t *testing.T) {
	_, lossless := ModeLossless().resolveDistance()
	if !lossless {
		t.Fatalf("expected lossless mode to resolve lossless")
	}
	d, lossless := ModeDistance(0).resolveDistance()
	if !lossless || d != 0 {
		t.Fatalf("expected distance 0 to resolve lossless, got d=%v lossless=%v", d, lossless)
	}
	d, lossless = ModeLossy(100).resolveDistance()
	if !lossless || d != 0 {
		t.Fatalf("expected quality 100 to resolve lossless, got d=%v lossless=%v", d, lossless)
	}
	d, lossless = ModeLossy(50).resolveDistance()
	if lossless || d <= 0 {
		t.Fatalf("expected quality 50 to resolve lossy with positive distance, got d=%v lossless=%v", d, lossless)
	}
}
