package vardct

import (
	"testing"

	"github.com/deepteams/jxl/internal/bitio"
)

func TestFrameHeaderRoundTrip(t *testing.T) {
	h := FrameHeader{
		Width:                1920,
		Height:               1080,
		ChannelCount:         3,
		Distance:             1.5,
		AdaptiveQuantization: true,
		UseANS:               true,
		PixelType:            PixelUint8,
		ColorTransform:       ColorTransformXYB,
		VariableBlockSize:    true,
		PassCount:            3,
	}
	w := bitio.NewWriter()
	EncodeFrameHeader(w, h)
	r := bitio.NewReader(w.Bytes())
	got, err := DecodeFrameHeader(r)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got != h {
		t.Fatalf("frame header round trip mismatch: got %+v want %+v", got, h)
	}
}

func TestFrameHeaderLosslessDistanceZero(t *testing.T) {
	h := FrameHeader{Width: 1, Height: 1, ChannelCount: 1, Distance: 0}
	w := bitio.NewWriter()
	EncodeFrameHeader(w, h)
	r := bitio.NewReader(w.Bytes())
	got, err := DecodeFrameHeader(r)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Distance != 0 {
		t.Fatalf("expected distance 0, got %v", got.Distance)
	}
}
