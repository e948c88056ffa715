package modular

import (
	"math/rand"
	"reflect"
	"testing"
)

func randomPlane(w, h int, rng *rand.Rand) *Plane {
	p := NewPlane(w, h)
	for i := range p.Pix {
		p.Pix[i] = rng.Intn(65536)
	}
	return p
}

func TestEncodeDecodeChannelLossless(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, useANS := range []bool{false, true} {
		for _, effort := range []int{1, 7, 10} {
			opts := Options{Effort: effort, UseANS: useANS}
			p := randomPlane(9, 11, rng)
			orig := append([]int(nil), p.Pix...)

			enc, err := EncodeChannel(p, 0, opts)
			if err != nil {
				t.Fatalf("ans=%v effort=%d: encode: %v", useANS, effort, err)
			}
			dec, err := DecodeChannel(enc, 9, 11, 0, opts)
			if err != nil {
				t.Fatalf("ans=%v effort=%d: decode: %v", useANS, effort, err)
			}
			if !reflect.DeepEqual(dec.Pix, orig) {
				t.Fatalf("ans=%v effort=%d: round trip mismatch", useANS, effort)
			}
		}
	}
}

func TestEncodeDecodeImageRCT(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	w, h := 6, 6
	planes := []*Plane{randomPlane(w, h, rng), randomPlane(w, h, rng), randomPlane(w, h, rng)}
	var origs [][]int
	for _, p := range planes {
		origs = append(origs, append([]int(nil), p.Pix...))
	}

	opts := Options{Effort: 7, UseANS: true}
	enc, err := EncodeImage(planes, opts, true)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := DecodeImage(enc, w, h, 3, opts, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range dec {
		if !reflect.DeepEqual(p.Pix, origs[i]) {
			t.Fatalf("channel %d mismatch after RCT round trip", i)
		}
	}
}

func TestSinglePixelGrayscale(t *testing.T) {
	p := NewPlane(1, 1)
	p.Set(0, 0, 127)
	opts := Options{Effort: 1}
	enc, err := EncodeChannel(p, 0, opts)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := DecodeChannel(enc, 1, 1, 0, opts)
	if err != nil {
		t.Fatal(err)
	}
	if dec.At(0, 0) != 127 {
		t.Fatalf("got %d want 127", dec.At(0, 0))
	}
}
