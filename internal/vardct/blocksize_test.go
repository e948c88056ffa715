package vardct

import "testing"

func TestSelectBlockSizeFlatRegionPrefersLarge(t *testing.T) {
	stride := 64
	src := make([]float64, stride*64)
	for i := range src {
		src[i] = 10
	}
	bs := SelectBlockSize(src, stride, 0, 0, 32, 32)
	if bs != Block32x32 {
		t.Fatalf("expected Block32x32 for flat region, got %v", bs)
	}
}

func TestSelectBlockSizeNoisyRegionPrefersSmall(t *testing.T) {
	stride := 64
	src := make([]float64, stride*64)
	seed := 1
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			seed = (seed*1103515245 + 12345) & 0x7fffffff
			// Concentrate noise in only one quadrant so the whole-region
			// variance is much lower than the per-quadrant variance.
			if x < 16 && y < 16 {
				src[y*stride+x] = float64(seed % 200)
			} else {
				src[y*stride+x] = 10
			}
		}
	}
	bs := SelectBlockSize(src, stride, 0, 0, 32, 32)
	if bs == Block32x32 {
		t.Fatalf("expected a subdivided block size for an uneven region, got %v", bs)
	}
}

func TestAllBlockSizesDimsAreAdmissible(t *testing.T) {
	want := map[BlockSize][2]int{
		Block8x8: {8, 8}, Block16x16: {16, 16}, Block32x32: {32, 32},
		Block16x8: {16, 8}, Block8x16: {8, 16},
		Block32x8: {32, 8}, Block8x32: {8, 32},
		Block32x16: {32, 16}, Block16x32: {16, 32},
	}
	for _, bs := range AllBlockSizes {
		w, h := bs.Dims()
		exp := want[bs]
		if w != exp[0] || h != exp[1] {
			t.Fatalf("block size %v: got dims (%d,%d) want (%d,%d)", bs, w, h, exp[0], exp[1])
		}
	}
	if len(AllBlockSizes) != 9 {
		t.Fatalf("expected 9 admissible block shapes, got %d", len(AllBlockSizes))
	}
}
