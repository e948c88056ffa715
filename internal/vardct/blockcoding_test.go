package vardct

import (
	"reflect"
	"testing"

	"github.com/deepteams/jxl/internal/bitio"
)

func TestBlockNonANSRoundTrip(t *testing.T) {
	cases := []struct {
		dc int
		ac []int
	}{
		{0, []int{0, 0, 0, 0, 0, 0, 0}},
		{42, []int{1, 0, 0, -5, 0, 0, 0}},
		{-7, []int{0, 0, 0, 0, 0, 0, 3}},
		{100, make([]int, 63)},
	}
	for _, c := range cases {
		w := bitio.NewWriter()
		EncodeBlockNonANS(w, c.dc, c.ac)
		r := bitio.NewReader(w.Bytes())
		dc, ac, err := DecodeBlockNonANS(r, len(c.ac))
		if err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if dc != c.dc {
			t.Fatalf("DC mismatch: got %d want %d", dc, c.dc)
		}
		if !reflect.DeepEqual(ac, c.ac) {
			t.Fatalf("AC mismatch: got %v want %v", ac, c.ac)
		}
	}
}

func TestBlockNonANSMultipleBlocksSequential(t *testing.T) {
	w := bitio.NewWriter()
	EncodeBlockNonANS(w, 5, []int{1, 0, 0})
	EncodeBlockNonANS(w, -3, []int{0, 2, 0})
	r := bitio.NewReader(w.Bytes())

	dc1, ac1, err := DecodeBlockNonANS(r, 3)
	if err != nil || dc1 != 5 || !reflect.DeepEqual(ac1, []int{1, 0, 0}) {
		t.Fatalf("first block mismatch: dc=%d ac=%v err=%v", dc1, ac1, err)
	}
	dc2, ac2, err := DecodeBlockNonANS(r, 3)
	if err != nil || dc2 != -3 || !reflect.DeepEqual(ac2, []int{0, 2, 0}) {
		t.Fatalf("second block mismatch: dc=%d ac=%v err=%v", dc2, ac2, err)
	}
}
