package entropy

import (
	"reflect"
	"strings"
	"testing"
)

func symbolsFromString(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = int(s[i])
	}
	return out
}

func TestLZ77GreedyParse(t *testing.T) {
	s := strings.Repeat("A", 16) + strings.Repeat("B", 16)
	symbols := symbolsFromString(s)
	tokens := lz77Parse(symbols, maxWindowSize)

	want := []lz77Token{
		{literal: 'A'},
		{isMatch: true, length: 15, distance: 1},
		{literal: 'B'},
		{isMatch: true, length: 15, distance: 1},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("got %+v want %+v", tokens, want)
	}
}

func TestLZ77RoundTrip(t *testing.T) {
	inputs := []string{
		strings.Repeat("A", 16) + strings.Repeat("B", 16),
		"the quick brown fox jumps over the lazy dog the quick brown fox",
		"",
		"x",
		strings.Repeat("ab", 200),
	}
	for _, s := range inputs {
		symbols := symbolsFromString(s)
		enc, err := EncodeLZ77(symbols, maxWindowSize)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		dec, err := DecodeLZ77(enc)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if len(symbols) == 0 {
			if len(dec) != 0 {
				t.Fatalf("expected empty decode, got %v", dec)
			}
			continue
		}
		if !reflect.DeepEqual(symbols, dec) {
			t.Fatalf("round trip mismatch for %q: got %v", s, dec)
		}
	}
}

func TestLZ77LargeAlphabet(t *testing.T) {
	symbols := make([]int, 1000)
	for i := range symbols {
		symbols[i] = i % 251
	}
	enc, err := EncodeLZ77(symbols, 1024)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := DecodeLZ77(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(symbols, dec) {
		t.Fatalf("round trip mismatch")
	}
}
