package vardct

// PassBoundaries are the fixed zigzag-index ranges [start,end) of a
// 3-pass progressive VarDCT refinement: pass 0 is DC-only, pass 1 is the
// low-frequency AC band, pass 2 is everything else. For blocks larger
// than 8x8 (more than 64 coefficients), the final pass simply extends to
// cover the remainder.
var PassBoundaries = [][2]int{
	{0, 1},
	{1, 16},
	{16, 64},
}

// NumPasses is the fixed progressive pass count.
const NumPasses = 3

// PassRange returns the [start,end) zigzag-index range covered by pass p
// for a block with n total coefficients, clamped to n.
func PassRange(pass, n int) (start, end int) {
	if pass < 0 || pass >= NumPasses {
		return 0, 0
	}
	b := PassBoundaries[pass]
	start, end = b[0], b[1]
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if pass == NumPasses-1 {
		end = n
	}
	return start, end
}

// PassHeader is the 1-byte framing marker written before each pass's
// payload.
type PassHeader struct {
	PassIndex byte
}

// SplitIntoPasses partitions a scan-ordered coefficient slice (length n)
// into NumPasses contiguous sub-slices per PassRange.
func SplitIntoPasses(scanned []int) [][]int {
	n := len(scanned)
	out := make([][]int, NumPasses)
	for p := 0; p < NumPasses; p++ {
		start, end := PassRange(p, n)
		if start > end {
			start = end
		}
		out[p] = scanned[start:end]
	}
	return out
}

// MergePasses is SplitIntoPasses's inverse, reassembling the full
// scan-ordered coefficient slice from its passes.
func MergePasses(passes [][]int, n int) []int {
	out := make([]int, n)
	for p := 0; p < NumPasses && p < len(passes); p++ {
		start, _ := PassRange(p, n)
		copy(out[start:], passes[p])
	}
	return out
}
