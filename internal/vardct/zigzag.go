package vardct

import "sort"

// zigzagCache and naturalCache memoise scan order permutations by block
// dimensions, since the same block shapes recur throughout a frame.
var zigzagCache = map[[2]int][]int{}
var naturalCache = map[[2]int][]int{}

// ZigzagScan returns the coefficient-index permutation for a w x h block:
// scan[k] is the row-major coefficient index visited at scan position k.
// It walks antidiagonals of the (u,v) grid, alternating direction on each
// antidiagonal (the classic JPEG zigzag pattern generalised to
// rectangular blocks).
func ZigzagScan(w, h int) []int {
	key := [2]int{w, h}
	if s, ok := zigzagCache[key]; ok {
		return s
	}
	scan := make([]int, 0, w*h)
	for d := 0; d < w+h-1; d++ {
		var coords [][2]int
		for v := 0; v < h; v++ {
			u := d - v
			if u < 0 || u >= w {
				continue
			}
			coords = append(coords, [2]int{u, v})
		}
		if d%2 == 0 {
			// even antidiagonals run bottom-to-top (increasing u)
			for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
				coords[i], coords[j] = coords[j], coords[i]
			}
		}
		for _, c := range coords {
			u, v := c[0], c[1]
			scan = append(scan, v*w+u)
		}
	}
	zigzagCache[key] = scan
	return scan
}

// NaturalScan orders coefficients by ascending frequency u²+v², breaking
// ties by row then column. Both ZigzagScan and NaturalScan are
// permutations of [0, w*h) and therefore self-inverse under
// InversePermutation.
func NaturalScan(w, h int) []int {
	key := [2]int{w, h}
	if s, ok := naturalCache[key]; ok {
		return s
	}
	type entry struct {
		idx   int
		u, v  int
		order int
	}
	entries := make([]entry, 0, w*h)
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			entries = append(entries, entry{idx: v*w + u, u: u, v: v, order: u*u + v*v})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].order != entries[j].order {
			return entries[i].order < entries[j].order
		}
		if entries[i].v != entries[j].v {
			return entries[i].v < entries[j].v
		}
		return entries[i].u < entries[j].u
	})
	scan := make([]int, len(entries))
	for i, e := range entries {
		scan[i] = e.idx
	}
	naturalCache[key] = scan
	return scan
}

// InversePermutation returns perm's inverse: for a scan order, this maps
// a row-major coefficient index back to its scan position.
func InversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for pos, idx := range perm {
		inv[idx] = pos
	}
	return inv
}

// ApplyScan reorders block (row-major, length w*h) into scan order.
func ApplyScan(block []float64, scan []int) []float64 {
	out := make([]float64, len(block))
	for pos, idx := range scan {
		out[pos] = block[idx]
	}
	return out
}

// UnapplyScan is ApplyScan's inverse, restoring row-major order from a
// scan-ordered sequence.
func UnapplyScan(scanned []float64, scan []int) []float64 {
	out := make([]float64, len(scanned))
	for pos, idx := range scan {
		out[idx] = scanned[pos]
	}
	return out
}
