package modular

import "github.com/deepteams/jxl/internal/bitio"

// riceStats tracks a per-context Golomb-Rice parameter estimate from the
// zigzag magnitudes seen so far. Per spec.md §9 this statistic is
// advisory only: the emitted stream always uses varint coding regardless
// of what this tracker estimates, so decode correctness never depends on
// it. It exists purely as latitude for a future entropy backend.
type riceStats struct {
	sum   uint64
	count uint64
}

func (r *riceStats) observe(u int) {
	r.sum += uint64(u)
	r.count++
}

// riceParameter returns the advisory Rice parameter k such that 2^k
// approximates the mean magnitude tracked so far.
func (r *riceStats) riceParameter() int {
	if r.count == 0 {
		return 0
	}
	mean := r.sum / r.count
	k := 0
	for (uint64(1) << uint(k)) < mean+1 {
		k++
	}
	return k
}

// EncodeRunLength implements the context-modelled run-length entropy
// backend: residuals (already in coding/scan order) are zigzag-mapped,
// and runs of identical values are written as (varint value, varint
// run-1). contexts is the parallel per-position context sequence; it is
// not written to the stream (the decoder re-derives it from causal
// state) but is fed to the advisory Rice-parameter tracker here to
// mirror what a real encoder would maintain.
func EncodeRunLength(residuals []int, contexts []int) []byte {
	w := bitio.NewWriter()
	stats := make([]riceStats, NumEntropyContexts)

	i := 0
	for i < len(residuals) {
		u := ZigzagEncode(residuals[i])
		if contexts != nil {
			stats[contexts[i]].observe(u)
		}
		j := i + 1
		for j < len(residuals) && ZigzagEncode(residuals[j]) == u {
			j++
		}
		run := j - i
		w.WriteVarint(uint64(u))
		w.WriteVarint(uint64(run - 1))
		i = j
	}
	return w.Bytes()
}

// DecodeRunLength reconstructs exactly n residuals from data.
func DecodeRunLength(data []byte, n int) ([]int, error) {
	r := bitio.NewReader(data)
	out := make([]int, 0, n)
	for len(out) < n {
		u, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		runMinus1, err := r.ReadVarint()
		if err != nil {
			return nil, err
		}
		run := int(runMinus1) + 1
		v := ZigzagDecode(int(u))
		for k := 0; k < run; k++ {
			out = append(out, v)
		}
	}
	if len(out) != n {
		return nil, bitio.ErrUnexpectedEOF
	}
	return out, nil
}
