package entropy

// Precision is the fixed total T to which every distribution's frequencies
// must sum.
const Precision = 4096

// MaxAlphabet is the largest supported alphabet size.
const MaxAlphabet = 256

// symbolSlot is one entry of the reverse lookup table: which symbol owns
// ANS slot s, its frequency, and the start of its cumulative range.
type symbolSlot struct {
	symbol   uint16
	freq     uint16
	cumStart uint16
}

// Distribution is an immutable probability distribution over symbols
// [0, alphabetSize) with frequencies summing to exactly Precision.
type Distribution struct {
	alphabetSize int
	freq         []uint16 // per-symbol frequency
	cumStart     []uint32 // per-symbol cumulative start, len alphabetSize+1
	lut          []symbolSlot
}

// AlphabetSize returns the number of symbols this distribution covers.
func (d *Distribution) AlphabetSize() int { return d.alphabetSize }

// Freq returns the frequency of symbol s.
func (d *Distribution) Freq(s int) uint16 { return d.freq[s] }

// CumStart returns the cumulative frequency start of symbol s.
func (d *Distribution) CumStart(s int) uint32 { return d.cumStart[s] }

// Lookup maps an ANS slot in [0, Precision) to its owning symbol, that
// symbol's frequency, and its cumulative start.
func (d *Distribution) Lookup(slot uint32) (symbol int, freq uint32, cumStart uint32) {
	e := d.lut[slot]
	return int(e.symbol), uint32(e.freq), uint32(e.cumStart)
}

// NewDistribution builds an immutable Distribution from raw non-negative
// symbol counts. It scales counts proportionally to Precision, guarantees
// every symbol with a non-zero count keeps freq >= 1, and redistributes
// any rounding remainder to the largest-frequency symbols via a bounded
// repair loop so the result sums to exactly Precision.
func NewDistribution(counts []uint64) (*Distribution, error) {
	if len(counts) == 0 || len(counts) > MaxAlphabet {
		return nil, ErrEmptyDistribution
	}
	var total uint64
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil, ErrEmptyDistribution
	}

	freq := make([]uint32, len(counts))
	var sum uint64
	for i, c := range counts {
		if c == 0 {
			continue
		}
		f := c * Precision / total
		if f == 0 {
			f = 1
		}
		freq[i] = uint32(f)
		sum += uint64(f)
	}

	repairDistribution(freq, counts, int64(Precision)-int64(sum))

	d := &Distribution{alphabetSize: len(counts)}
	d.freq = make([]uint16, len(counts))
	d.cumStart = make([]uint32, len(counts)+1)
	d.lut = make([]symbolSlot, Precision)
	var cum uint32
	for i, f := range freq {
		d.freq[i] = uint16(f)
		d.cumStart[i] = cum
		for s := uint32(0); s < f; s++ {
			d.lut[cum+s] = symbolSlot{symbol: uint16(i), freq: uint16(f), cumStart: uint16(cum)}
		}
		cum += f
	}
	d.cumStart[len(counts)] = cum
	if cum != Precision {
		return nil, ErrSumMismatch
	}
	return d, nil
}

// repairDistribution redistributes diff (positive: add, negative: remove)
// across the largest-frequency symbols, refusing to push a symbol with a
// non-zero raw count below freq 1. Bounded to len(freq)+Precision iterations so a
// pathological input cannot loop indefinitely.
func repairDistribution(freq []uint32, counts []uint64, diff int64) {
	for iter := 0; diff != 0 && iter < len(freq)+Precision; iter++ {
		best := -1
		for i := range freq {
			if diff > 0 {
				if best == -1 || freq[i] > freq[best] {
					best = i
				}
			} else {
				if counts[i] == 0 || freq[i] <= 1 {
					continue
				}
				if best == -1 || freq[i] > freq[best] {
					best = i
				}
			}
		}
		if best == -1 {
			break
		}
		if diff > 0 {
			freq[best]++
			diff--
		} else {
			freq[best]--
			diff++
		}
	}
}

// NewDistributionFromFreq rebuilds a Distribution directly from a
// pre-normalised frequency table (used by deserialisation), validating
// that it sums to exactly Precision.
func NewDistributionFromFreq(freq []uint16) (*Distribution, error) {
	if len(freq) == 0 || len(freq) > MaxAlphabet {
		return nil, ErrEmptyDistribution
	}
	var sum uint32
	for _, f := range freq {
		sum += uint32(f)
	}
	if sum != Precision {
		return nil, ErrSumMismatch
	}
	d := &Distribution{alphabetSize: len(freq)}
	d.freq = append([]uint16(nil), freq...)
	d.cumStart = make([]uint32, len(freq)+1)
	d.lut = make([]symbolSlot, Precision)
	var cum uint32
	for i, f := range freq {
		d.cumStart[i] = cum
		for s := uint32(0); s < uint32(f); s++ {
			d.lut[cum+s] = symbolSlot{symbol: uint16(i), freq: f, cumStart: uint16(cum)}
		}
		cum += uint32(f)
	}
	d.cumStart[len(freq)] = cum
	return d, nil
}

// Equal reports whether two distributions have identical frequency tables.
func (d *Distribution) Equal(o *Distribution) bool {
	if d.alphabetSize != o.alphabetSize {
		return false
	}
	for i := range d.freq {
		if d.freq[i] != o.freq[i] {
			return false
		}
	}
	return true
}
