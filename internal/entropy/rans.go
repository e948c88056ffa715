package entropy

import "encoding/binary"

// State bounds. After renormalisation the state lies in [stateLower,
// stateUpper); encoding starts from the empty-stream state stateLower and
// decoding starts by reading a 4-byte initial state.
const (
	stateLower = uint32(1) << 16
	stateUpper = uint32(1) << 24
)

// EncodeMulti entropy-codes symbols using, for each position i, the
// distribution dists[contexts[i]]. contexts may be nil, in which case
// dists must contain exactly one distribution and it is used for every
// symbol (the single-context case).
//
// Symbols are pushed onto the rANS stack in reverse order per spec; the
// emitted renormalisation bytes are reversed back to forward order before
// the 4-byte big-endian final state is prepended.
func EncodeMulti(dists []*Distribution, symbols []int, contexts []int) ([]byte, error) {
	if len(dists) == 0 {
		return nil, ErrEmptyDistribution
	}
	if contexts == nil && len(dists) != 1 {
		return nil, ErrContextOutOfRange
	}

	state := stateLower
	var out []byte

	distFor := func(i int) (*Distribution, error) {
		if contexts == nil {
			return dists[0], nil
		}
		ctx := contexts[i]
		if ctx < 0 || ctx >= len(dists) {
			return nil, ErrContextOutOfRange
		}
		return dists[ctx], nil
	}

	for i := len(symbols) - 1; i >= 0; i-- {
		d, err := distFor(i)
		if err != nil {
			return nil, err
		}
		s := symbols[i]
		if s < 0 || s >= d.alphabetSize {
			return nil, ErrSymbolOutOfRange
		}
		f := uint32(d.freq[s])
		if f == 0 {
			return nil, ErrSymbolOutOfRange
		}
		c := d.cumStart[s]

		// Renormalise: keep state below f * (stateUpper/Precision).
		threshold := f * (stateUpper / Precision)
		for state >= threshold {
			out = append(out, byte(state&0xff))
			state >>= 8
		}
		state = (state/f)*Precision + (state % f) + c
	}

	// Reverse the renormalisation bytes so the decoder reads them forward.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	final := make([]byte, 4)
	binary.BigEndian.PutUint32(final, state)
	return append(final, out...), nil
}

// EncodeSingle is EncodeMulti specialised to a single distribution shared
// by every symbol.
func EncodeSingle(d *Distribution, symbols []int) ([]byte, error) {
	return EncodeMulti([]*Distribution{d}, symbols, nil)
}

// DecodeMulti is the inverse of EncodeMulti. numSymbols symbols are
// recovered using, for position i, dists[contexts[i]] (or dists[0] if
// contexts is nil). contexts must be reconstructed by the caller through
// the same deterministic process the encoder used; it is not present in
// the entropy payload itself.
func DecodeMulti(dists []*Distribution, data []byte, contexts []int, numSymbols int) ([]int, error) {
	out, _, err := DecodeMultiN(dists, data, contexts, numSymbols)
	return out, err
}

// DecodeMultiN is DecodeMulti but additionally returns the number of
// input bytes consumed, letting a caller pack several independently
// rANS-coded streams back to back without a length prefix on each (used
// by the interleaved-stream layout).
func DecodeMultiN(dists []*Distribution, data []byte, contexts []int, numSymbols int) ([]int, int, error) {
	if len(dists) == 0 {
		return nil, 0, ErrEmptyDistribution
	}
	if contexts == nil && len(dists) != 1 {
		return nil, 0, ErrContextOutOfRange
	}
	if len(data) < 4 {
		return nil, 0, ErrTruncated
	}
	state := binary.BigEndian.Uint32(data[:4])
	pos := 4

	distFor := func(i int) (*Distribution, error) {
		if contexts == nil {
			return dists[0], nil
		}
		ctx := contexts[i]
		if ctx < 0 || ctx >= len(dists) {
			return nil, ErrContextOutOfRange
		}
		return dists[ctx], nil
	}

	out := make([]int, numSymbols)
	for i := 0; i < numSymbols; i++ {
		d, err := distFor(i)
		if err != nil {
			return nil, 0, err
		}
		slot := state % Precision
		sym, f, c := d.Lookup(slot)
		state = f*(state/Precision) + slot - c
		out[i] = sym

		for state < stateLower {
			if pos >= len(data) {
				if i+1 < numSymbols {
					return nil, 0, ErrStateUnderflow
				}
				break
			}
			state = (state << 8) | uint32(data[pos])
			pos++
		}
	}

	// Running out of bytes once the symbol quota is already satisfied is
	// the sole sanctioned local recovery (spec 7): the loop above stops
	// renormalising after the last symbol, and running out any earlier
	// fails with ErrStateUnderflow.
	return out, pos, nil
}

// DecodeSingle is DecodeMulti specialised to a single shared distribution.
func DecodeSingle(d *Distribution, data []byte, numSymbols int) ([]int, error) {
	return DecodeMulti([]*Distribution{d}, data, nil, numSymbols)
}
