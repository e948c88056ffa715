package entropy

import "encoding/binary"

// StreamDecoder is a symbol-at-a-time multi-context rANS decoder for
// callers whose context sequence is causal — each symbol's context
// depends on previously decoded symbols (as in the Modular pipeline) and
// so cannot be computed as a batch up front the way DecodeMulti requires.
type StreamDecoder struct {
	dists []*Distribution
	data  []byte
	pos   int
	state uint32
}

// NewStreamDecoder initialises a decoder over data, reading the 4-byte
// big-endian initial state.
func NewStreamDecoder(dists []*Distribution, data []byte) (*StreamDecoder, error) {
	if len(data) < 4 {
		return nil, ErrTruncated
	}
	return &StreamDecoder{
		dists: dists,
		data:  data,
		pos:   4,
		state: binary.BigEndian.Uint32(data[:4]),
	}, nil
}

// Next decodes the next symbol using dists[ctx].
func (s *StreamDecoder) Next(ctx int) (int, error) {
	if ctx < 0 || ctx >= len(s.dists) {
		return 0, ErrContextOutOfRange
	}
	d := s.dists[ctx]
	slot := s.state % Precision
	sym, f, c := d.Lookup(slot)
	s.state = f*(s.state/Precision) + slot - c
	for s.state < stateLower {
		if s.pos >= len(s.data) {
			break
		}
		s.state = (s.state << 8) | uint32(s.data[s.pos])
		s.pos++
	}
	return sym, nil
}

// BytesConsumed returns how many input bytes have been read so far.
func (s *StreamDecoder) BytesConsumed() int { return s.pos }
