package entropy

import "encoding/binary"

// streamQuota returns the number of symbols assigned to stream k of K
// round-robin interleaved streams over n total symbols: floor(n/K), with
// the first (n mod K) streams getting one extra.
func streamQuota(n, k, numStreams int) int {
	q := n / numStreams
	if k < n%numStreams {
		q++
	}
	return q
}

// EncodeInterleaved round-robins symbols across numStreams independent
// rANS streams (symbol i goes to stream i mod numStreams), each using the
// single distribution d. Output: 1-byte numStreams, numStreams 4-byte
// big-endian final states, then the numStreams stream byte blocks
// (renormalisation bytes only, state already emitted in the header)
// concatenated in order.
func EncodeInterleaved(d *Distribution, symbols []int, numStreams int) ([]byte, error) {
	if numStreams < 1 || numStreams > 255 {
		return nil, ErrContextOutOfRange
	}
	streams := make([][]int, numStreams)
	for i, s := range symbols {
		k := i % numStreams
		streams[k] = append(streams[k], s)
	}

	states := make([]uint32, numStreams)
	blocks := make([][]byte, numStreams)
	for k := 0; k < numStreams; k++ {
		full, err := EncodeMulti([]*Distribution{d}, streams[k], nil)
		if err != nil {
			return nil, err
		}
		states[k] = binary.BigEndian.Uint32(full[:4])
		blocks[k] = full[4:]
	}

	out := make([]byte, 0, 1+4*numStreams+totalLen(blocks))
	out = append(out, byte(numStreams))
	for _, st := range states {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], st)
		out = append(out, b[:]...)
	}
	for _, blk := range blocks {
		out = append(out, blk...)
	}
	return out, nil
}

func totalLen(blocks [][]byte) int {
	n := 0
	for _, b := range blocks {
		n += len(b)
	}
	return n
}

// DecodeInterleaved is the inverse of EncodeInterleaved: numSymbols total
// symbols were originally encoded using distribution d.
func DecodeInterleaved(d *Distribution, data []byte, numSymbols int) ([]int, error) {
	if len(data) < 1 {
		return nil, ErrTruncated
	}
	numStreams := int(data[0])
	if numStreams < 1 {
		return nil, ErrTruncated
	}
	pos := 1
	if len(data) < pos+4*numStreams {
		return nil, ErrTruncated
	}
	states := make([]uint32, numStreams)
	for k := 0; k < numStreams; k++ {
		states[k] = binary.BigEndian.Uint32(data[pos:])
		pos += 4
	}

	out := make([]int, numSymbols)
	for k := 0; k < numStreams; k++ {
		quota := streamQuota(numSymbols, k, numStreams)
		// Re-assemble this stream's self-contained payload: its 4-byte
		// state header followed by its slice of the concatenated blocks.
		var stateBytes [4]byte
		binary.BigEndian.PutUint32(stateBytes[:], states[k])
		streamData := append(append([]byte(nil), stateBytes[:]...), data[pos:]...)

		syms, consumed, err := DecodeMultiN([]*Distribution{d}, streamData, nil, quota)
		if err != nil {
			return nil, err
		}
		pos += consumed - 4
		for i, s := range syms {
			out[k+i*numStreams] = s
		}
	}
	return out, nil
}
