package modular

import (
	"github.com/deepteams/jxl/internal/bitio"
	"github.com/deepteams/jxl/internal/entropy"
)

const (
	ansModeMarker  = 0x01
	ansEscapeValue = 255
)

// EncodeANS implements the ANS entropy backend: residuals (scan order,
// signed) are zigzag-mapped and clamped into a 256-symbol alphabet,
// escaping any value >= 255 into a side list (so the clamp never loses
// information — a requirement for the lossless Modular pipeline, unlike
// VarDCT's lossy clamp in spec.md §4.4). contexts is the parallel
// per-position context sequence computed by SelectContext; the encoder
// knows the whole residual sequence already, so it can compute contexts
// directly instead of needing a stepwise decoder.
//
// Wire format: 4-byte element count, 1-byte mode marker 0x01, 2-byte
// alphabet size (LE), 1-byte context count, per-context
// (varint-length, serialised distribution), 4-byte escape count,
// escaped raw zigzag values as varints, 4-byte payload length, payload.
func EncodeANS(residuals []int, contexts []int, numContexts int) ([]byte, error) {
	symbols := make([]int, len(residuals))
	var escapes []int
	counts := make([][]uint64, numContexts)
	for c := range counts {
		counts[c] = make([]uint64, 256)
	}
	for i, v := range residuals {
		u := ZigzagEncode(v)
		sym := u
		if u >= ansEscapeValue {
			sym = ansEscapeValue
			escapes = append(escapes, u)
		}
		symbols[i] = sym
		counts[contexts[i]][sym]++
	}
	// Every context distribution needs at least one non-zero count for
	// NewDistribution; contexts that never occur get a trivial point mass
	// on symbol 0 so the header always carries numContexts distributions.
	dists := make([]*entropy.Distribution, numContexts)
	for c := range dists {
		var total uint64
		for _, n := range counts[c] {
			total += n
		}
		if total == 0 {
			counts[c][0] = 1
		}
		d, err := entropy.NewDistribution(counts[c])
		if err != nil {
			return nil, err
		}
		dists[c] = d
	}

	payload, err := entropy.EncodeMulti(dists, symbols, contexts)
	if err != nil {
		return nil, err
	}

	w := bitio.NewWriter()
	w.WriteU32(uint32(len(residuals)))
	w.WriteByte(ansModeMarker)
	w.WriteBits(256, 16) // alphabet size, always 256 for the clamp scheme
	w.WriteByte(byte(numContexts))
	for _, d := range dists {
		db := entropy.Serialize(d)
		w.WriteVarint(uint64(len(db)))
		w.WriteData(db)
	}
	w.WriteU32(uint32(len(escapes)))
	for _, e := range escapes {
		w.WriteVarint(uint64(e))
	}
	w.WriteU32(uint32(len(payload)))
	w.WriteData(payload)
	return w.Bytes(), nil
}

// ANSDecoder drives the ANS entropy backend symbol by symbol, since the
// Modular pipeline's context for position i depends on residuals already
// decoded at i-1 and earlier.
type ANSDecoder struct {
	sd        *entropy.StreamDecoder
	escapes   []int
	escapeIdx int
}

// NewANSDecoder parses the header produced by EncodeANS and returns a
// decoder plus the total element count the caller should decode.
func NewANSDecoder(data []byte) (*ANSDecoder, int, error) {
	r := bitio.NewReader(data)
	elementCount, err := r.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	marker, err := r.ReadByte()
	if err != nil {
		return nil, 0, err
	}
	if marker != ansModeMarker {
		return nil, 0, entropy.ErrUnknownMode
	}
	if _, err := r.ReadBits(16); err != nil { // alphabet size, unused (always 256)
		return nil, 0, err
	}
	contextCount, err := r.ReadByte()
	if err != nil {
		return nil, 0, err
	}
	dists := make([]*entropy.Distribution, contextCount)
	for c := range dists {
		n, err := r.ReadVarint()
		if err != nil {
			return nil, 0, err
		}
		db, err := r.ReadData(int(n))
		if err != nil {
			return nil, 0, err
		}
		d, consumed, derr := entropy.Deserialize(db)
		if derr != nil {
			return nil, 0, derr
		}
		if consumed != len(db) {
			return nil, 0, entropy.ErrTruncated
		}
		dists[c] = d
	}
	escapeCount, err := r.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	escapes := make([]int, escapeCount)
	for i := range escapes {
		v, err := r.ReadVarint()
		if err != nil {
			return nil, 0, err
		}
		escapes[i] = int(v)
	}
	payloadLen, err := r.ReadU32()
	if err != nil {
		return nil, 0, err
	}
	payload, err := r.ReadData(int(payloadLen))
	if err != nil {
		return nil, 0, err
	}
	sd, err := entropy.NewStreamDecoder(dists, payload)
	if err != nil {
		return nil, 0, err
	}
	return &ANSDecoder{sd: sd, escapes: escapes}, int(elementCount), nil
}

// Next decodes the next residual using the supplied context.
func (a *ANSDecoder) Next(ctx int) (int, error) {
	sym, err := a.sd.Next(ctx)
	if err != nil {
		return 0, err
	}
	u := sym
	if sym == ansEscapeValue {
		if a.escapeIdx >= len(a.escapes) {
			return 0, entropy.ErrTruncated
		}
		u = a.escapes[a.escapeIdx]
		a.escapeIdx++
	}
	return ZigzagDecode(u), nil
}
