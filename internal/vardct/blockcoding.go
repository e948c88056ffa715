package vardct

import "github.com/deepteams/jxl/internal/bitio"

// endOfBlockMarker terminates a non-ANS AC coefficient run: "the
// remaining coefficients (in scan order) are zero".
const endOfBlockMarker = 0xFFFF

// EncodeBlockNonANS writes one block's DC residual and zigzag/natural
// scan-ordered AC coefficients in the non-ANS wire form: the DC residual
// as a signed varint, then alternating (zero-run varint, coefficient
// signed varint) pairs, terminated by a zero-run of endOfBlockMarker.
func EncodeBlockNonANS(w *bitio.Writer, dcResidual int, acCoeffs []int) {
	w.WriteVarint(uint64(zigzagEncodeInt(dcResidual)))
	run := 0
	for _, c := range acCoeffs {
		if c == 0 {
			run++
			continue
		}
		w.WriteVarint(uint64(run))
		w.WriteVarint(uint64(zigzagEncodeInt(c)))
		run = 0
	}
	w.WriteVarint(endOfBlockMarker)
}

// DecodeBlockNonANS is EncodeBlockNonANS's inverse. numAC is the number
// of AC coefficients the block is expected to carry (block size - 1).
func DecodeBlockNonANS(r *bitio.Reader, numAC int) (dcResidual int, acCoeffs []int, err error) {
	dcU, err := r.ReadVarint()
	if err != nil {
		return 0, nil, err
	}
	dcResidual = zigzagDecodeInt(int(dcU))

	acCoeffs = make([]int, numAC)
	pos := 0
	for {
		runU, err := r.ReadVarint()
		if err != nil {
			return 0, nil, err
		}
		if runU == endOfBlockMarker {
			break
		}
		run := int(runU)
		if pos+run >= numAC {
			return 0, nil, ErrTruncatedBlock
		}
		pos += run
		coeffU, err := r.ReadVarint()
		if err != nil {
			return 0, nil, err
		}
		acCoeffs[pos] = zigzagDecodeInt(int(coeffU))
		pos++
	}
	return dcResidual, acCoeffs, nil
}
