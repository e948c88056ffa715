package vardct

import (
	"encoding/binary"

	"github.com/deepteams/jxl/internal/entropy"
)

const (
	ansCoeffMarker = 0x02
	ansMaxAlphabet = 256
)

// clampSymbol clamps a zigzag-mapped value into the ANS alphabet range
// [0,255]. Unlike the Modular pipeline's escape mechanism, VarDCT's ANS
// coefficient coding is lossy at the symbol level by design: any
// coefficient whose zigzag mapping would exceed the alphabet is clamped,
// and the decoder applies the identical clamp (so encode/decode agree,
// even though the original large value is not recoverable).
func clampSymbol(u int) int {
	if u >= ansMaxAlphabet {
		return ansMaxAlphabet - 1
	}
	return u
}

// EncodeBlocksANS entropy-codes a full set of blocks' DC residuals (one
// per block) and AC coefficients (acPerBlock per block) using a
// two-context ANS coder: DC values in context 0, AC values in context 1.
func EncodeBlocksANS(dcResiduals []int, acCoeffs [][]int) ([]byte, error) {
	numBlocks := len(dcResiduals)
	acPerBlock := 0
	if numBlocks > 0 {
		acPerBlock = len(acCoeffs[0])
	}

	symbols := make([]int, 0, numBlocks*(1+acPerBlock))
	contexts := make([]int, 0, numBlocks*(1+acPerBlock))
	for i := 0; i < numBlocks; i++ {
		symbols = append(symbols, clampSymbol(zigzagEncodeInt(dcResiduals[i])))
		contexts = append(contexts, 0)
		for _, c := range acCoeffs[i] {
			symbols = append(symbols, clampSymbol(zigzagEncodeInt(c)))
			contexts = append(contexts, 1)
		}
	}

	dcCounts := make([]uint64, ansMaxAlphabet)
	acCounts := make([]uint64, ansMaxAlphabet)
	for i, s := range symbols {
		if contexts[i] == 0 {
			dcCounts[s]++
		} else {
			acCounts[s]++
		}
	}
	if dcCounts[0] == 0 {
		dcCounts[0] = 1
	}
	if acCounts[0] == 0 {
		acCounts[0] = 1
	}
	dcDist, err := entropy.NewDistribution(dcCounts)
	if err != nil {
		return nil, err
	}
	acDist, err := entropy.NewDistribution(acCounts)
	if err != nil {
		return nil, err
	}

	payload, err := entropy.EncodeMulti([]*entropy.Distribution{dcDist, acDist}, symbols, contexts)
	if err != nil {
		return nil, err
	}

	dcSer := entropy.Serialize(dcDist)
	acSer := entropy.Serialize(acDist)

	buf := make([]byte, 0, 1+4+4+len(dcSer)+4+len(acSer)+4+len(payload))
	buf = append(buf, ansCoeffMarker)
	buf = appendU32BE(buf, uint32(numBlocks))
	buf = appendU32BE(buf, uint32(len(dcSer)))
	buf = append(buf, dcSer...)
	buf = appendU32BE(buf, uint32(len(acSer)))
	buf = append(buf, acSer...)
	buf = appendU32BE(buf, uint32(len(payload)))
	buf = append(buf, payload...)
	return buf, nil
}

// DecodeBlocksANS is EncodeBlocksANS's inverse. acPerBlock must match
// what the caller's block-size grid implies.
func DecodeBlocksANS(data []byte, acPerBlock int) (dcResiduals []int, acCoeffs [][]int, err error) {
	if len(data) < 1 || data[0] != ansCoeffMarker {
		return nil, nil, ErrUnknownANSMarker
	}
	pos := 1
	if len(data) < pos+4 {
		return nil, nil, ErrTruncatedBlock
	}
	numBlocks := int(binary.BigEndian.Uint32(data[pos:]))
	pos += 4

	dcLen, err := readLenPrefixed(data, &pos)
	if err != nil {
		return nil, nil, err
	}
	dcDist, _, err := entropy.Deserialize(data[pos : pos+dcLen])
	if err != nil {
		return nil, nil, err
	}
	pos += dcLen

	acLen, err := readLenPrefixed(data, &pos)
	if err != nil {
		return nil, nil, err
	}
	acDist, _, err := entropy.Deserialize(data[pos : pos+acLen])
	if err != nil {
		return nil, nil, err
	}
	pos += acLen

	if len(data) < pos+4 {
		return nil, nil, ErrTruncatedBlock
	}
	payloadLen := int(binary.BigEndian.Uint32(data[pos:]))
	pos += 4
	if len(data) < pos+payloadLen {
		return nil, nil, ErrTruncatedBlock
	}
	payload := data[pos : pos+payloadLen]

	numSymbols := numBlocks * (1 + acPerBlock)
	contexts := make([]int, 0, numSymbols)
	for i := 0; i < numBlocks; i++ {
		contexts = append(contexts, 0)
		for j := 0; j < acPerBlock; j++ {
			contexts = append(contexts, 1)
		}
	}

	symbols, err := entropy.DecodeMulti([]*entropy.Distribution{dcDist, acDist}, payload, contexts, numSymbols)
	if err != nil {
		return nil, nil, err
	}

	dcResiduals = make([]int, numBlocks)
	acCoeffs = make([][]int, numBlocks)
	idx := 0
	for i := 0; i < numBlocks; i++ {
		dcResiduals[i] = zigzagDecodeInt(symbols[idx])
		idx++
		ac := make([]int, acPerBlock)
		for j := 0; j < acPerBlock; j++ {
			ac[j] = zigzagDecodeInt(symbols[idx])
			idx++
		}
		acCoeffs[i] = ac
	}
	return dcResiduals, acCoeffs, nil
}

func appendU32BE(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func readLenPrefixed(data []byte, pos *int) (int, error) {
	if len(data) < *pos+4 {
		return 0, ErrTruncatedBlock
	}
	n := int(binary.BigEndian.Uint32(data[*pos:]))
	*pos += 4
	if len(data) < *pos+n {
		return 0, ErrTruncatedBlock
	}
	return n, nil
}
