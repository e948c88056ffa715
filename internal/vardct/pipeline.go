package vardct

import "github.com/deepteams/jxl/internal/bitio"

// blockDim is the default, primary block grid. Genuinely heterogeneous
// per-block sizing (SelectBlockSize's 9 shapes mixed within one frame) is
// implemented and tested in blocksize.go as a standalone capability but
// is not wired into this end-to-end pipeline; see DESIGN.md for why.
const blockDim = 8
const acPerBlock = blockDim*blockDim - 1

// FrameOptions controls one VarDCT frame's encode/decode behaviour. It is
// the VarDCT analogue of the Modular pipeline's Options.
type FrameOptions struct {
	Distance                  float64
	PixelType                 PixelType
	ColorTransform            ColorTransformTag
	AdaptiveQuantization      bool
	UseANS                    bool
	Progressive               bool
	QuantStrength, QuantKappa float64
}

func (o *FrameOptions) quantOptions() QuantOptions {
	qo := QuantOptions{Distance: o.Distance, AdaptiveQuantization: o.AdaptiveQuantization, Strength: o.QuantStrength, Kappa: o.QuantKappa}
	qo.setDefaults()
	return qo
}

// quantFactorByte linearly quantises a clamp(1/scale,[0.5,2.0]) factor
// into a single byte, the form in which per-block adaptive-quantisation
// side info is transmitted (the decoder cannot recompute spatial
// activity from quantised coefficients alone, so the encoder's factor
// must travel with the bitstream).
func quantFactorByte(factor float64) byte {
	f := clampFloat(factor, 0.5, 2.0)
	return byte(roundHalfAwayFromZero(((f - 0.5) / 1.5) * 255))
}

func quantFactorFromByte(b byte) float64 {
	return 0.5 + (float64(b)/255)*1.5
}

type blockCoeffs struct {
	dcResidual int
	acLevels   []int // zigzag-scan order, length acPerBlock
	quantByte  byte
	slopeQ     int
}

// encodeChannelBlocks runs forward DCT, optional CfL (chroma only, needs
// the luma channel's per-block AC coefficients already computed),
// adaptive quantisation, and DC prediction over one channel, returning
// per-block results in raster order plus the channel's own post-forward-
// transform AC coefficients (what a following chroma channel needs from
// luma for CfL).
func encodeChannelBlocks(p *FloatPlane, isChroma bool, lumaAC [][]float64, opts FrameOptions) ([]blockCoeffs, [][]float64) {
	qopts := opts.quantOptions()
	scan := ZigzagScan(blockDim, blockDim)
	blocksW := ceilDiv(p.W, blockDim)
	blocksH := ceilDiv(p.H, blockDim)
	numBlocks := blocksW * blocksH

	results := make([]blockCoeffs, numBlocks)
	coeffsOut := make([][]float64, numBlocks)
	dcPlane := NewDCPlane(blocksW, blocksH)
	qBase := QBase(opts.Distance)

	idx := 0
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			x0, y0 := bx*blockDim, by*blockDim
			spatial := p.ExtractBlock(x0, y0, blockDim, blockDim)

			factor := 1.0
			qb := quantFactorByte(1.0)
			if opts.AdaptiveQuantization {
				activity := BlockActivity(spatial, 65535)
				scale := ActivityScale(activity, qopts)
				factor = clampFloat(1/scale, 0.5, 2.0)
				qb = quantFactorByte(factor)
			}

			coeffs := ForwardDCT2D(spatial, blockDim, blockDim)

			slopeQ := 0
			if isChroma && lumaAC != nil {
				luma := lumaAC[idx]
				alpha := CfLSlope(luma, coeffs)
				slopeQ = QuantizeCfLSlope(alpha)
				coeffs = ApplyCfLForward(coeffs, luma, DequantizeCfLSlope(slopeQ))
			}
			coeffsOut[idx] = coeffs

			scanned := ApplyScan(coeffs, scan)
			levels := Quantize(scanned, blockDim, blockDim, qBase, 1/factor, isChroma, 1.0)

			dcResidual := EncodeDCResidual(dcPlane, bx, by, levels[0])
			results[idx] = blockCoeffs{
				dcResidual: dcResidual,
				acLevels:   append([]int(nil), levels[1:]...),
				quantByte:  qb,
				slopeQ:     slopeQ,
			}
			idx++
		}
	}
	return results, coeffsOut
}

// EncodeChannel entropy-codes one channel's block-coded residuals. It
// returns the wire body and, for every block, the post-forward-transform
// coefficients a following chroma channel needs for CfL.
func EncodeChannel(p *FloatPlane, isChroma bool, lumaAC [][]float64, opts FrameOptions) ([]byte, [][]float64, error) {
	blocks, coeffsOut := encodeChannelBlocks(p, isChroma, lumaAC, opts)

	w := bitio.NewWriter()
	// Side info (adaptive-quantisation factor, CfL slope) for every block
	// is written once, ahead of the residual stream and of any progressive
	// pass data.
	for _, b := range blocks {
		if opts.AdaptiveQuantization {
			w.WriteByte(b.quantByte)
		}
		if isChroma {
			w.WriteVarint(uint64(zigzagEncodeInt(b.slopeQ)))
		}
	}

	if opts.UseANS {
		dc := make([]int, len(blocks))
		ac := make([][]int, len(blocks))
		for i, b := range blocks {
			dc[i] = b.dcResidual
			ac[i] = b.acLevels
		}
		body, err := EncodeBlocksANS(dc, ac)
		if err != nil {
			return nil, nil, err
		}
		w.WriteData(body)
		return w.Bytes(), coeffsOut, nil
	}

	if opts.Progressive {
		passes := make([][][]int, NumPasses)
		for p := 0; p < NumPasses; p++ {
			passes[p] = make([][]int, len(blocks))
		}
		for i, b := range blocks {
			full := append([]int{b.dcResidual}, b.acLevels...)
			split := SplitIntoPasses(full)
			for p := 0; p < NumPasses; p++ {
				passes[p][i] = split[p]
			}
		}
		for p := 0; p < NumPasses; p++ {
			w.WriteByte(byte(p))
			w.WriteU32(uint32(len(blocks)))
			for _, vals := range passes[p] {
				w.WriteVarint(uint64(len(vals)))
				for _, v := range vals {
					w.WriteVarint(uint64(zigzagEncodeInt(v)))
				}
			}
		}
		return w.Bytes(), coeffsOut, nil
	}

	for _, b := range blocks {
		EncodeBlockNonANS(w, b.dcResidual, b.acLevels)
	}
	return w.Bytes(), coeffsOut, nil
}

// DecodeChannel is EncodeChannel's inverse, reconstructing a full
// spatial-domain plane of size w x h and returning the post-forward-
// transform coefficients (needed by a following chroma channel's decode,
// when decoding luma).
func DecodeChannel(data []byte, w, h int, isChroma bool, lumaAC [][]float64, opts FrameOptions) (*FloatPlane, [][]float64, error) {
	blocksW := ceilDiv(w, blockDim)
	blocksH := ceilDiv(h, blockDim)
	numBlocks := blocksW * blocksH
	scan := ZigzagScan(blockDim, blockDim)
	qBase := QBase(opts.Distance)

	r := bitio.NewReader(data)
	quantBytes := make([]byte, numBlocks)
	slopeQs := make([]int, numBlocks)
	for i := 0; i < numBlocks; i++ {
		if opts.AdaptiveQuantization {
			b, err := r.ReadByte()
			if err != nil {
				return nil, nil, err
			}
			quantBytes[i] = b
		}
		if isChroma {
			v, err := r.ReadVarint()
			if err != nil {
				return nil, nil, err
			}
			slopeQs[i] = zigzagDecodeInt(int(v))
		}
	}
	rest, err := r.ReadData(r.Remaining())
	if err != nil {
		return nil, nil, err
	}

	var fullLevels [][]int // dcResidual + acLevels per block, raster order

	if opts.UseANS {
		dc, ac, err := DecodeBlocksANS(rest, acPerBlock)
		if err != nil {
			return nil, nil, err
		}
		if len(dc) != numBlocks {
			return nil, nil, ErrBlockCountMismatch
		}
		fullLevels = make([][]int, numBlocks)
		for i := range dc {
			fullLevels[i] = append([]int{dc[i]}, ac[i]...)
		}
	} else if opts.Progressive {
		pr := bitio.NewReader(rest)
		fullLevels = make([][]int, numBlocks)
		for i := range fullLevels {
			fullLevels[i] = make([]int, acPerBlock+1)
		}
		for pass := 0; pass < NumPasses; pass++ {
			idxByte, err := pr.ReadByte()
			if err != nil {
				return nil, nil, err
			}
			if int(idxByte) != pass {
				return nil, nil, ErrUnknownPassIndex
			}
			count, err := pr.ReadU32()
			if err != nil {
				return nil, nil, err
			}
			if int(count) != numBlocks {
				return nil, nil, ErrBlockCountMismatch
			}
			for i := 0; i < numBlocks; i++ {
				n, err := pr.ReadVarint()
				if err != nil {
					return nil, nil, err
				}
				start, _ := PassRange(pass, acPerBlock+1)
				for j := 0; j < int(n); j++ {
					v, err := pr.ReadVarint()
					if err != nil {
						return nil, nil, err
					}
					fullLevels[i][start+j] = zigzagDecodeInt(int(v))
				}
			}
		}
	} else {
		pr := bitio.NewReader(rest)
		fullLevels = make([][]int, numBlocks)
		for i := 0; i < numBlocks; i++ {
			dc, ac, err := DecodeBlockNonANS(pr, acPerBlock)
			if err != nil {
				return nil, nil, err
			}
			fullLevels[i] = append([]int{dc}, ac...)
		}
	}

	out := NewFloatPlane(w, h)
	coeffsOut := make([][]float64, numBlocks)
	dcPlane := NewDCPlane(blocksW, blocksH)

	idx := 0
	for by := 0; by < blocksH; by++ {
		for bx := 0; bx < blocksW; bx++ {
			levels := fullLevels[idx]
			dcVal := DecodeDCResidual(dcPlane, bx, by, levels[0])
			full := append([]int{dcVal}, levels[1:]...)

			factor := 1.0
			if opts.AdaptiveQuantization {
				factor = quantFactorFromByte(quantBytes[idx])
			}
			scanned := Dequantize(full, blockDim, blockDim, qBase, 1/factor, isChroma, 1.0)
			coeffs := UnapplyScan(scanned, scan)

			if isChroma && lumaAC != nil {
				alpha := DequantizeCfLSlope(slopeQs[idx])
				coeffs = ApplyCfLInverse(coeffs, lumaAC[idx], alpha)
			}
			coeffsOut[idx] = coeffs

			spatial := InverseDCT2D(coeffs, blockDim, blockDim)
			out.WriteBlock(bx*blockDim, by*blockDim, blockDim, blockDim, spatial)
			idx++
		}
	}
	return out, coeffsOut, nil
}
