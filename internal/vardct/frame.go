package vardct

import "github.com/deepteams/jxl/internal/bitio"

// applyForwardColorTransform converts the first 3 channels of planes
// in place according to transform, leaving any further channels (e.g.
// alpha) untouched. Samples are expected in [0,65535]; XYB additionally
// normalises to [0,1] internally and scales back afterwards so the
// pipeline's common 16-bit domain is preserved end to end.
func applyForwardColorTransform(planes []*FloatPlane, transform ColorTransformTag, pt PixelType) {
	if transform == ColorTransformNone || len(planes) < 3 {
		return
	}
	r, g, b := planes[0], planes[1], planes[2]
	for i := range r.Pix {
		switch transform {
		case ColorTransformYCbCr:
			y, cb, cr := ForwardYCbCr(r.Pix[i], g.Pix[i], b.Pix[i], pt)
			r.Pix[i], g.Pix[i], b.Pix[i] = y, cb, cr
		case ColorTransformXYB:
			x, y, bb := ForwardXYB(r.Pix[i]/65535, g.Pix[i]/65535, b.Pix[i]/65535)
			r.Pix[i], g.Pix[i], b.Pix[i] = x*65535, y*65535, bb*65535
		}
	}
}

// applyInverseColorTransform undoes applyForwardColorTransform in place.
func applyInverseColorTransform(planes []*FloatPlane, transform ColorTransformTag, pt PixelType) {
	if transform == ColorTransformNone || len(planes) < 3 {
		return
	}
	r, g, b := planes[0], planes[1], planes[2]
	for i := range r.Pix {
		switch transform {
		case ColorTransformYCbCr:
			rv, gv, bv := InverseYCbCr(r.Pix[i], g.Pix[i], b.Pix[i], pt)
			r.Pix[i], g.Pix[i], b.Pix[i] = rv, gv, bv
		case ColorTransformXYB:
			rv, gv, bv := InverseXYB(r.Pix[i]/65535, g.Pix[i]/65535, b.Pix[i]/65535)
			r.Pix[i], g.Pix[i], b.Pix[i] = rv*65535, gv*65535, bv*65535
		}
	}
}

// EncodeFrame runs the full VarDCT chain over every channel of planes:
// colour transform, then per-channel forward DCT, CfL (channels 1 and 2
// when a colour transform is active), adaptive quantisation, DC
// prediction, and entropy coding.
func EncodeFrame(planes []*FloatPlane, opts FrameOptions) ([]byte, error) {
	work := make([]*FloatPlane, len(planes))
	for i, p := range planes {
		cp := NewFloatPlane(p.W, p.H)
		copy(cp.Pix, p.Pix)
		work[i] = cp
	}
	applyForwardColorTransform(work, opts.ColorTransform, opts.PixelType)

	w := bitio.NewWriter()
	w.WriteByte(byte(len(work)))

	var lumaAC [][]float64
	for c, p := range work {
		isChroma := opts.ColorTransform != ColorTransformNone && (c == 1 || c == 2)
		var la [][]float64
		if isChroma {
			la = lumaAC
		}
		body, coeffs, err := EncodeChannel(p, isChroma, la, opts)
		if err != nil {
			return nil, err
		}
		if c == 0 {
			lumaAC = coeffs
		}
		w.WriteU32(uint32(len(body)))
		w.WriteData(body)
	}
	return w.Bytes(), nil
}

// DecodeFrame is EncodeFrame's inverse. width/height/channels must match
// what the caller's frame header declared.
func DecodeFrame(data []byte, width, height, channels int, opts FrameOptions) ([]*FloatPlane, error) {
	r := bitio.NewReader(data)
	nCh, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if int(nCh) != channels {
		return nil, ErrFrameChannelCount
	}

	planes := make([]*FloatPlane, nCh)
	var lumaAC [][]float64
	for c := 0; c < int(nCh); c++ {
		blen, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		body, err := r.ReadData(int(blen))
		if err != nil {
			return nil, err
		}
		isChroma := opts.ColorTransform != ColorTransformNone && (c == 1 || c == 2)
		var la [][]float64
		if isChroma {
			la = lumaAC
		}
		p, coeffs, err := DecodeChannel(body, width, height, isChroma, la, opts)
		if err != nil {
			return nil, err
		}
		if c == 0 {
			lumaAC = coeffs
		}
		planes[c] = p
	}

	applyInverseColorTransform(planes, opts.ColorTransform, opts.PixelType)
	return planes, nil
}
