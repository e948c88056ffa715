package modular

import "github.com/deepteams/jxl/internal/bitio"

// EncodeImage runs the Modular pipeline over every channel of planes (in
// order), optionally applying the YCoCg-R colour transform first when
// useRCT is set and at least 3 channels are present (channels beyond the
// first 3, e.g. alpha, pass through untransformed).
func EncodeImage(planes []*Plane, opts Options, useRCT bool) ([]byte, error) {
	work := planes
	if useRCT && len(planes) >= 3 {
		work = forwardRCTPlanes(planes)
	}

	w := bitio.NewWriter()
	w.WriteByte(byte(len(work)))
	for c, p := range work {
		body, err := EncodeChannel(p, c, opts)
		if err != nil {
			return nil, err
		}
		w.WriteU32(uint32(len(body)))
		w.WriteData(body)
	}
	return w.Bytes(), nil
}

// DecodeImage is EncodeImage's inverse. width/height/channels must match
// what the caller's frame header declared.
func DecodeImage(data []byte, width, height, channels int, opts Options, useRCT bool) ([]*Plane, error) {
	r := bitio.NewReader(data)
	nCh, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if int(nCh) != channels {
		return nil, ErrChannelCountMismatch
	}
	planes := make([]*Plane, nCh)
	for c := 0; c < int(nCh); c++ {
		blen, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		body, err := r.ReadData(int(blen))
		if err != nil {
			return nil, err
		}
		p, err := DecodeChannel(body, width, height, c, opts)
		if err != nil {
			return nil, err
		}
		planes[c] = p
	}
	if useRCT && len(planes) >= 3 {
		inverseRCTPlanes(planes)
	}
	return planes, nil
}

// forwardRCTPlanes returns a new slice with the first 3 channels replaced
// by their Y/Co/Cg transform; any further channels are shared unchanged.
func forwardRCTPlanes(planes []*Plane) []*Plane {
	r, g, b := planes[0], planes[1], planes[2]
	y := NewPlane(r.W, r.H)
	co := NewPlane(r.W, r.H)
	cg := NewPlane(r.W, r.H)
	for i := range r.Pix {
		yv, cov, cgv := ForwardRCT(r.Pix[i], g.Pix[i], b.Pix[i])
		y.Pix[i] = yv
		co.Pix[i] = cov
		cg.Pix[i] = cgv
	}
	out := make([]*Plane, len(planes))
	out[0], out[1], out[2] = y, co, cg
	copy(out[3:], planes[3:])
	return out
}

// inverseRCTPlanes undoes forwardRCTPlanes in place over the first 3
// channels.
func inverseRCTPlanes(planes []*Plane) {
	y, co, cg := planes[0], planes[1], planes[2]
	for i := range y.Pix {
		rv, gv, bv := InverseRCT(y.Pix[i], co.Pix[i], cg.Pix[i])
		y.Pix[i] = rv
		co.Pix[i] = gv
		cg.Pix[i] = bv
	}
}
