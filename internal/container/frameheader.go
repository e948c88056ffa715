package container

import "github.com/deepteams/jxl/internal/bitio"

// CropRect is the optional four-field crop rectangle carried by a
// non-default frame header.
type CropRect struct {
	X0, Y0, Width, Height uint32
}

// FrameHeader describes one frame section's framing attributes: type,
// encoding, blending, timing, and grouping. Most frames in a still image
// or a simple animation take every default and are carried in a single
// byte; only frames that deviate pay for the full bit-field layout.
type FrameHeader struct {
	Type           FrameType
	Encoding       EncodingSelector
	HasBlendInfo   bool
	BlendMode      BlendMode
	HasDuration    bool
	Duration       uint32
	IsLast         bool
	ReferenceSlot  ReferenceSlot
	Name           string
	HasCrop        bool
	Crop           CropRect
	PassCount      byte
	GroupCount     uint16
}

// DefaultFrameHeader returns the header implied by an all_default bit:
// regular VarDCT, replace blend, no duration, last frame, no reference
// slot, no name, no crop, one pass, one group.
func DefaultFrameHeader() FrameHeader {
	return FrameHeader{
		Type:       FrameTypeRegular,
		Encoding:   EncodingVarDCT,
		BlendMode:  BlendReplace,
		IsLast:     true,
		PassCount:  1,
		GroupCount: 1,
	}
}

// isAllDefault reports whether h is exactly the all-default header, the
// condition under which the one-byte short form applies.
func (h FrameHeader) isAllDefault() bool {
	d := DefaultFrameHeader()
	return h.Type == d.Type && h.Encoding == d.Encoding && !h.HasBlendInfo &&
		h.BlendMode == d.BlendMode && !h.HasDuration && h.IsLast == d.IsLast &&
		h.ReferenceSlot == ReferenceNone && h.Name == "" && !h.HasCrop &&
		h.PassCount == d.PassCount && h.GroupCount == d.GroupCount
}

// EncodeFrameHeader writes h. When h is exactly the all-default header it
// is encoded as a single byte (the all_default bit set, remaining bits of
// that byte unused); otherwise the all_default bit is clear and the full
// bit-field layout follows.
func EncodeFrameHeader(w *bitio.Writer, h FrameHeader) {
	if h.isAllDefault() {
		w.WriteBits(1, 1)
		w.FlushByte()
		return
	}

	w.WriteBits(0, 1)
	w.WriteBits(uint64(h.Type), 2)
	w.WriteBits(uint64(h.Encoding), 1)
	w.WriteBits(0, 2) // reserved

	if h.HasBlendInfo {
		w.WriteBits(1, 1)
		w.WriteBits(uint64(h.BlendMode), 2)
	} else {
		w.WriteBits(0, 1)
	}

	if h.HasDuration {
		w.WriteBits(1, 1)
		w.WriteU32(h.Duration)
	} else {
		w.WriteBits(0, 1)
	}

	if h.IsLast {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}

	if h.ReferenceSlot != ReferenceNone {
		w.WriteBits(1, 1)
		w.WriteBits(uint64(h.ReferenceSlot), 2)
	} else {
		w.WriteBits(0, 1)
	}

	if h.Name != "" {
		w.WriteBits(1, 1)
		nameBytes := []byte(h.Name)
		w.WriteU16(uint16(len(nameBytes)))
		w.WriteData(nameBytes)
	} else {
		w.WriteBits(0, 1)
	}

	if h.HasCrop {
		w.WriteBits(1, 1)
		w.WriteU32(h.Crop.X0)
		w.WriteU32(h.Crop.Y0)
		w.WriteU32(h.Crop.Width)
		w.WriteU32(h.Crop.Height)
	} else {
		w.WriteBits(0, 1)
	}

	if h.PassCount > 1 {
		w.WriteBits(1, 1)
		w.WriteByte(h.PassCount)
	} else {
		w.WriteBits(0, 1)
	}

	w.WriteU16(h.GroupCount)
}

// DecodeFrameHeader reads a FrameHeader written by EncodeFrameHeader.
func DecodeFrameHeader(r *bitio.Reader) (FrameHeader, error) {
	allDefault, err := r.ReadBits(1)
	if err != nil {
		return FrameHeader{}, ErrTruncatedHeader
	}
	if allDefault != 0 {
		r.SkipToByteAlignment()
		return DefaultFrameHeader(), nil
	}

	var h FrameHeader

	typ, err := r.ReadBits(2)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	h.Type = FrameType(typ)

	enc, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	h.Encoding = EncodingSelector(enc)

	if _, err := r.ReadBits(2); err != nil { // reserved
		return h, ErrTruncatedHeader
	}

	hasBlend, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if hasBlend != 0 {
		h.HasBlendInfo = true
		mode, err := r.ReadBits(2)
		if err != nil {
			return h, ErrTruncatedHeader
		}
		h.BlendMode = BlendMode(mode)
	}

	hasDuration, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if hasDuration != 0 {
		h.HasDuration = true
		h.Duration, err = r.ReadU32()
		if err != nil {
			return h, ErrTruncatedHeader
		}
	}

	isLast, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	h.IsLast = isLast != 0

	hasRef, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if hasRef != 0 {
		slot, err := r.ReadBits(2)
		if err != nil {
			return h, ErrTruncatedHeader
		}
		h.ReferenceSlot = ReferenceSlot(slot)
	}

	hasName, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if hasName != 0 {
		nameLen, err := r.ReadU16()
		if err != nil {
			return h, ErrTruncatedHeader
		}
		nameBytes, err := r.ReadData(int(nameLen))
		if err != nil {
			return h, ErrTruncatedHeader
		}
		h.Name = string(nameBytes)
	}

	hasCrop, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if hasCrop != 0 {
		h.HasCrop = true
		if h.Crop.X0, err = r.ReadU32(); err != nil {
			return h, ErrTruncatedHeader
		}
		if h.Crop.Y0, err = r.ReadU32(); err != nil {
			return h, ErrTruncatedHeader
		}
		if h.Crop.Width, err = r.ReadU32(); err != nil {
			return h, ErrTruncatedHeader
		}
		if h.Crop.Height, err = r.ReadU32(); err != nil {
			return h, ErrTruncatedHeader
		}
	}

	hasPasses, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	if hasPasses != 0 {
		h.PassCount, err = r.ReadByte()
		if err != nil {
			return h, ErrTruncatedHeader
		}
	} else {
		h.PassCount = 1
	}

	h.GroupCount, err = r.ReadU16()
	if err != nil {
		return h, ErrTruncatedHeader
	}

	return h, nil
}
