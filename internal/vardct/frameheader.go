package vardct

import (
	"math"

	"github.com/deepteams/jxl/internal/bitio"
)

// FrameHeaderVersion is the version byte written by EncodeFrameHeader.
const FrameHeaderVersion = 1

const (
	flagAdaptiveQuant = 1 << 0
	flagANS           = 1 << 1
)

// ColorTransformTag identifies the colour transform applied before DCT.
type ColorTransformTag byte

const (
	ColorTransformYCbCr ColorTransformTag = 0
	ColorTransformXYB   ColorTransformTag = 1
	ColorTransformNone  ColorTransformTag = 2
)

// FrameHeader carries the VarDCT-specific frame header fields: the
// codestream's leading mode byte (0 for VarDCT, 1 for Modular) is written
// by the caller before EncodeFrameHeader runs, since that byte is shared
// framing owned by the top-level orchestrator.
type FrameHeader struct {
	Width, Height        uint32
	ChannelCount         byte
	Distance             float32
	AdaptiveQuantization bool
	UseANS               bool
	PixelType            PixelType
	ColorTransform       ColorTransformTag
	VariableBlockSize    bool
	PassCount            byte
}

// EncodeFrameHeader writes the VarDCT frame header body (after the mode
// byte, which the caller writes).
func EncodeFrameHeader(w *bitio.Writer, h FrameHeader) {
	w.WriteByte(FrameHeaderVersion)
	w.WriteU32(h.Width)
	w.WriteU32(h.Height)
	w.WriteByte(h.ChannelCount)
	w.WriteU32(math.Float32bits(h.Distance))

	var flags byte
	if h.AdaptiveQuantization {
		flags |= flagAdaptiveQuant
	}
	if h.UseANS {
		flags |= flagANS
	}
	w.WriteByte(flags)
	w.WriteByte(byte(h.PixelType))
	w.WriteByte(byte(h.ColorTransform))
	if h.VariableBlockSize {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
	w.WriteByte(h.PassCount)
}

// DecodeFrameHeader is EncodeFrameHeader's inverse.
func DecodeFrameHeader(r *bitio.Reader) (FrameHeader, error) {
	var h FrameHeader
	if _, err := r.ReadByte(); err != nil { // version byte, not otherwise validated
		return h, err
	}
	w, err := r.ReadU32()
	if err != nil {
		return h, err
	}
	ht, err := r.ReadU32()
	if err != nil {
		return h, err
	}
	ch, err := r.ReadByte()
	if err != nil {
		return h, err
	}
	distBits, err := r.ReadU32()
	if err != nil {
		return h, err
	}
	flags, err := r.ReadByte()
	if err != nil {
		return h, err
	}
	pt, err := r.ReadByte()
	if err != nil {
		return h, err
	}
	ct, err := r.ReadByte()
	if err != nil {
		return h, err
	}
	vbs, err := r.ReadByte()
	if err != nil {
		return h, err
	}
	passes, err := r.ReadByte()
	if err != nil {
		return h, err
	}

	h.Width = w
	h.Height = ht
	h.ChannelCount = ch
	h.Distance = math.Float32frombits(distBits)
	h.AdaptiveQuantization = flags&flagAdaptiveQuant != 0
	h.UseANS = flags&flagANS != 0
	h.PixelType = PixelType(pt)
	h.ColorTransform = ColorTransformTag(ct)
	h.VariableBlockSize = vbs != 0
	h.PassCount = passes
	return h, nil
}
