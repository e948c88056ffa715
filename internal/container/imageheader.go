package container

import "github.com/deepteams/jxl/internal/bitio"

// ImageHeader is the simplified, fixed-size header following the
// codestream signature: overall dimensions and sample format, independent
// of any particular frame.
type ImageHeader struct {
	Width         uint32
	Height        uint32
	BitsPerSample byte
	ChannelCount  byte
	ColorSpace    ColorSpaceTag
	HasAlpha      bool
}

// WriteSignature appends the 2-byte codestream signature.
func WriteSignature(w *bitio.Writer) {
	w.WriteByte(CodestreamSignature[0])
	w.WriteByte(CodestreamSignature[1])
}

// ReadSignature consumes and validates the 2-byte codestream signature.
func ReadSignature(r *bitio.Reader) error {
	a, err := r.ReadByte()
	if err != nil {
		return ErrTruncatedHeader
	}
	b, err := r.ReadByte()
	if err != nil {
		return ErrTruncatedHeader
	}
	if a != CodestreamSignature[0] || b != CodestreamSignature[1] {
		return ErrBadSignature
	}
	return nil
}

// EncodeImageHeader writes the 12-byte image header: U32 width, U32
// height, byte bits-per-sample, byte channel count, byte colour-space tag,
// 1-bit alpha flag, flushed to the next byte boundary.
func EncodeImageHeader(w *bitio.Writer, h ImageHeader) {
	w.WriteU32(h.Width)
	w.WriteU32(h.Height)
	w.WriteByte(h.BitsPerSample)
	w.WriteByte(h.ChannelCount)
	w.WriteByte(byte(h.ColorSpace))
	var alpha uint64
	if h.HasAlpha {
		alpha = 1
	}
	w.WriteBits(alpha, 1)
	w.FlushByte()
}

// DecodeImageHeader reads an ImageHeader written by EncodeImageHeader.
func DecodeImageHeader(r *bitio.Reader) (ImageHeader, error) {
	var h ImageHeader
	width, err := r.ReadU32()
	if err != nil {
		return h, ErrTruncatedHeader
	}
	height, err := r.ReadU32()
	if err != nil {
		return h, ErrTruncatedHeader
	}
	bps, err := r.ReadByte()
	if err != nil {
		return h, ErrTruncatedHeader
	}
	channels, err := r.ReadByte()
	if err != nil {
		return h, ErrTruncatedHeader
	}
	cs, err := r.ReadByte()
	if err != nil {
		return h, ErrTruncatedHeader
	}
	alpha, err := r.ReadBits(1)
	if err != nil {
		return h, ErrTruncatedHeader
	}
	r.SkipToByteAlignment()

	h.Width = width
	h.Height = height
	h.BitsPerSample = bps
	h.ChannelCount = channels
	h.ColorSpace = ColorSpaceTag(cs)
	h.HasAlpha = alpha != 0
	return h, nil
}
