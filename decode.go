package jxl

import (
	"github.com/deepteams/jxl/internal/bitio"
	"github.com/deepteams/jxl/internal/container"
	"github.com/deepteams/jxl/internal/modular"
	"github.com/deepteams/jxl/internal/vardct"
)

// Header describes a file's dimensions and sample format, enough for a
// caller to allocate an ImageFrame of the right shape before calling
// Decode.
type Header struct {
	Width, Height int
	ChannelCount  int
	BitsPerSample int
	ColorSpace    ColorSpace
	HasAlpha      bool
}

// DecodeHeader parses just the signature, image header, and frame header
// of data (accepting either a bare codestream or an ISOBMFF-wrapped file),
// without decoding any pixel data.
func DecodeHeader(data []byte) (Header, error) {
	codestream, err := extractCodestream(data)
	if err != nil {
		return Header{}, classify(err)
	}
	r := bitio.NewReader(codestream)
	if err := container.ReadSignature(r); err != nil {
		return Header{}, classify(err)
	}
	ih, err := container.DecodeImageHeader(r)
	if err != nil {
		return Header{}, classify(err)
	}
	if _, err := container.DecodeFrameHeader(r); err != nil {
		return Header{}, classify(err)
	}
	if err := validateDimensions(int(ih.Width), int(ih.Height)); err != nil {
		return Header{}, err
	}
	return Header{
		Width:         int(ih.Width),
		Height:        int(ih.Height),
		ChannelCount:  int(ih.ChannelCount),
		BitsPerSample: int(ih.BitsPerSample),
		ColorSpace:    ColorSpace(ih.ColorSpace),
		HasAlpha:      ih.HasAlpha,
	}, nil
}

// Decode decompresses data (a bare codestream or an ISOBMFF-wrapped file)
// and writes its pixels into out via SetPixel. out must already be sized
// and shaped to match DecodeHeader's result (callers typically call
// DecodeHeader first to allocate out).
func Decode(data []byte, out ImageFrame) error {
	codestream, err := extractCodestream(data)
	if err != nil {
		return classify(err)
	}

	r := bitio.NewReader(codestream)
	if err := container.ReadSignature(r); err != nil {
		return classify(err)
	}
	ih, err := container.DecodeImageHeader(r)
	if err != nil {
		return classify(err)
	}
	if _, err := container.DecodeFrameHeader(r); err != nil {
		return classify(err)
	}
	if err := validateDimensions(int(ih.Width), int(ih.Height)); err != nil {
		return err
	}

	mode, err := r.ReadByte()
	if err != nil {
		return classify(err)
	}
	rest, err := r.ReadData(r.Remaining())
	if err != nil {
		return classify(err)
	}

	switch mode {
	case modeLossless:
		return decodeLossless(rest, int(ih.Width), int(ih.Height), int(ih.ChannelCount), out)
	case modeVarDCT:
		return decodeVarDCT(rest, int(ih.Width), int(ih.Height), int(ih.ChannelCount), out)
	default:
		return wrapErr(KindHeaderParse, errUnknownMode)
	}
}

// extractCodestream accepts either a bare codestream (starting with the
// signature) or a complete ISOBMFF file, and returns the bare codestream
// bytes either way.
func extractCodestream(data []byte) ([]byte, error) {
	if len(data) >= 2 && data[0] == container.CodestreamSignature[0] && data[1] == container.CodestreamSignature[1] {
		return data, nil
	}
	f, err := container.ParseFile(data)
	if err != nil {
		return nil, err
	}
	return f.Codestream, nil
}

func decodeLossless(data []byte, w, h, channels int, out ImageFrame) error {
	r := bitio.NewReader(data)
	effort, err := r.ReadByte()
	if err != nil {
		return classify(err)
	}
	flags, err := r.ReadByte()
	if err != nil {
		return classify(err)
	}
	useANS := flags&1 != 0
	useRCT := flags&2 != 0
	body, err := r.ReadData(r.Remaining())
	if err != nil {
		return classify(err)
	}

	mopts := modular.Options{Effort: int(effort), UseANS: useANS}
	planes, err := modular.DecodeImage(body, w, h, channels, mopts, useRCT)
	if err != nil {
		return classify(err)
	}
	writeIntPlanesToFrame(planes, out)
	return nil
}

func decodeVarDCT(data []byte, w, h, channels int, out ImageFrame) error {
	r := bitio.NewReader(data)
	vh, err := vardct.DecodeFrameHeader(r)
	if err != nil {
		return classify(err)
	}
	body, err := r.ReadData(r.Remaining())
	if err != nil {
		return classify(err)
	}

	fopts := vardct.FrameOptions{
		Distance:             float64(vh.Distance),
		PixelType:            vh.PixelType,
		ColorTransform:       vh.ColorTransform,
		AdaptiveQuantization: vh.AdaptiveQuantization,
		UseANS:               vh.UseANS,
		Progressive:          vh.PassCount > 1,
	}
	planes, err := vardct.DecodeFrame(body, w, h, channels, fopts)
	if err != nil {
		return classify(err)
	}
	writeFloatPlanesToFrame(planes, out)
	return nil
}
