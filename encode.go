package jxl

import (
	"github.com/deepteams/jxl/internal/bitio"
	"github.com/deepteams/jxl/internal/container"
	"github.com/deepteams/jxl/internal/modular"
	"github.com/deepteams/jxl/internal/vardct"
)

const (
	modeLossless = 1
	modeVarDCT   = 0
)

// Encode compresses frame into a complete ISOBMFF-wrapped JPEG XL file,
// selecting the Modular (lossless) or VarDCT (lossy) pipeline according to
// opts.Mode.
func Encode(frame ImageFrame, opts EncodingOptions) ([]byte, error) {
	opts.setDefaults()

	w, h := frame.Width(), frame.Height()
	if err := validateDimensions(w, h); err != nil {
		return nil, err
	}

	distance, lossless := opts.Mode.resolveDistance()
	channels := channelCount(frame)

	cw := bitio.NewWriter()
	container.WriteSignature(cw)
	container.EncodeImageHeader(cw, container.ImageHeader{
		Width:         uint32(w),
		Height:        uint32(h),
		BitsPerSample: byte(frame.BitsPerSample()),
		ChannelCount:  byte(channels),
		ColorSpace:    container.ColorSpaceTag(frame.ColorSpace()),
		HasAlpha:      frame.HasAlpha(),
	})
	container.EncodeFrameHeader(cw, container.DefaultFrameHeader())

	var body []byte
	var err error
	if lossless {
		body, err = encodeLossless(cw, frame, opts)
	} else {
		body, err = encodeVarDCT(cw, frame, opts, distance, channels)
	}
	if err != nil {
		return nil, classify(err)
	}
	cw.WriteData(body)

	codestream := cw.Bytes()
	return container.BuildFile(codestream, []byte("jxl "), nil), nil
}

// encodeLossless writes the lossless mode byte plus a small parameter
// header (effort, flags) ahead of the Modular payload, so
// decodeLossless can reconstruct the same modular.Options without the
// caller repeating them.
func encodeLossless(cw *bitio.Writer, frame ImageFrame, opts EncodingOptions) ([]byte, error) {
	cw.WriteByte(modeLossless)
	cw.WriteByte(byte(opts.Effort))
	var flags byte
	if opts.UseANS {
		flags |= 1
	}
	useRCT := frame.ColorSpace() == ColorSpaceRGB && frame.Channels() >= 3
	if useRCT {
		flags |= 2
	}
	cw.WriteByte(flags)

	planes := framePlanesInt(frame)
	mopts := modular.Options{Effort: opts.Effort, UseANS: opts.UseANS}
	return modular.EncodeImage(planes, mopts, useRCT)
}

// encodeVarDCT writes the VarDCT mode byte plus its own frame header
// (internal/vardct/frameheader.go) ahead of the VarDCT payload.
func encodeVarDCT(cw *bitio.Writer, frame ImageFrame, opts EncodingOptions, distance float64, channels int) ([]byte, error) {
	cw.WriteByte(modeVarDCT)

	colorTransform := resolveColorTransform(opts.ColorTransform, channels)
	vh := vardct.FrameHeader{
		Width:                uint32(frame.Width()),
		Height:               uint32(frame.Height()),
		ChannelCount:         byte(channels),
		Distance:             float32(distance),
		AdaptiveQuantization: opts.AdaptiveQuantization,
		UseANS:               opts.UseANS,
		PixelType:            pixelTypeToVarDCT(frame.PixelType()),
		ColorTransform:       colorTransform,
		VariableBlockSize:    opts.VariableBlockSize,
		PassCount:            1,
	}
	if opts.Progressive {
		vh.PassCount = byte(vardct.NumPasses)
	}
	vardct.EncodeFrameHeader(cw, vh)

	planes := framePlanesFloat(frame)
	fopts := vardct.FrameOptions{
		Distance:             distance,
		PixelType:            pixelTypeToVarDCT(frame.PixelType()),
		ColorTransform:       colorTransform,
		AdaptiveQuantization: opts.AdaptiveQuantization,
		UseANS:               opts.UseANS,
		Progressive:          opts.Progressive,
	}
	return vardct.EncodeFrame(planes, fopts)
}
