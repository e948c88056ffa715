// Package jxl implements the core of a JPEG XL (ISO/IEC 18181-1) image
// codec: colour transforms, predictive and transform coding, entropy
// coding, and container framing, without any CGo dependency.
//
// The package supports:
//   - Lossless encoding/decoding via the Modular pipeline (YCoCg-R,
//     MED/MA-tree prediction, squeeze wavelet, context-modelled entropy).
//   - Lossy encoding/decoding via the VarDCT pipeline (YCbCr/XYB, variable
//     block DCT, chroma-from-luma, adaptive quantisation).
//   - ISOBMFF container framing and bare-codestream framing.
//
// Basic usage for encoding:
//
//	data, err := jxl.Encode(frame, jxl.EncodingOptions{Mode: jxl.ModeLossy(90)})
//
// Basic usage for decoding:
//
//	err := jxl.Decode(data, out) // out is an ImageFrame sized from DecodeHeader
package jxl
