// Package container implements the codestream signature, image and frame
// headers, and ISOBMFF box framing that wrap a JPEG XL codestream.
package container

// CodestreamSignature is the 2-byte marker that opens a bare codestream
// (outside of, or inside a jxlc box within, an ISOBMFF file).
var CodestreamSignature = [2]byte{0xFF, 0x0A}

// SignatureSize is the size in bytes of the codestream signature.
const SignatureSize = 2

// ImageHeaderSize is the fixed, byte-aligned size of the simplified image
// header following the signature: together with SignatureSize this adds
// up to the 14-byte total.
const ImageHeaderSize = 12

// ColorSpaceTag enumerates the colour-space byte carried in the image
// header.
type ColorSpaceTag byte

const (
	ColorSpaceGrey    ColorSpaceTag = 0
	ColorSpaceRGB     ColorSpaceTag = 1
	ColorSpaceYCbCr   ColorSpaceTag = 2
	ColorSpaceUnknown ColorSpaceTag = 3
)

// FrameType enumerates the 2-bit frame-type field of the full frame header.
type FrameType byte

const (
	FrameTypeRegular    FrameType = 0
	FrameTypeReferenceOnly FrameType = 1
	FrameTypeDCOnly     FrameType = 2
	FrameTypeSkip       FrameType = 3
)

// EncodingSelector distinguishes VarDCT from Modular at the frame-header
// level, the 1-bit encoding selector.
type EncodingSelector byte

const (
	EncodingVarDCT  EncodingSelector = 0
	EncodingModular EncodingSelector = 1
)

// BlendMode enumerates the 2-bit blend-mode field, present only when a
// frame header's blend-info flag is set.
type BlendMode byte

const (
	BlendReplace BlendMode = 0
	BlendAlpha   BlendMode = 1
	BlendAdd     BlendMode = 2
	BlendMul     BlendMode = 3
)

// ReferenceSlot enumerates the 2-bit save-as-reference field.
type ReferenceSlot byte

const (
	ReferenceNone ReferenceSlot = 0
	ReferenceSlot0 ReferenceSlot = 1
	ReferenceSlot1 ReferenceSlot = 2
	ReferenceSlot2 ReferenceSlot = 3
)

// Box type tags recognised inside an ISOBMFF container. Stored as plain
// ASCII strings rather than packed FourCC integers since box types are
// compared and logged far more often than packed.
const (
	BoxTypeSignature  = "JXL "
	BoxTypeFileType   = "ftyp"
	BoxTypeCodestream = "jxlc"
	BoxTypeExif       = "Exif"
	BoxTypeXML        = "xml "
	BoxTypeColorProfile = "colr"
	BoxTypeFrameIndex = "jxli"
	BoxTypeLevel      = "jxll"
)

// BoxHeaderSize is the size of a box's (size, type) header, in bytes.
const BoxHeaderSize = 8

// FrameIndexEntrySize is the size in bytes of one jxli entry: U32 frame
// number, U64 byte offset, U32 duration.
const FrameIndexEntrySize = 16
