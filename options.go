package jxl

// ModeKind selects which family of encoding the caller wants.
type ModeKind int

const (
	// ModeKindLossless requests the Modular pipeline, bit-exact output.
	ModeKindLossless ModeKind = iota
	// ModeKindLossy requests the VarDCT pipeline driven by a perceptual
	// quality rank in [0,100].
	ModeKindLossy
	// ModeKindDistance requests the VarDCT pipeline driven directly by a
	// butteraugli-style distance; distance 0 falls back to lossless.
	ModeKindDistance
)

// Mode is a tagged union over the three ways a caller can request an
// encoding: lossless, quality-driven lossy, or distance-driven lossy.
// Construct one with ModeLossless, ModeLossy, or ModeDistance.
type Mode struct {
	Kind     ModeKind
	Quality  float64 // valid when Kind == ModeKindLossy, in [0,100]
	Distance float64 // valid when Kind == ModeKindDistance, >= 0
}

// ModeLossless requests the Modular (lossless) pipeline.
func ModeLossless() Mode { return Mode{Kind: ModeKindLossless} }

// ModeLossy requests the VarDCT pipeline at the given perceptual quality,
// converted to a distance via QualityToDistance.
func ModeLossy(quality float64) Mode { return Mode{Kind: ModeKindLossy, Quality: quality} }

// ModeDistance requests the VarDCT pipeline at an explicit distance.
// Distance 0 is equivalent to ModeLossless for VarDCT-capable callers.
func ModeDistance(distance float64) Mode { return Mode{Kind: ModeKindDistance, Distance: distance} }

// QualityToDistance maps a perceptual quality rank in [0,100] to a
// butteraugli-style distance: 0 is visually lossless, larger values are
// coarser. q >= 100 maps to exactly 0 (request the lossless path).
func QualityToDistance(q float64) float64 {
	switch {
	case q >= 100:
		return 0.0
	case q >= 30:
		return 0.1 + (100-q)/10
	default:
		return 7.0 + (30-q)/3.75
	}
}

// resolveDistance returns the distance this mode implies, and whether the
// lossless (Modular) path should be used instead of VarDCT.
func (m Mode) resolveDistance() (distance float64, lossless bool) {
	switch m.Kind {
	case ModeKindLossless:
		return 0, true
	case ModeKindLossy:
		d := QualityToDistance(m.Quality)
		return d, d == 0
	case ModeKindDistance:
		return m.Distance, m.Distance == 0
	default:
		return 0, true
	}
}

// EffortSquirrel is the named effort rank at and above which the Modular
// pipeline switches from MED to MA-tree prediction (internal/modular's
// "squirrel" threshold, exposed here so callers needn't know the magic
// number).
const EffortSquirrel = 7

// RegionOfInterest describes a rectangle, with a feathering function
// controlling how quickly its influence falls off outside the rectangle.
// Encode does not read it: quantisation is the same across the frame
// whether or not RegionOfInterest is set.
type RegionOfInterest struct {
	X0, Y0, X1, Y1 int
	// DistanceMultiplier returns a quantisation-step multiplier for a point
	// (px, py) given its position relative to the rectangle; 1.0 inside,
	// increasing with distance outside. A nil func is equivalent to a hard
	// rectangle boundary.
	DistanceMultiplier func(px, py int) float64
}

// AnimationConfig carries per-frame animation attributes for a caller's
// own frame sequencer. The core does not sequence frames and does not read
// these fields; Encode codes a single ImageFrame.
type AnimationConfig struct {
	FPSNumerator, FPSDenominator uint32
	LoopCount                    int
	FrameDurations               []uint32 // per-frame duration, ticks at FPS
}

// ReferenceFrameConfig bounds how often a full (keyframe) frame must be
// emitted versus delta/reference frames, at the per-frame contract level
// only; the core does not itself decide delta-frame content.
type ReferenceFrameConfig struct {
	KeyframeInterval int
	MaxDeltaRun      int
}

// ColorTransform selects which of VarDCT's two colour transforms a lossy
// encode applies before the DCT stage, the header flag spec.md §4.4
// describes. ColorTransformAuto lets the core pick: XYB for 3+ channel
// frames (JPEG XL's native perceptual space), none for single-channel
// (grey) frames.
type ColorTransform int

const (
	ColorTransformAuto ColorTransform = iota
	ColorTransformYCbCr
	ColorTransformXYB
	ColorTransformNone
)

// EncodingOptions is the narrow slice of the external EncodingOptions
// collaborator (spec.md §6) the core actually reads.
type EncodingOptions struct {
	Mode                 Mode
	Effort               int
	AdaptiveQuantization bool
	UseANS               bool
	Progressive          bool
	VariableBlockSize    bool
	ColorTransform       ColorTransform
	RegionOfInterest     *RegionOfInterest
	AnimationConfig      *AnimationConfig
	ReferenceFrameConfig *ReferenceFrameConfig
}

// setDefaults fills in the zero-value defaults a caller is allowed to
// leave unset: effort 1 (fastest, MED-only), everything else off.
func (o *EncodingOptions) setDefaults() {
	if o.Effort == 0 {
		o.Effort = 1
	}
}
