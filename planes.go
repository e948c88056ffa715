package jxl

import (
	"github.com/deepteams/jxl/internal/modular"
	"github.com/deepteams/jxl/internal/vardct"
)

// channelCount returns the number of ImageFrame channels this codestream carries
// through the core: colour channels plus, when present, a trailing alpha
// channel. Both pipelines treat alpha as just another channel.
func channelCount(frame ImageFrame) int {
	n := frame.Channels()
	if frame.HasAlpha() {
		n++
	}
	return n
}

// framePlanesInt copies frame's samples into one modular.Plane per
// channel, in the 16-bit domain modular.Plane already operates in.
func framePlanesInt(frame ImageFrame) []*modular.Plane {
	w, h, n := frame.Width(), frame.Height(), channelCount(frame)
	planes := make([]*modular.Plane, n)
	for c := 0; c < n; c++ {
		p := modular.NewPlane(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p.Set(x, y, int(frame.GetPixel(x, y, c)))
			}
		}
		planes[c] = p
	}
	return planes
}

// writeIntPlanesToFrame copies decoded modular.Plane samples back into a
// caller-supplied ImageFrame via SetPixel, clamping to the 16-bit domain.
func writeIntPlanesToFrame(planes []*modular.Plane, frame ImageFrame) {
	for c, p := range planes {
		for y := 0; y < p.H; y++ {
			for x := 0; x < p.W; x++ {
				frame.SetPixel(x, y, c, clampU16(p.At(x, y)))
			}
		}
	}
}

// framePlanesFloat copies frame's samples into one vardct.FloatPlane per
// channel.
func framePlanesFloat(frame ImageFrame) []*vardct.FloatPlane {
	w, h, n := frame.Width(), frame.Height(), channelCount(frame)
	planes := make([]*vardct.FloatPlane, n)
	for c := 0; c < n; c++ {
		p := vardct.NewFloatPlane(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p.Set(x, y, float64(frame.GetPixel(x, y, c)))
			}
		}
		planes[c] = p
	}
	return planes
}

// writeFloatPlanesToFrame copies decoded vardct.FloatPlane samples back
// into a caller-supplied ImageFrame via SetPixel.
func writeFloatPlanesToFrame(planes []*vardct.FloatPlane, frame ImageFrame) {
	for c, p := range planes {
		for y := 0; y < p.H; y++ {
			for x := 0; x < p.W; x++ {
				frame.SetPixel(x, y, c, clampU16(int(p.At(x, y)+0.5)))
			}
		}
	}
}

func clampU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

// pixelTypeToVarDCT maps the external PixelType to the VarDCT pipeline's
// own enum; the two share the same uint8/uint16/float32 ordering.
func pixelTypeToVarDCT(pt PixelType) vardct.PixelType {
	return vardct.PixelType(pt)
}

// resolveColorTransform turns a caller's ColorTransform request (possibly
// Auto) into the concrete tag VarDCT's frame header carries.
func resolveColorTransform(ct ColorTransform, channels int) vardct.ColorTransformTag {
	switch ct {
	case ColorTransformYCbCr:
		return vardct.ColorTransformYCbCr
	case ColorTransformXYB:
		return vardct.ColorTransformXYB
	case ColorTransformNone:
		return vardct.ColorTransformNone
	default: // ColorTransformAuto
		if channels >= 3 {
			return vardct.ColorTransformXYB
		}
		return vardct.ColorTransformNone
	}
}
