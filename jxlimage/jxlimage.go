// Package jxlimage adapts the standard library's image.Image to the jxl
// package's ImageFrame interface, so a caller who already has an
// image.NRGBA, image.RGBA, image.Gray, or image.YCbCr can hand it to
// jxl.Encode without writing their own adapter.
package jxlimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/deepteams/jxl"
)

// Frame wraps an image.Image (or a freshly allocated image.NRGBA) as a
// jxl.ImageFrame. Pixel access goes through the standard library's
// color.Color conversion, which is adequate for the reference adapter but
// not the fastest path for a hot encode loop over a large image.
type Frame struct {
	img    image.Image
	bounds image.Rectangle
	alpha  bool
	cs     jxl.ColorSpace
}

// NewFrame wraps img for encoding. The colour space is inferred from img's
// concrete type: image.Gray/Gray16 map to ColorSpaceGrey, image.YCbCr maps
// to ColorSpaceYCbCr, everything else maps to ColorSpaceRGB.
func NewFrame(img image.Image) *Frame {
	f := &Frame{img: img, bounds: img.Bounds(), cs: jxl.ColorSpaceRGB}
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		f.cs = jxl.ColorSpaceGrey
	case *image.YCbCr:
		f.cs = jxl.ColorSpaceYCbCr
	case *image.NRGBA, *image.RGBA:
		f.alpha = true
	}
	return f
}

// NewBlankFrame allocates a fresh image.NRGBA of size w x h and wraps it,
// ready to be passed as the out argument to jxl.Decode.
func NewBlankFrame(w, h int) *Frame {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	return &Frame{img: img, bounds: img.Bounds(), alpha: true, cs: jxl.ColorSpaceRGB}
}

// Image returns the wrapped image.Image, for a caller that wants to use
// the standard library's image/png, image/jpeg, etc. on the decoded
// result.
func (f *Frame) Image() image.Image { return f.img }

func (f *Frame) Width() int  { return f.bounds.Dx() }
func (f *Frame) Height() int { return f.bounds.Dy() }

func (f *Frame) Channels() int {
	if f.cs == jxl.ColorSpaceGrey {
		return 1
	}
	return 3
}

func (f *Frame) BitsPerSample() int { return 8 }
func (f *Frame) HasAlpha() bool     { return f.alpha }
func (f *Frame) AlphaMode() jxl.AlphaMode { return jxl.AlphaStraight }
func (f *Frame) PixelType() jxl.PixelType { return jxl.PixelUint8 }
func (f *Frame) ColorSpace() jxl.ColorSpace { return f.cs }
func (f *Frame) Orientation() jxl.Orientation { return jxl.OrientationNormal }

// GetPixel maps the requested channel through color.Color's 16-bit
// RGBA() accessor, then rescales to the core's 16-bit domain (RGBA()
// already returns values in [0,65535], so this is a direct passthrough
// except for the grey and alpha-channel cases).
func (f *Frame) GetPixel(x, y, channel int) uint16 {
	c := f.img.At(f.bounds.Min.X+x, f.bounds.Min.Y+y)
	if f.cs == jxl.ColorSpaceGrey {
		g := color.GrayModel.Convert(c).(color.Gray)
		return uint16(g.Y) * 257
	}
	r, g, b, a := c.RGBA()
	switch channel {
	case 0:
		return uint16(r)
	case 1:
		return uint16(g)
	case 2:
		return uint16(b)
	case 3:
		return uint16(a)
	default:
		panic(fmt.Sprintf("jxlimage: channel %d out of range", channel))
	}
}

// SetPixel writes into the wrapped image via its Set method, converting
// from the core's 16-bit domain down to whatever the underlying image
// type stores.
func (f *Frame) SetPixel(x, y, channel int, v uint16) {
	setter, ok := f.img.(interface{ Set(x, y int, c color.Color) })
	if !ok {
		return
	}
	px := f.bounds.Min.X + x
	py := f.bounds.Min.Y + y
	if f.cs == jxl.ColorSpaceGrey {
		setter.Set(px, py, color.Gray16{Y: v})
		return
	}
	existing := f.img.At(px, py)
	r, g, b, a := existing.RGBA()
	switch channel {
	case 0:
		r = uint32(v)
	case 1:
		g = uint32(v)
	case 2:
		b = uint32(v)
	case 3:
		a = uint32(v)
	}
	setter.Set(px, py, color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)})
}
