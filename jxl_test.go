package jxl

// testFrame is a minimal in-memory ImageFrame used by this package's own
// tests; the jxlimage sub-package is the real-world adapter over
// image.Image.
type testFrame struct {
	w, h, channels int
	bps            int
	alpha          bool
	alphaMode      AlphaMode
	pixType        PixelType
	colorSpace     ColorSpace
	pix            []uint16 // interleaved, channel-major per pixel
}

func newTestFrame(w, h, channels int, cs ColorSpace) *testFrame {
	return &testFrame{
		w: w, h: h, channels: channels, bps: 8,
		colorSpace: cs,
		pix:        make([]uint16, w*h*channels),
	}
}

func (f *testFrame) Width() int           { return f.w }
func (f *testFrame) Height() int          { return f.h }
func (f *testFrame) Channels() int        { return f.channels }
func (f *testFrame) BitsPerSample() int   { return f.bps }
func (f *testFrame) HasAlpha() bool       { return f.alpha }
func (f *testFrame) AlphaMode() AlphaMode { return f.alphaMode }
func (f *testFrame) PixelType() PixelType { return f.pixType }
func (f *testFrame) ColorSpace() ColorSpace { return f.colorSpace }
func (f *testFrame) Orientation() Orientation { return OrientationNormal }

func (f *testFrame) GetPixel(x, y, channel int) uint16 {
	return f.pix[(y*f.w+x)*f.channels+channel]
}

func (f *testFrame) SetPixel(x, y, channel int, v uint16) {
	f.pix[(y*f.w+x)*f.channels+channel] = v
}
