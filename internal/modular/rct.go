// Package modular implements the lossless (Modular) pipeline: the
// reversible YCoCg-R colour transform, MED and Meta-Adaptive tree
// predictors, the integer Haar-like squeeze wavelet, and the two
// context-modelled entropy backends that ride on top of
// internal/entropy's rANS engine.
package modular

// chromaOffset recentres the signed Co/Cg planes produced by ForwardRCT
// into the unsigned 16-bit domain every channel is stored in.
const chromaOffset = 32768

// ForwardRCT applies the reversible YCoCg-R lifting transform to one RGB
// triple, each component in [0,65535]. It returns (Y, Co, Cg) with Co and
// Cg already recentred to an unsigned 16-bit domain by chromaOffset.
func ForwardRCT(r, g, b int) (y, co, cg int) {
	coS := r - b
	t := b + (coS >> 1)
	cgS := g - t
	yV := t + (cgS >> 1)
	return yV, coS + chromaOffset, cgS + chromaOffset
}

// InverseRCT reconstructs (R, G, B) from (Y, Co, Cg) as produced by
// ForwardRCT. It is the exact inverse: InverseRCT(ForwardRCT(r,g,b)) ==
// (r,g,b) for every r,g,b in [0,65535].
func InverseRCT(y, co, cg int) (r, g, b int) {
	coS := co - chromaOffset
	cgS := cg - chromaOffset
	t := y - (cgS >> 1)
	gV := cgS + t
	bV := t - (coS >> 1)
	rV := coS + bV
	return rV, gV, bV
}
