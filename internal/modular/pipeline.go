package modular

import (
	"errors"

	"github.com/deepteams/jxl/internal/bitio"
)

// ErrChannelCountMismatch is returned when a decoded channel payload
// count does not match what the frame header declared.
var ErrChannelCountMismatch = errors.New("modular: channel count mismatch")

// Options controls the Modular pipeline's prediction and entropy choices.
// It mirrors the narrow slice of the external EncodingOptions contract
// (spec.md §6) this package actually reads.
type Options struct {
	Effort        int  // numeric effort rank; selects MED vs MA-tree prediction
	UseANS        bool // false: run-length backend; true: ANS backend
	SqueezeLevels int  // 0 uses DefaultSqueezeLevels
}

func (o Options) levels() int {
	if o.SqueezeLevels > 0 {
		return o.SqueezeLevels
	}
	return DefaultSqueezeLevels
}

// predictPlane computes the per-pixel prediction residual for every pixel
// of src in raster scan order, using tree (MA-tree routing) when non-nil
// or plain MED otherwise. channel is the channel index fed to MA tree
// property evaluation.
func predictPlane(src *Plane, channel int, tree *MATree) *Plane {
	res := NewPlane(src.W, src.H)
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			pixNb := causalNeighbors(src, x, y)
			var pred int
			if tree != nil {
				resNb := causalNeighbors(res, x, y)
				ctx := PropertyContext{Channel: channel, Pixels: pixNb, Residuals: resNb}
				kind, _ := tree.Route(ctx)
				pred = Predict(kind, pixNb)
			} else {
				pred = Predict(PredMED, pixNb)
			}
			res.Set(x, y, src.At(x, y)-pred)
		}
	}
	return res
}

// reconstructPlane is predictPlane's inverse: given the residual plane
// (post inverse-squeeze, in original raster order) it rebuilds pixel
// values causally, since the MA tree and MED predictor both read already
// reconstructed neighbours.
func reconstructPlane(res *Plane, channel int, tree *MATree) *Plane {
	out := NewPlane(res.W, res.H)
	for y := 0; y < res.H; y++ {
		for x := 0; x < res.W; x++ {
			pixNb := causalNeighbors(out, x, y)
			var pred int
			if tree != nil {
				resNb := causalNeighbors(res, x, y)
				ctx := PropertyContext{Channel: channel, Pixels: pixNb, Residuals: resNb}
				kind, _ := tree.Route(ctx)
				pred = Predict(kind, pixNb)
			} else {
				pred = Predict(PredMED, pixNb)
			}
			out.Set(x, y, pred+res.At(x, y))
		}
	}
	return out
}

// contextsForPlane computes, for every position of plane in raster order,
// the entropy context derived from its own causal neighbourhood (treated
// as residual magnitudes; out-of-bounds neighbours read as 0).
func contextsForPlane(plane *Plane) []int {
	ctxs := make([]int, plane.W*plane.H)
	i := 0
	for y := 0; y < plane.H; y++ {
		for x := 0; x < plane.W; x++ {
			var n, w, nw int
			if x > 0 {
				w = plane.At(x-1, y)
			}
			if y > 0 {
				n = plane.At(x, y-1)
			}
			if x > 0 && y > 0 {
				nw = plane.At(x-1, y-1)
			}
			ctxs[i] = SelectContext(n, w, nw)
			i++
		}
	}
	return ctxs
}

// EncodeChannel runs the full per-channel pipeline: prediction, squeeze,
// entropy coding. The returned block is byte-aligned.
func EncodeChannel(src *Plane, channel int, opts Options) ([]byte, error) {
	tree := SelectTree(opts.Effort)
	residual := predictPlane(src, channel, tree)

	plan := BuildSqueezePlan(src.W, src.H, opts.levels())
	ApplyForwardSqueeze(residual, plan)

	flat := make([]int, len(residual.Pix))
	copy(flat, residual.Pix)
	ctxs := contextsForPlane(residual)

	var body []byte
	var err error
	if opts.UseANS {
		body, err = EncodeANS(flat, ctxs, NumEntropyContexts)
	} else {
		body = EncodeRunLength(flat, ctxs)
	}
	if err != nil {
		return nil, err
	}

	w := bitio.NewWriter()
	if tree != nil {
		w.WriteBit(1)
	} else {
		w.WriteBit(0)
	}
	if opts.UseANS {
		w.WriteBit(1)
	} else {
		w.WriteBit(0)
	}
	w.WriteData(body)
	return w.Bytes(), nil
}

// DecodeChannel is EncodeChannel's inverse. w,h must match the original
// plane dimensions (carried by the frame header in the full pipeline).
func DecodeChannel(data []byte, w, h, channel int, opts Options) (*Plane, error) {
	r := bitio.NewReader(data)
	treeBit, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	ansBit, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	body, err := r.ReadData(len(data) - 1) // aligns, then takes the remainder
	if err != nil {
		return nil, err
	}

	var tree *MATree
	if treeBit == 1 {
		if opts.Effort >= 10 {
			tree = ExtendedMATree()
		} else {
			tree = DefaultMATree()
		}
	}

	n := w * h
	flat := make([]int, n)
	plan := BuildSqueezePlan(w, h, opts.levels())

	if ansBit == 1 {
		dec, count, err := NewANSDecoder(body)
		if err != nil {
			return nil, err
		}
		if count != n {
			return nil, ErrChannelCountMismatch
		}
		residual := &Plane{W: w, H: h, Pix: flat}
		for i := 0; i < n; i++ {
			x, y := i%w, i/w
			var nb, wb, nwb int
			if x > 0 {
				wb = residual.At(x-1, y)
			}
			if y > 0 {
				nb = residual.At(x, y-1)
			}
			if x > 0 && y > 0 {
				nwb = residual.At(x-1, y-1)
			}
			ctx := SelectContext(nb, wb, nwb)
			v, err := dec.Next(ctx)
			if err != nil {
				return nil, err
			}
			residual.Set(x, y, v)
		}
		ApplyInverseSqueeze(residual, plan)
		return reconstructPlane(residual, channel, tree), nil
	}

	decoded, err := DecodeRunLength(body, n)
	if err != nil {
		return nil, err
	}
	residual := &Plane{W: w, H: h, Pix: decoded}
	ApplyInverseSqueeze(residual, plan)
	return reconstructPlane(residual, channel, tree), nil
}
