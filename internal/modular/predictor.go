package modular

// Plane is a single-channel rectangular buffer of pixel or residual
// values. Values outside [0,65535] are permitted transiently (e.g. signed
// residuals) before entropy coding recentres them.
type Plane struct {
	W, H int
	Pix  []int
}

// NewPlane allocates a zeroed W*H plane.
func NewPlane(w, h int) *Plane {
	return &Plane{W: w, H: h, Pix: make([]int, w*h)}
}

// At returns the value at (x,y).
func (p *Plane) At(x, y int) int { return p.Pix[y*p.W+x] }

// Set stores v at (x,y).
func (p *Plane) Set(x, y, v int) { p.Pix[y*p.W+x] = v }

// Neighborhood holds the causal neighbour values of a pixel, with
// boundary fallback to the nearest available neighbour so that edge
// pixels never read an implicit zero that would bias the colour-transformed
// planes (whose "zero" is recentred, not black).
type Neighborhood struct {
	N, W, NW, NE int
}

// causalNeighbors computes the N/W/NW/NE neighbourhood of (x,y) in p,
// falling back at the image boundary to the nearest neighbour already
// computed, and to 0 only at the true origin.
func causalNeighbors(p *Plane, x, y int) Neighborhood {
	var w, n, nw, ne int
	if x > 0 {
		w = p.At(x-1, y)
	} else if y > 0 {
		w = p.At(x, y-1)
	}
	if y > 0 {
		n = p.At(x, y-1)
	} else {
		n = w
	}
	if x > 0 && y > 0 {
		nw = p.At(x-1, y-1)
	} else {
		nw = w
	}
	if y > 0 && x+1 < p.W {
		ne = p.At(x+1, y-1)
	} else {
		ne = n
	}
	return Neighborhood{N: n, W: w, NW: nw, NE: ne}
}

// PredictorKind is the closed set of predictor functions a MA tree leaf
// may select.
type PredictorKind int

const (
	PredZero PredictorKind = iota
	PredWest
	PredNorth
	PredAvgWN
	PredMED
	PredSelectGradient
	PredAvgWNW
	PredAvgNNW
	numPredictors
)

func clamp16(v int) int {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return v
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Predict evaluates predictor kind against a causal neighbourhood.
func Predict(kind PredictorKind, nb Neighborhood) int {
	switch kind {
	case PredZero:
		return 0
	case PredWest:
		return nb.W
	case PredNorth:
		return nb.N
	case PredAvgWN:
		return (nb.W + nb.N) / 2
	case PredMED:
		return clamp16(nb.N + nb.W - nb.NW)
	case PredSelectGradient:
		dW := iabs(nb.NW - nb.W)
		dN := iabs(nb.NW - nb.N)
		if dW < dN {
			return nb.W
		}
		return nb.N
	case PredAvgWNW:
		return (nb.W + nb.NW) / 2
	case PredAvgNNW:
		return (nb.N + nb.NW) / 2
	default:
		return 0
	}
}
