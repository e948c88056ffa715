package modular

// Property is the closed set of scalar features an MA tree node can test.
type Property int

const (
	PropChannel Property = iota
	PropAbsWNW           // |W-NW|
	PropAbsNNW           // |N-NW|
	PropN
	PropW
	PropNW
	PropWMinusNW
	PropNMinusNW
	PropNMinusNE
	PropMaxAbsResidual // max(|residual N|, |residual W|, |residual NW|)
)

// PropertyContext bundles everything a property evaluator needs: the
// channel being coded, the causal pixel neighbourhood, and the causal
// neighbourhood of residuals already produced for this channel.
type PropertyContext struct {
	Channel    int
	Pixels     Neighborhood
	Residuals  Neighborhood
}

// EvalProperty computes the scalar value of prop for ctx.
func EvalProperty(ctx PropertyContext, prop Property) int {
	switch prop {
	case PropChannel:
		return ctx.Channel
	case PropAbsWNW:
		return iabs(ctx.Pixels.W - ctx.Pixels.NW)
	case PropAbsNNW:
		return iabs(ctx.Pixels.N - ctx.Pixels.NW)
	case PropN:
		return ctx.Pixels.N
	case PropW:
		return ctx.Pixels.W
	case PropNW:
		return ctx.Pixels.NW
	case PropWMinusNW:
		return ctx.Pixels.W - ctx.Pixels.NW
	case PropNMinusNW:
		return ctx.Pixels.N - ctx.Pixels.NW
	case PropNMinusNE:
		return ctx.Pixels.N - ctx.Pixels.NE
	case PropMaxAbsResidual:
		m := iabs(ctx.Residuals.N)
		if v := iabs(ctx.Residuals.W); v > m {
			m = v
		}
		if v := iabs(ctx.Residuals.NW); v > m {
			m = v
		}
		return m
	default:
		return 0
	}
}

// MANode is one node of a flat MA tree array. Internal nodes hold a
// property/threshold test and the indices of their two children; leaves
// hold the predictor and entropy context they route to.
type MANode struct {
	Leaf      bool
	Property  Property
	Threshold int
	Left      int
	Right     int
	Predictor PredictorKind
	Context   int
}

// MATree is a read-only, flat decision tree built once per effort level
// and shared across every pixel of a channel.
type MATree struct {
	Nodes      []MANode
	NumContext int
}

// Route walks the tree from the root, testing EvalProperty(ctx, node.Property)
// <= node.Threshold to go left, else right, until it reaches a leaf.
func (t *MATree) Route(ctx PropertyContext) (PredictorKind, int) {
	i := 0
	for !t.Nodes[i].Leaf {
		n := t.Nodes[i]
		if EvalProperty(ctx, n.Property) <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	leaf := t.Nodes[i]
	return leaf.Predictor, leaf.Context
}

func internalNode(prop Property, threshold, left, right int) MANode {
	return MANode{Property: prop, Threshold: threshold, Left: left, Right: right}
}

func leafNode(pred PredictorKind, ctx int) MANode {
	return MANode{Leaf: true, Predictor: pred, Context: ctx}
}

// DefaultMATree returns the canonical 7-node / 4-context tree: the
// balanced perfect binary tree (3 internal nodes, 4 leaves) used at
// effort levels below the extended tier.
func DefaultMATree() *MATree {
	nodes := make([]MANode, 7)
	nodes[0] = internalNode(PropChannel, 0, 1, 2)
	nodes[1] = internalNode(PropAbsNNW, 8, 3, 4)
	nodes[2] = internalNode(PropAbsWNW, 8, 5, 6)
	nodes[3] = leafNode(PredMED, 0)
	nodes[4] = leafNode(PredSelectGradient, 1)
	nodes[5] = leafNode(PredAvgWN, 2)
	nodes[6] = leafNode(PredMED, 3)
	return &MATree{Nodes: nodes, NumContext: 4}
}

// ExtendedMATree returns the extended 15-node / 8-context tree used from
// effort rank 10 and above, adding a second level of splits so every
// leaf sees both a gradient-magnitude test and a sign/orientation test.
func ExtendedMATree() *MATree {
	nodes := make([]MANode, 15)
	nodes[0] = internalNode(PropChannel, 0, 1, 2)
	nodes[1] = internalNode(PropAbsNNW, 8, 3, 4)
	nodes[2] = internalNode(PropAbsWNW, 8, 5, 6)
	nodes[3] = internalNode(PropNMinusNW, 0, 7, 8)
	nodes[4] = internalNode(PropWMinusNW, 0, 9, 10)
	nodes[5] = internalNode(PropNMinusNE, 0, 11, 12)
	nodes[6] = internalNode(PropMaxAbsResidual, 32, 13, 14)
	nodes[7] = leafNode(PredMED, 0)
	nodes[8] = leafNode(PredNorth, 1)
	nodes[9] = leafNode(PredSelectGradient, 2)
	nodes[10] = leafNode(PredWest, 3)
	nodes[11] = leafNode(PredAvgWNW, 4)
	nodes[12] = leafNode(PredAvgNNW, 5)
	nodes[13] = leafNode(PredAvgWN, 6)
	nodes[14] = leafNode(PredZero, 7)
	return &MATree{Nodes: nodes, NumContext: 8}
}

// squirrelRank is the numeric effort rank at and above which the Modular
// pipeline switches from plain MED prediction to MA-tree prediction, per
// the EncodingOptions contract in spec.md §6.
const squirrelRank = 7

// SelectTree returns the MA tree for the given numeric effort rank, or nil
// when effort is below the "squirrel" threshold and the caller should fall
// back to plain per-pixel MED prediction instead of routing through a tree.
func SelectTree(effort int) *MATree {
	if effort < squirrelRank {
		return nil
	}
	if effort >= 10 {
		return ExtendedMATree()
	}
	return DefaultMATree()
}
