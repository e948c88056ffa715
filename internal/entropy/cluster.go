package entropy

import "math"

// Cluster agglomeratively merges per-context raw frequency histograms by
// Jensen-Shannon divergence until at most maxClusters remain active AND
// the closest surviving pair exceeds threshold. It returns, for each
// input histogram, the index of the cluster it landed in (compacted and
// renumbered in order of first appearance), and the summed raw
// frequency vector of each resulting cluster.
func Cluster(histograms [][]uint64, maxClusters int, threshold float64) (clusterOf []int, merged [][]uint64) {
	n := len(histograms)
	if n == 0 {
		return nil, nil
	}
	if maxClusters < 1 {
		maxClusters = 1
	}

	// active[i] holds the current summed histogram for cluster i, or nil
	// once merged away. members[i] lists the original input indices now
	// folded into cluster i.
	active := make([][]uint64, n)
	members := make([][]int, n)
	for i, h := range histograms {
		active[i] = append([]uint64(nil), h...)
		members[i] = []int{i}
	}
	alive := n

	for {
		bestI, bestJ := -1, -1
		bestDist := math.Inf(1)
		for i := 0; i < n; i++ {
			if active[i] == nil {
				continue
			}
			for j := i + 1; j < n; j++ {
				if active[j] == nil {
					continue
				}
				dist := jsDivergence(active[i], active[j])
				if dist < bestDist {
					bestDist = dist
					bestI, bestJ = i, j
				}
			}
		}
		if bestI == -1 {
			break // only one active cluster left
		}
		if alive <= maxClusters && bestDist > threshold {
			break
		}
		// Merge j into i.
		for k := range active[bestI] {
			active[bestI][k] += active[bestJ][k]
		}
		members[bestI] = append(members[bestI], members[bestJ]...)
		active[bestJ] = nil
		members[bestJ] = nil
		alive--
	}

	clusterOf = make([]int, n)
	merged = make([][]uint64, 0, alive)
	for i := 0; i < n; i++ {
		if active[i] == nil {
			continue
		}
		id := len(merged)
		merged = append(merged, active[i])
		for _, m := range members[i] {
			clusterOf[m] = id
		}
	}
	return clusterOf, merged
}

// jsDivergence computes the Jensen-Shannon divergence between two raw
// (unnormalised) frequency vectors, treated as independent probability
// distributions over the same symbol alphabet.
func jsDivergence(a, b []uint64) float64 {
	var sa, sb uint64
	for _, v := range a {
		sa += v
	}
	for _, v := range b {
		sb += v
	}
	if sa == 0 || sb == 0 {
		return 0
	}
	var kl1, kl2 float64
	for i := range a {
		p := float64(a[i]) / float64(sa)
		q := float64(b[i]) / float64(sb)
		m := (p + q) / 2
		if m == 0 {
			continue
		}
		if p > 0 {
			kl1 += p * math.Log2(p/m)
		}
		if q > 0 {
			kl2 += q * math.Log2(q/m)
		}
	}
	return 0.5*kl1 + 0.5*kl2
}
