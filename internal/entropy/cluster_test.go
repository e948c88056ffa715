package entropy

import "testing"

func TestClusterMergesIdenticalHistograms(t *testing.T) {
	h := []uint64{10, 5, 1, 1}
	histograms := [][]uint64{h, h, h, h}
	clusterOf, merged := Cluster(histograms, 2, 0.01)
	if len(merged) > 2 {
		t.Fatalf("expected at most 2 clusters, got %d", len(merged))
	}
	for i := 1; i < len(clusterOf); i++ {
		if clusterOf[i] != clusterOf[0] {
			t.Fatalf("identical histograms should cluster together: %v", clusterOf)
		}
	}
}

func TestClusterKeepsDistinctHistogramsApart(t *testing.T) {
	histograms := [][]uint64{
		{1000, 1, 1, 1},
		{1, 1000, 1, 1},
		{1, 1, 1000, 1},
		{1, 1, 1, 1000},
	}
	clusterOf, merged := Cluster(histograms, 4, 0.5)
	if len(merged) != 4 {
		t.Fatalf("expected 4 distinct clusters, got %d: %v", len(merged), clusterOf)
	}
	seen := map[int]bool{}
	for _, c := range clusterOf {
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 unique cluster ids, got %d", len(seen))
	}
}

func TestClusterRespectsMaxClusters(t *testing.T) {
	histograms := make([][]uint64, 10)
	for i := range histograms {
		histograms[i] = []uint64{uint64(i + 1), 1, 1}
	}
	_, merged := Cluster(histograms, 3, 0)
	if len(merged) > 3 {
		t.Fatalf("expected at most 3 clusters, got %d", len(merged))
	}
}
