package apsp

import "github.com/hexroute/astrotrade/topology"

// runFloyd fills res with Floyd-Warshall's O(N^3) all-pairs shortest
// paths. Single-threaded, reference-only (original_source/src/apsp.rs's
// own doc comment: "should not be used except for testing"), kept for
// the three-backend cross-validation in apsp_test.go.
//
// Grounded on the teacher's matrix/ops/FloydWarshall for the
// stage-commented triple-nested-loop style, and on
// original_source/src/apsp.rs's floyd_warshall for the pred-inheritance
// rule (pred[i][j] = pred[k][j] on relaxation) adapted to flat Result
// rows instead of an ndarray Array2.
func runFloyd(g *topology.Graph, res *Result) {
	n := g.N

	// Stage 1: seed Dist from the graph's adjacency, Pred from direct
	// edges. res arrives pre-filled with Infinity/NoPred and a zero
	// diagonal (see newResult), so only real edges need writing.
	for i := 0; i < n; i++ {
		cols, weights := g.Neighbors(i)
		for idx, j := range cols {
			w := int32(weights[idx])
			d := i*n + int(j)
			if w < res.Dist[d] {
				res.Dist[d] = w
				res.Pred[d] = int32(i)
			}
		}
	}

	// Stage 2: the core triple-nested relaxation.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := res.Dist[i*n+k]
			if dik == Infinity {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := res.Dist[k*n+j]
				if dkj == Infinity {
					continue
				}
				ij := i*n + j
				if res.Dist[ij] > dik+dkj {
					res.Dist[ij] = dik + dkj
					res.Pred[ij] = res.Pred[k*n+j]
				}
			}
		}
	}
}
