package tradeflow

import "github.com/hexroute/astrotrade/apsp"

// ReconstructPath implements spec.md §4.7: starting from target b,
// repeatedly prepend pred[a, current] until current == a. If a
// predecessor is apsp.NoPred before reaching a, the path does not exist
// and ok is false (the caller treats the pair as unreachable).
//
// Grounded on the teacher's flow.bfsAugmentingPath, which reconstructs a
// path the same way: walk backwards from the sink via a predecessor map,
// prepending onto a growing slice.
func ReconstructPath(res *apsp.Result, a, b int) (path []int32, ok bool) {
	if a == b {
		return []int32{int32(a)}, true
	}

	path = []int32{int32(b)}
	cur := b
	for cur != a {
		_, pred := res.At(a, cur)
		if pred == apsp.NoPred {
			return nil, false
		}
		cur = int(pred)
		path = append([]int32{int32(cur)}, path...)
	}

	return path, true
}
