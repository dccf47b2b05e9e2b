package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hexroute/astrotrade/apsp"
	"github.com/hexroute/astrotrade/hexgrid"
	"github.com/hexroute/astrotrade/pipeline"
	"github.com/hexroute/astrotrade/worldmodel"
)

func buildSet(t *testing.T, n int) *worldmodel.Set {
	t.Helper()
	b := worldmodel.NewBuilder()
	for i := 0; i < n; i++ {
		c := hexgrid.NewCoords(0, 0, 1+2*i, 10)
		w, err := b.AddWorld(string(rune('A'+i)), c)
		require.NoError(t, err)
		w.Profile.Starport = worldmodel.StarportA
		w.Profile.TechLevel = 15
		w.Profile.Population = 9
	}
	return b.Freeze()
}

func TestRun_EndToEnd(t *testing.T) {
	set := buildSet(t, 5)

	res, err := pipeline.Run(context.Background(), set)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEqual(t, res.RunID.String(), "")
	require.Equal(t, 5, res.Dist2.N)
	require.Equal(t, 5, res.Dist3.N)

	for i := 0; i < set.Len(); i++ {
		require.Greater(t, set.At(i).EndpointTradeCredits, 0.0, "world %d", i)
	}
}

func TestRun_BackendChoiceProducesSameDist(t *testing.T) {
	dijkstraSet := buildSet(t, 6)
	floydSet := buildSet(t, 6)

	dijkstraRes, err := pipeline.Run(context.Background(), dijkstraSet, pipeline.WithBackend(apsp.BackendDijkstra))
	require.NoError(t, err)
	floydRes, err := pipeline.Run(context.Background(), floydSet, pipeline.WithBackend(apsp.BackendFloyd))
	require.NoError(t, err)

	require.Equal(t, dijkstraRes.Dist2.Dist, floydRes.Dist2.Dist)
}

func TestRun_NilSet(t *testing.T) {
	_, err := pipeline.Run(context.Background(), nil)
	require.ErrorIs(t, err, pipeline.ErrNilSet)
}

func TestRun_ParallelAggregate(t *testing.T) {
	set := buildSet(t, 8)
	res, err := pipeline.Run(context.Background(), set, pipeline.WithParallelAggregate(true))
	require.NoError(t, err)
	require.NotNil(t, res)
}
