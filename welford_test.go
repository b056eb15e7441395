package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWelfordEmpty(t *testing.T) {
	var w Welford
	require.Equal(t, int64(0), w.Count())
	require.True(t, math.IsNaN(w.Mean()))
	require.Equal(t, 0.0, w.Variance())
	require.Equal(t, 0.0, w.VarianceUnbiased())
	require.Equal(t, 0.0, w.StdDev())
}

func TestWelfordSingle(t *testing.T) {
	var w Welford
	w.Add(7.5)
	require.Equal(t, int64(1), w.Count())
	require.InEpsilon(t, 7.5, w.Mean(), 1e-12)
	require.Equal(t, 0.0, w.Variance())
	require.Equal(t, 0.0, w.StdDev())
}

func TestWelfordMatchesBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := randomSample(rng, 2000, 100, 30)

	var w Welford
	for _, v := range s {
		w.Add(v)
	}
	require.Equal(t, int64(len(s)), w.Count())
	require.InEpsilon(t, Mean(s), w.Mean(), 1e-12)
	require.InEpsilon(t, Variance(s), w.Variance(), 1e-9)
	require.InEpsilon(t, VarianceUnbiased(s), w.VarianceUnbiased(), 1e-9)
	require.InEpsilon(t, StdDev(s), w.StdDev(), 1e-9)
}

func TestWelfordMerge(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	s := randomSample(rng, 1001, 20, 10)

	var whole, left, right Welford
	for _, v := range s {
		whole.Add(v)
	}
	for _, v := range s[:400] {
		left.Add(v)
	}
	for _, v := range s[400:] {
		right.Add(v)
	}

	merged := left
	merged.Merge(right)
	require.Equal(t, whole.Count(), merged.Count())
	require.InEpsilon(t, whole.Mean(), merged.Mean(), 1e-9)
	require.InEpsilon(t, whole.VarianceUnbiased(), merged.VarianceUnbiased(), 1e-9)
}

func TestWelfordMergeEmpty(t *testing.T) {
	var a, b Welford
	b.Add(3)
	b.Add(5)

	a.Merge(b) // empty receiver takes on the other's state
	require.Equal(t, int64(2), a.Count())
	require.InEpsilon(t, 4.0, a.Mean(), 1e-12)

	before := a
	var empty Welford
	a.Merge(empty) // merging an empty accumulator is a no-op
	require.Equal(t, before, a)
}
