package dining

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForksOrder(t *testing.T) {
	testCases := []struct {
		id, n        int
		left, right  int
		lower, upper int
	}{
		{0, 5, 0, 4, 0, 4},
		{1, 5, 1, 0, 0, 1},
		{4, 5, 4, 3, 3, 4},
		{0, 2, 0, 1, 0, 1},
		{1, 2, 1, 0, 0, 1},
		{0, 1, 0, 0, 0, 0},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.left, Left(tc.id, tc.n), "left of %d/%d", tc.id, tc.n)
		require.Equal(t, tc.right, Right(tc.id, tc.n), "right of %d/%d", tc.id, tc.n)
		lo, hi := Forks(tc.id, tc.n)
		require.Equal(t, tc.lower, lo, "lower of %d/%d", tc.id, tc.n)
		require.Equal(t, tc.upper, hi, "upper of %d/%d", tc.id, tc.n)
	}
}

// Every fork is adjacent to exactly the two philosophers that list it.
func TestSharers(t *testing.T) {
	const n = 7
	for f := 0; f < n; f++ {
		a, b := Sharers(f, n)
		require.Equal(t, f, Left(a, n))
		require.Equal(t, f, Right(b, n))
	}
}

func TestRingShared(t *testing.T) {
	require.True(t, Ring{N: 1}.Shared(0))
	r := Ring{N: 4}
	for id := 0; id < r.N; id++ {
		require.False(t, r.Shared(id))
	}
	lo, hi := r.Forks(0)
	require.Equal(t, 0, lo)
	require.Equal(t, 3, hi)
}
