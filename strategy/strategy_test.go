package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/repairtime/capacity"
	"github.com/arloliu/repairtime/types"
)

func TestFixed_Ceiling(t *testing.T) {
	t.Run("returns configured value", func(t *testing.T) {
		c, err := NewFixed(1000).Ceiling([]int64{1}, 4)
		require.NoError(t, err)
		require.Equal(t, int64(1000), c)
	})

	t.Run("non-positive falls back to default", func(t *testing.T) {
		for _, v := range []int64{0, -1} {
			c, err := NewFixed(v).Ceiling([]int64{1}, 4)
			require.NoError(t, err)
			require.Equal(t, DefaultFixedCeiling, c)
		}
	})

	t.Run("ignores input", func(t *testing.T) {
		f := NewFixed(77)
		a, _ := f.Ceiling([]int64{1}, 1)
		b, _ := f.Ceiling([]int64{100, 100, 100}, 1_000_000)
		require.Equal(t, a, b)
	})
}

func TestDerived_Ceiling(t *testing.T) {
	t.Run("uses smallest rank", func(t *testing.T) {
		c, err := NewDerived().Ceiling([]int64{4, 2, 3, 1}, 10)
		require.NoError(t, err)
		require.Equal(t, int64(100), c)

		c, err = NewDerived().Ceiling([]int64{5, 8}, 6)
		require.NoError(t, err)
		require.Equal(t, int64(180), c)
	})

	t.Run("bound is feasible", func(t *testing.T) {
		cases := []struct {
			ranks []int64
			req   int64
		}{
			{[]int64{1}, 1},
			{[]int64{100}, 1_000_000},
			{[]int64{7, 9, 11}, 12_345},
			{[]int64{3_000_000_000}, 50_000},
		}
		for _, tc := range cases {
			c, err := NewDerived().Ceiling(tc.ranks, tc.req)
			require.NoError(t, err)
			require.True(t, capacity.Feasible(tc.ranks, tc.req, c), "ranks=%v req=%d ceiling=%d", tc.ranks, tc.req, c)
		}
	})

	t.Run("overflow on requirement squared", func(t *testing.T) {
		_, err := NewDerived().Ceiling([]int64{1}, math.MaxInt64)
		require.ErrorIs(t, err, ErrOverflow)
		require.ErrorIs(t, err, types.ErrOverflow)
	})

	t.Run("overflow on rank product", func(t *testing.T) {
		_, err := NewDerived().Ceiling([]int64{math.MaxInt64 / 2}, 2)
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("largest representable bound", func(t *testing.T) {
		// 3_037_000_499² fits in int64; one more unit does not.
		c, err := NewDerived().Ceiling([]int64{1}, 3_037_000_499)
		require.NoError(t, err)
		require.Equal(t, int64(3_037_000_499)*3_037_000_499, c)

		_, err = NewDerived().Ceiling([]int64{1}, 3_037_000_500)
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestDoubling_Ceiling(t *testing.T) {
	t.Run("first feasible power of two", func(t *testing.T) {
		// Minimal time is 16 for this crew.
		c, err := NewDoubling().Ceiling([]int64{4, 2, 3, 1}, 10)
		require.NoError(t, err)
		require.Equal(t, int64(16), c)

		c, err = NewDoubling().Ceiling([]int64{1}, 5) // minimal time 25
		require.NoError(t, err)
		require.Equal(t, int64(32), c)
	})

	t.Run("within twice the derived bound", func(t *testing.T) {
		ranks := []int64{13, 40, 2, 99}
		req := int64(777)
		d, err := NewDerived().Ceiling(ranks, req)
		require.NoError(t, err)
		c, err := NewDoubling().Ceiling(ranks, req)
		require.NoError(t, err)
		require.True(t, capacity.Feasible(ranks, req, c))
		require.Less(t, c, 2*d)
	})

	t.Run("answer above largest power of two", func(t *testing.T) {
		ranks := []int64{1<<62 + 1}

		c, err := NewDoubling().Ceiling(ranks, 1)
		require.NoError(t, err)
		require.Equal(t, int64(math.MaxInt64), c)

		d, err := NewDerived().Ceiling(ranks, 1)
		require.NoError(t, err)
		require.Equal(t, int64(1<<62+1), d)
		require.LessOrEqual(t, d, c)
	})

	t.Run("largest power of two", func(t *testing.T) {
		c, err := NewDoubling().Ceiling([]int64{1 << 62}, 1)
		require.NoError(t, err)
		require.Equal(t, int64(1<<62), c)
	})

	t.Run("overflow when unreachable", func(t *testing.T) {
		_, err := NewDoubling().Ceiling([]int64{math.MaxInt64}, 2)
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestStrategies_ImplementInterface(t *testing.T) {
	strategies := map[string]types.CeilingStrategy{
		"Fixed":    NewFixed(0),
		"Derived":  NewDerived(),
		"Doubling": NewDoubling(),
	}

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			c, err := s.Ceiling([]int64{5, 1, 8}, 6)
			require.NoError(t, err)
			require.True(t, capacity.Feasible([]int64{5, 1, 8}, 6, c))
		})
	}
}
