package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wedgerun/pkg/schema"
)

func TestBuildAxes(t *testing.T) {
	t.Run("axes follow declaration order", func(t *testing.T) {
		cfg := &schema.SweepConfig{
			ParamWedges: []schema.NodeWedges{
				{Node: "Zeta", Entries: []schema.Wedge{
					{Param: "b", Spec: []any{int64(1), int64(2)}, Kind: schema.WedgeExplicit},
					{Param: "a", Spec: []any{int64(3)}, Kind: schema.WedgeExplicit},
				}},
				{Node: "Alpha", Entries: []schema.Wedge{
					{Param: "c", Spec: []any{int64(0), int64(2), int64(1)}, Kind: schema.WedgeMinMax},
				}},
			},
		}
		axes, err := BuildAxes(cfg)
		require.NoError(t, err)
		require.Len(t, axes, 3)
		assert.Equal(t, Key{Node: "Zeta", Param: "b"}, axes[0].Key)
		assert.Equal(t, Key{Node: "Zeta", Param: "a"}, axes[1].Key)
		assert.Equal(t, Key{Node: "Alpha", Param: "c"}, axes[2].Key)
		assert.Equal(t, []any{int64(0), int64(1), int64(2)}, axes[2].Values)
	})

	t.Run("expansion failures name the wedge", func(t *testing.T) {
		cfg := &schema.SweepConfig{
			ParamWedges: []schema.NodeWedges{
				{Node: "A", Entries: []schema.Wedge{
					{Param: "p", Spec: []any{int64(0), int64(1), int64(0)}, Kind: schema.WedgeMinMax},
				}},
			},
		}
		_, err := BuildAxes(cfg)
		require.ErrorIs(t, err, ErrInvalidAxis)
		assert.Contains(t, err.Error(), "A.p")
	})
}

func TestTotalCount(t *testing.T) {
	assert.Equal(t, 1, TotalCount(nil))
	assert.Equal(t, 6, TotalCount([]Axis{
		{Values: []any{1, 2}},
		{Values: []any{1, 2, 3}},
	}))
}

func TestCombinations(t *testing.T) {
	t.Run("odometer order with the last axis fastest", func(t *testing.T) {
		axes := []Axis{
			{Key: Key{Node: "A", Param: "x"}, Values: []any{int64(1), int64(2)}},
			{Key: Key{Node: "B", Param: "y"}, Values: []any{"a", "b", "c"}},
		}
		var got [][2]any
		it := Combinations(axes)
		for {
			combo, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, [2]any{combo["A"]["x"], combo["B"]["y"]})
		}
		assert.Equal(t, [][2]any{
			{int64(1), "a"}, {int64(1), "b"}, {int64(1), "c"},
			{int64(2), "a"}, {int64(2), "b"}, {int64(2), "c"},
		}, got)
	})

	t.Run("zero axes yield exactly one empty combination", func(t *testing.T) {
		it := Combinations(nil)
		combo, ok := it.Next()
		require.True(t, ok)
		assert.Empty(t, combo)
		_, ok = it.Next()
		assert.False(t, ok)
	})

	t.Run("each combination is independently owned", func(t *testing.T) {
		axes := []Axis{
			{Key: Key{Node: "A", Param: "x"}, Values: []any{int64(1), int64(2)}},
		}
		it := Combinations(axes)
		first, ok := it.Next()
		require.True(t, ok)
		second, ok := it.Next()
		require.True(t, ok)

		first["A"]["x"] = int64(99)
		assert.Equal(t, int64(2), second["A"]["x"])
	})

	t.Run("a fresh iterator starts over", func(t *testing.T) {
		axes := []Axis{
			{Key: Key{Node: "A", Param: "x"}, Values: []any{int64(1), int64(2)}},
		}
		count := func() int {
			n := 0
			it := Combinations(axes)
			for {
				if _, ok := it.Next(); !ok {
					return n
				}
				n++
			}
		}
		assert.Equal(t, 2, count())
		assert.Equal(t, 2, count())
	})

	t.Run("two axes on the same node share one param map", func(t *testing.T) {
		axes := []Axis{
			{Key: Key{Node: "A", Param: "x"}, Values: []any{int64(1)}},
			{Key: Key{Node: "A", Param: "y"}, Values: []any{int64(2)}},
		}
		it := Combinations(axes)
		combo, ok := it.Next()
		require.True(t, ok)
		require.Len(t, combo, 1)
		assert.Equal(t, map[string]any{"x": int64(1), "y": int64(2)}, combo["A"])
	})
}
