package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wedgerun/pkg/schema"
)

func TestCoerceNumeric(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"int64 passes through", int64(5), int64(5)},
		{"int widens to int64", int(5), int64(5)},
		{"bool passes through", true, true},
		{"string passes through", "hello", "hello"},
		{"whole float snaps to int64", 3.0, int64(3)},
		{"near-integer float snaps", 2.9999999999999, int64(3)},
		{"fractional float rounds to 10 decimals", 0.30000000000000004, 0.3},
		{"fraction stays a float", 7.5, 7.5},
		{"negative whole float snaps", -4.0, int64(-4)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CoerceNumeric(tc.in))
		})
	}
}

func TestExpandExplicit(t *testing.T) {
	t.Run("values come back verbatim", func(t *testing.T) {
		spec := []any{int64(1), "euler", true, 2.5}
		values, err := Expand(spec, schema.WedgeExplicit)
		require.NoError(t, err)
		assert.Equal(t, spec, values)
	})

	t.Run("returned slice is independent of the spec", func(t *testing.T) {
		spec := []any{int64(1), int64(2)}
		values, err := Expand(spec, schema.WedgeExplicit)
		require.NoError(t, err)
		values[0] = int64(99)
		assert.Equal(t, int64(1), spec[0])
	})

	t.Run("empty list is an empty axis", func(t *testing.T) {
		_, err := Expand([]any{}, schema.WedgeExplicit)
		require.ErrorIs(t, err, ErrEmptyAxis)
	})
}

func TestExpandMinMax(t *testing.T) {
	t.Run("integer range is inclusive of the stop", func(t *testing.T) {
		values, err := Expand([]any{int64(0), int64(10), int64(2)}, schema.WedgeMinMax)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(0), int64(2), int64(4), int64(6), int64(8), int64(10)}, values)
	})

	t.Run("fractional step includes a boundary within tolerance", func(t *testing.T) {
		// 0.1 accumulates binary error; 0.3 must still be included.
		values, err := Expand([]any{int64(0), 0.3, 0.1}, schema.WedgeMinMax)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(0), 0.1, 0.2, 0.3}, values)
	})

	t.Run("descending range with a negative step", func(t *testing.T) {
		values, err := Expand([]any{int64(5), int64(1), int64(-2)}, schema.WedgeMinMax)
		require.NoError(t, err)
		assert.Equal(t, []any{int64(5), int64(3), int64(1)}, values)
	})

	t.Run("start equals stop yields one value", func(t *testing.T) {
		values, err := Expand([]any{2.5, 2.5, int64(1)}, schema.WedgeMinMax)
		require.NoError(t, err)
		assert.Equal(t, []any{2.5}, values)
	})

	t.Run("positive step away from stop is an empty axis", func(t *testing.T) {
		_, err := Expand([]any{int64(5), int64(1), int64(1)}, schema.WedgeMinMax)
		require.ErrorIs(t, err, ErrEmptyAxis)
	})

	t.Run("zero step is invalid", func(t *testing.T) {
		_, err := Expand([]any{int64(0), int64(10), int64(0)}, schema.WedgeMinMax)
		require.ErrorIs(t, err, ErrInvalidAxis)
	})

	t.Run("wrong arity is invalid", func(t *testing.T) {
		_, err := Expand([]any{int64(0), int64(10)}, schema.WedgeMinMax)
		require.ErrorIs(t, err, ErrInvalidAxis)
	})

	t.Run("non-numeric bound is invalid", func(t *testing.T) {
		_, err := Expand([]any{"a", int64(10), int64(1)}, schema.WedgeMinMax)
		require.ErrorIs(t, err, ErrInvalidAxis)
	})

	t.Run("oversized expansion overflows instead of truncating", func(t *testing.T) {
		_, err := Expand([]any{int64(0), int64(1), 1e-9}, schema.WedgeMinMax)
		require.ErrorIs(t, err, ErrAxisOverflow)
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		_, err := Expand([]any{int64(1)}, schema.WedgeKind("ramp"))
		require.ErrorIs(t, err, ErrInvalidAxis)
	})
}
