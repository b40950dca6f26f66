package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{int64(3), "3"},
		{3.5, "3.5"},
		{0.1, "0.1"},
		{1.25e-7, "1.25e-07"},
		{true, "true"},
		{"euler", "euler"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, Stringify(tc.in))
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "x_y", Sanitize("x y"))
	assert.Equal(t, "a_b_c_d_e_f_g_h", Sanitize(`a/b\c:d,e;f"g'h`))
	assert.Equal(t, "plain", Sanitize("plain"))
}

func TestBuildFilename(t *testing.T) {
	t.Run("tokens are node then param sorted", func(t *testing.T) {
		combo := Combination{
			"B": {"q": "x y"},
			"A": {"p": CoerceNumeric(3.0)},
		}
		assert.Equal(t, "img__A-p-3__B-q-x_y", BuildFilename("img", combo))
	})

	t.Run("params within a node sort too", func(t *testing.T) {
		combo := Combination{
			"A": {"z": int64(1), "a": int64(2)},
		}
		assert.Equal(t, "img__A-a-2__A-z-1", BuildFilename("img", combo))
	})

	t.Run("empty combination is the bare prefix", func(t *testing.T) {
		assert.Equal(t, "img", BuildFilename("img", Combination{}))
	})

	t.Run("distinct values never collide", func(t *testing.T) {
		a := BuildFilename("img", Combination{"A": {"p": int64(1)}})
		b := BuildFilename("img", Combination{"A": {"p": int64(2)}})
		assert.NotEqual(t, a, b)
	})
}

func TestFormatCombination(t *testing.T) {
	assert.Equal(t, "<no wedges>", FormatCombination(Combination{}))
	combo := Combination{
		"B": {"q": 2.5},
		"A": {"p": int64(1)},
	}
	assert.Equal(t, "A.p=1, B.q=2.5", FormatCombination(combo))
}

func TestLocateArtifact(t *testing.T) {
	touch := func(t *testing.T, dir, name string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		return path
	}

	t.Run("first sequence number wins", func(t *testing.T) {
		dir := t.TempDir()
		want := touch(t, dir, "img__A-p-3_00001_.png")
		got, ok := LocateArtifact(dir, "img__A-p-3", "png")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("later sequence numbers are scanned", func(t *testing.T) {
		dir := t.TempDir()
		want := touch(t, dir, fmt.Sprintf("img_%05d_.png", 7))
		got, ok := LocateArtifact(dir, "img", "png")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("missing artifact reports not found", func(t *testing.T) {
		_, ok := LocateArtifact(t.TempDir(), "img", "png")
		assert.False(t, ok)
	})
}
