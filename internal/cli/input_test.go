package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypedValue(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"FALSE", false},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0xff", int64(255)},
		{"0XFF", int64(255)},
		{"2.5", 2.5},
		{"1e3", 1000.0},
		{"euler", "euler"},
		{" padded ", "padded"},
		{"0xzz", "0xzz"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTypedValue(tc.in))
		})
	}
}

func TestParseValueList(t *testing.T) {
	assert.Equal(t, []any{int64(1), 2.5, "three"}, ParseValueList("1, 2.5, three"))
	assert.Equal(t, []any{int64(1)}, ParseValueList("1,,"))
	assert.Empty(t, ParseValueList(""))
}

func TestParseMinMax(t *testing.T) {
	t.Run("numeric triple", func(t *testing.T) {
		triple, err := ParseMinMax("0, 10, 2.5")
		require.NoError(t, err)
		assert.Equal(t, []any{int64(0), int64(10), 2.5}, triple)
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, err := ParseMinMax("0, 10")
		require.Error(t, err)
	})

	t.Run("non-numeric bound", func(t *testing.T) {
		_, err := ParseMinMax("0, ten, 1")
		require.Error(t, err)
	})
}

func TestPromptConfirmationNonInteractive(t *testing.T) {
	// A pipe is not a terminal, so the gate must decline without reading.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	var out bytes.Buffer
	ok, err := PromptConfirmation(r, &out, 3, "/renders/demo/images")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "not a terminal")
}
