package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonical_SortsKeys(t *testing.T) {
	data, err := MarshalCanonical(map[string]any{
		"tick": 1,
		"kind": "reel_cursor",
		"a":    []any{true, int64(-3), "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"a":[true,-3,"x"],"kind":"reel_cursor","tick":1}`, string(data))
}

func TestMarshalCanonical_NoHTMLEscape(t *testing.T) {
	data, err := MarshalCanonical("<bar & seven>")
	require.NoError(t, err)
	assert.Equal(t, `"<bar & seven>"`, string(data))
}

func TestMarshalCanonical_NFC(t *testing.T) {
	data, err := MarshalCanonical("cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "\"caf\u00e9\"", string(data))
}

func TestMarshalCanonical_LineSeparators(t *testing.T) {
	data, err := MarshalCanonical("a\u2028b")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\"", string(data))

	data, err = MarshalCanonical(`a\u2028b`)
	require.NoError(t, err)
	assert.Equal(t, `"a\\u2028b"`, string(data))
}

func TestMarshalCanonical_Rejects(t *testing.T) {
	tests := []struct {
		name string
		v    any
	}{
		{"nil", nil},
		{"float", 1.5},
		{"nested float", map[string]any{"speed": 1.0}},
		{"struct", struct{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MarshalCanonical(tt.v)
			assert.Error(t, err)
		})
	}
}

func TestMarshalCanonical_StringSlice(t *testing.T) {
	data, err := MarshalCanonical([]string{"cherry", "bell"})
	require.NoError(t, err)
	assert.Equal(t, `["cherry","bell"]`, string(data))
}

func TestCompareUTF16(t *testing.T) {
	assert.Negative(t, compareUTF16("a", "b"))
	assert.Positive(t, compareUTF16("ab", "a"))
	assert.Zero(t, compareUTF16("seq", "seq"))
	// U+FF61 sorts after a supplementary-plane rune in UTF-16, before it in UTF-8.
	assert.Positive(t, compareUTF16("\uFF61", "\U0001F600"))
}
