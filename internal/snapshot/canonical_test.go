package snapshot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarshalCanonical_KeyOrdering tests that object keys come out
// sorted regardless of insertion order.
func TestMarshalCanonical_KeyOrdering(t *testing.T) {
	doc := map[string]any{
		"zebra":  1,
		"apple":  2,
		"mango":  3,
	}

	out, err := MarshalCanonical(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"apple":2,"mango":3,"zebra":1}`, string(out))
}

// TestMarshalCanonical_Floats tests float rendering: integral floats
// drop the fraction, fractional floats use the shortest round-trip form,
// and non-finite values are rejected.
func TestMarshalCanonical_Floats(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1000.0, "1000"},
		{0.0, "0"},
		{21.5, "21.5"},
		{0.26, "0.26"},
		{-500.0, "-500"},
	}
	for _, tc := range cases {
		out, err := MarshalCanonical(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(out), "input %v", tc.in)
	}

	_, err := MarshalCanonical(math.NaN())
	assert.Error(t, err)
	_, err = MarshalCanonical(math.Inf(1))
	assert.Error(t, err)
}

// TestMarshalCanonical_NoHTMLEscaping tests that < > & pass through
// unescaped.
func TestMarshalCanonical_NoHTMLEscaping(t *testing.T) {
	out, err := MarshalCanonical("a<b>&c")
	require.NoError(t, err)
	assert.Equal(t, `"a<b>&c"`, string(out))
}

// TestMarshalCanonical_NFCNormalization tests that decomposed and
// precomposed forms of the same text canonicalize identically.
func TestMarshalCanonical_NFCNormalization(t *testing.T) {
	precomposed := "caf\u00e9"
	decomposed := "cafe\u0301"

	a, err := MarshalCanonical(precomposed)
	require.NoError(t, err)
	b, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

// TestMarshalCanonical_Nested tests arrays, nesting, null, and bools.
func TestMarshalCanonical_Nested(t *testing.T) {
	doc := map[string]any{
		"b": []any{1, 2.5, "x", true, nil},
		"a": map[string]any{"inner": false},
	}

	out, err := MarshalCanonical(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"inner":false},"b":[1,2.5,"x",true,null]}`, string(out))
}

// TestMarshalDocument_Deterministic tests that struct documents
// canonicalize identically across calls.
func TestMarshalDocument_Deterministic(t *testing.T) {
	type doc struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	d := doc{Name: "boards", Price: 49.5}

	a, err := MarshalDocument(d)
	require.NoError(t, err)
	b, err := MarshalDocument(d)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Equal(t, `{"name":"boards","price":49.5}`, string(a))
}
