package geom

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVecArithmetic(t *testing.T) {
	require.Equal(t, V(4, 6), V(1, 2).Add(V(3, 4)))
	require.Equal(t, V(-2, -2), V(1, 2).Sub(V(3, 4)))
	require.Equal(t, V(2, 4), V(1, 2).Scale(2))
	require.Equal(t, V(3, 8), V(1, 2).Mul(V(3, 4)))
}

func TestPointwise(t *testing.T) {
	add := func(a, b float64) float64 { return a + b }
	require.Equal(t, V(4, 6), Pointwise(add, V(1, 2), V(3, 4)))

	// combining functions see the x components and y components separately
	first := func(a, _ float64) float64 { return a }
	require.Equal(t, V(1, 2), Pointwise(first, V(1, 2), V(3, 4)))
}

func TestPointwiseT(t *testing.T) {
	le := func(a, b float64) bool { return a <= b }
	x, y := PointwiseT(le, V(1, 5), V(2, 4))
	require.True(t, x)
	require.False(t, y)
}

func TestMinMax(t *testing.T) {
	a, b := V(1, 7), V(3, 2)
	require.Equal(t, V(1, 2), Min(a, b))
	require.Equal(t, V(3, 7), Max(a, b))
	require.Equal(t, Min(a, b), Min(b, a))
	require.Equal(t, Max(a, b), Max(b, a))
}

func TestFold(t *testing.T) {
	sum := func(e float64, acc float64) float64 { return e + acc }
	require.Equal(t, 10.0, Fold(sum, 7, [2]float64{1, 2}))

	// right fold: the second element meets the seed first
	cons := func(e string, acc []string) []string { return append([]string{e}, acc...) }
	require.Equal(t, []string{"a", "b", "z"}, Fold(cons, []string{"z"}, [2]string{"a", "b"}))
}

func TestTupleRoundTrip(t *testing.T) {
	v := V(1.5, -2.25)
	require.Equal(t, v, FromTuple(v.Tuple()))
	require.Equal(t, [2]float64{1.5, -2.25}, v.Tuple())
}

func TestVecJSONRecord(t *testing.T) {
	raw, err := json.Marshal(V(1.5, -2))
	require.NoError(t, err)
	require.JSONEq(t, `{"x":1.5,"y":-2}`, string(raw))

	var v Vec
	require.NoError(t, json.Unmarshal([]byte(`{"x":3,"y":4}`), &v))
	require.Equal(t, V(3, 4), v)
}
