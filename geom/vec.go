package geom

import (
	"encoding/json"
	"math"
)

// Vec is a 2D point or displacement with float64 components. Vec is a value
// type: operations return new vectors and never mutate their inputs.
type Vec struct {
	X float64
	Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec { return Vec{x, y} }

// FromTuple converts an [x, y] pair into a Vec. Loaders and renderers that
// traffic in [2]float64 points cross into the vector world here.
func FromTuple(t [2]float64) Vec { return Vec{t[0], t[1]} }

// Tuple converts v back into an [x, y] pair. Inverse of FromTuple.
func (v Vec) Tuple() [2]float64 { return [2]float64{v.X, v.Y} }

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y} }

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Mul multiplies componentwise.
func (v Vec) Mul(w Vec) Vec { return Vec{v.X * w.X, v.Y * w.Y} }

// Pointwise applies f independently to the X components and to the Y
// components of a and b.
func Pointwise(f func(float64, float64) float64, a, b Vec) Vec {
	return Vec{f(a.X, b.X), f(a.Y, b.Y)}
}

// PointwiseT is Pointwise for combiners that do not produce a coordinate,
// typically comparisons. The per-axis results come back as an (x, y) pair.
func PointwiseT[T any](f func(float64, float64) T, a, b Vec) (T, T) {
	return f(a.X, b.X), f(a.Y, b.Y)
}

// Min returns the componentwise minimum of a and b.
func Min(a, b Vec) Vec { return Pointwise(math.Min, a, b) }

// Max returns the componentwise maximum of a and b.
func Max(a, b Vec) Vec { return Pointwise(math.Max, a, b) }

// Fold right-folds f over a 2-element pair with the given seed:
// f(pair[0], f(pair[1], seed)). A generic reduction helper, not tied to Vec.
func Fold[E, A any](f func(E, A) A, seed A, pair [2]E) A {
	return f(pair[0], f(pair[1], seed))
}

// vecRecord is the named-field interchange form of a Vec.
type vecRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalJSON encodes v as the record {"x": ..., "y": ...}.
func (v Vec) MarshalJSON() ([]byte, error) {
	return json.Marshal(vecRecord{v.X, v.Y})
}

// UnmarshalJSON decodes the record form produced by MarshalJSON.
func (v *Vec) UnmarshalJSON(data []byte) error {
	var r vecRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v.X, v.Y = r.X, r.Y
	return nil
}
