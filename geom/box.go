// Package geom provides a 2D vector and an axis-aligned bounding box over
// it, for code that needs to compute and manipulate the extent of a point
// set (auto-sizing a viewport, framing a dataset, culling).
package geom

// Box is an axis-aligned bounding box stored as its minimal and maximal
// corners. Every constructor and transform normalizes the corners, so
// Min.X <= Max.X and Min.Y <= Max.Y hold for any Box obtained through them.
// Box is a value type: nothing mutates in place.
type Box struct {
	Min Vec
	Max Vec
}

// FromPoint returns the degenerate box covering the single point v.
func FromPoint(v Vec) Box { return Box{v, v} }

// FromCorners builds the box spanned by two opposite corners, given in any
// order. Swapped or partially swapped corners are normalized.
func FromCorners(a, b Vec) Box { return Box{Min(a, b), Max(a, b)} }

// FromPoints returns the bounding box of pts. The second return value is
// false when pts is empty: there is no bounding box of zero points.
func FromPoints(pts []Vec) (Box, bool) {
	if len(pts) == 0 {
		return Box{}, false
	}
	return FromPoint(pts[0]).InsertAll(pts[1:]), true
}

// Insert extends b to cover v. Inserting a point already inside returns an
// equal box.
func (b Box) Insert(v Vec) Box { return Box{Min(b.Min, v), Max(b.Max, v)} }

// InsertAll folds Insert over pts.
func (b Box) InsertAll(pts []Vec) Box {
	for _, p := range pts {
		b = b.Insert(p)
	}
	return b
}

// Corners returns the minimal and maximal corner.
func (b Box) Corners() (lower, upper Vec) { return b.Min, b.Max }

// The four corner accessors use mathematical orientation: "top" is the
// maximal Y and "right" is the maximal X.

func (b Box) TopLeft() Vec     { return Vec{b.Min.X, b.Max.Y} }
func (b Box) TopRight() Vec    { return b.Max }
func (b Box) BottomLeft() Vec  { return b.Min }
func (b Box) BottomRight() Vec { return Vec{b.Max.X, b.Min.Y} }

// Width is the X extent. Non-negative under the corner invariant.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height is the Y extent. Non-negative under the corner invariant.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Size returns the vector from the minimal to the maximal corner.
func (b Box) Size() Vec { return b.Max.Sub(b.Min) }

// Center returns the midpoint of the two corners.
func (b Box) Center() Vec { return b.Min.Add(b.Max.Sub(b.Min).Scale(0.5)) }

// Area returns width times height. Never negative.
func (b Box) Area() float64 { return b.Width() * b.Height() }

// Contains reports whether p lies inside b, boundary included.
func (b Box) Contains(p Vec) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// ContainsStrict is Contains with the boundary excluded.
func (b Box) ContainsStrict(p Vec) bool {
	return b.Min.X < p.X && p.X < b.Max.X &&
		b.Min.Y < p.Y && p.Y < b.Max.Y
}

// Inside reports whether b lies entirely within outer, boundary included.
// Boxes are convex and axis-aligned, so testing the two corners suffices.
func (b Box) Inside(outer Box) bool {
	return outer.Contains(b.Min) && outer.Contains(b.Max)
}

// InsideStrict is Inside with the boundary of outer excluded.
func (b Box) InsideStrict(outer Box) bool {
	return outer.ContainsStrict(b.Min) && outer.ContainsStrict(b.Max)
}

// Outside reports whether b and other are separated along at least one
// axis. Boxes touching only at an edge count as outside.
func (b Box) Outside(other Box) bool {
	return b.Max.X <= other.Min.X || b.Max.Y <= other.Min.Y ||
		b.Min.X >= other.Max.X || b.Min.Y >= other.Max.Y
}

// OutsideStrict requires strict separation: touching boxes are not
// strictly outside.
func (b Box) OutsideStrict(other Box) bool {
	return b.Max.X < other.Min.X || b.Max.Y < other.Min.Y ||
		b.Min.X > other.Max.X || b.Min.Y > other.Max.Y
}

// Intersects reports whether any corner of other lies within b, boundary
// included.
func (b Box) Intersects(other Box) bool {
	return b.Contains(other.BottomLeft()) || b.Contains(other.BottomRight()) ||
		b.Contains(other.TopLeft()) || b.Contains(other.TopRight())
}

// Union returns the smallest box covering both b and other. Union is
// associative and commutative; it is the operation underlying FromPoints
// and InsertAll.
func (b Box) Union(other Box) Box {
	return Box{Min(b.Min, other.Min), Max(b.Max, other.Max)}
}

// Intersection returns the overlap of b and other. The second return value
// is false when the boxes do not intersect. A returned box always has
// non-negative area.
func (b Box) Intersection(other Box) (Box, bool) {
	if !b.Intersects(other) {
		return Box{}, false
	}
	return FromCorners(Max(b.Min, other.Min), Min(b.Max, other.Max)), true
}

// Translate shifts both corners by v. The zero vector is an identity.
func (b Box) Translate(v Vec) Box {
	return FromCorners(b.Min.Add(v), b.Max.Add(v))
}

// Scale multiplies both corners by s, measured from the origin. A factor of
// one is an identity. Negative factors flip the corners; FromCorners
// restores the ordering.
func (b Box) Scale(s float64) Box {
	return FromCorners(b.Min.Scale(s), b.Max.Scale(s))
}

// ScaleVec scales each axis by the matching component of f, measured from
// the origin. The all-ones vector is an identity.
func (b Box) ScaleVec(f Vec) Box {
	return FromCorners(b.Min.Mul(f), b.Max.Mul(f))
}
