package geom

import (
	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a value-typed 2D point (or vector); copy freely.
//
// It wraps gonum's r2.Vec, so the full r2 vector algebra — Add, Sub,
// Scale, Dot, Cross — is available on every Point.
type Point r2.Vec

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point {
	return Point(r2.Add(r2.Vec(p), r2.Vec(q)))
}

// Sub returns the vector sum of p and -q.
func (p Point) Sub(q Point) Point {
	return Point(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// Scale returns the vector p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point(r2.Scale(f, r2.Vec(p)))
}

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 {
	return r2.Dot(r2.Vec(p), r2.Vec(q))
}

// Cross returns the cross product p×q.
func (p Point) Cross(q Point) float64 {
	return r2.Cross(r2.Vec(p), r2.Vec(q))
}

// Transform is a 2×3 affine transformation matrix in row-major order,
// where the bottom row is implicitly [0 0 1]:
//
//	| m[0]  m[1]  m[2] |
//	| m[3]  m[4]  m[5] |
//
// It represents the map (x, y) ↦ (m[0]·x + m[1]·y + m[2], m[3]·x + m[4]·y + m[5]).
type Transform f64.Aff3

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{1, 0, 0, 0, 1, 0}
}

// Translate returns the transform that shifts every point by (x, y).
func Translate(x, y float64) Transform {
	return Transform{1, 0, x, 0, 1, y}
}

// Apply transforms the point p.
func (m Transform) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Mul returns the composition m∘n, the transform that applies n first
// and then m.
func (m Transform) Mul(n Transform) Transform {
	return Transform{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Transform) IsIdentity() bool {
	return m == Transform{1, 0, 0, 0, 1, 0}
}

// MatchSegment returns the affine sending the canonical unit edge onto the
// segment p→q: (0,0) ↦ p and (1,0) ↦ q. The perpendicular direction is
// scaled by the same factor, so a unit-height bump over the canonical edge
// keeps its proportions on the placed edge.
func MatchSegment(p, q Point) Transform {
	return Transform{
		q.X - p.X, p.Y - q.Y, p.X,
		q.Y - p.Y, q.X - p.X, p.Y,
	}
}
