package tiling

import (
	"iter"
	"math"

	"github.com/katalvlaran/isohedral/geom"
)

// fillEps is the slop applied to the x upper bound of each raster row and
// to the horizontal-edge tests on the transformed query quad.
const fillEps = 1e-7

// FillRegionBounds yields every placement whose tile overlaps the
// axis-aligned rectangle [xmin, xmax] × [ymin, ymax], to within a small
// numerical slop. It builds the rectangle's corner quad and delegates to
// FillRegionQuad.
func (t *IsohedralTiling) FillRegionBounds(xmin, ymin, xmax, ymax float64) iter.Seq[Placement] {
	return t.FillRegionQuad(
		geom.Point{X: xmin, Y: ymin},
		geom.Point{X: xmax, Y: ymin},
		geom.Point{X: xmax, Y: ymax},
		geom.Point{X: xmin, Y: ymax},
	)
}

// FillRegionQuad yields every placement whose tile overlaps the
// quadrilateral a→b→c→d, to within a small numerical slop.
//
// The quad is transformed into the lattice's skew basis and rasterised
// there: rows of lattice cells are emitted bottom-to-top, cells
// left-to-right within a row, and at each cell all aspects in index order.
// Each placement's transform is the aspect transform with the lattice
// displacement folded into its translation column.
//
// The sequence is lazy and deterministic; consumers may stop pulling at any
// point, and two identical invocations yield identical sequences. The
// enumeration state lives entirely in the returned sequence, so concurrent
// fills on one tiling are safe as long as nothing mutates it.
//
// A parameter vector that collapses the lattice (t1 × t2 = 0) makes the
// basis change divide by zero; callers must avoid such parameters.
func (t *IsohedralTiling) FillRegionQuad(a, b, c, d geom.Point) iter.Seq[Placement] {
	t1 := t.t1
	t2 := t.t2
	aspects := t.aspects
	numAspects := t.rec.NumAspects

	return func(yield func(Placement) bool) {
		// lastY carries the first unemitted row index across the up to three
		// sub-trapezoids, so a shared horizontal seam is not emitted twice.
		// nil means no trapezoid has completed yet.
		var lastY *float64

		// doFill raster-scans a horizontal-edge trapezoid: bottom edge a→b,
		// top edge d→c, sides a→d and b→c. Returns false when the consumer
		// stopped pulling.
		doFill := func(a, b, c, d geom.Point, doTop bool) bool {
			x1 := a.X
			dx1 := (d.X - a.X) / (d.Y - a.Y)
			x2 := b.X
			dx2 := (c.X - b.X) / (c.Y - b.Y)
			ymax := c.Y
			if doTop {
				ymax++
			}

			y := math.Floor(a.Y)
			if lastY != nil && *lastY > y {
				y = *lastY
			}

			for y < ymax {
				yi := math.Trunc(y)
				x := math.Floor(x1)
				for x < x2+fillEps {
					xi := math.Trunc(x)
					for asp := 0; asp < numAspects; asp++ {
						m := aspects[asp]
						m[2] += xi*t1.X + yi*t2.X
						m[5] += xi*t1.Y + yi*t2.Y
						p := Placement{T: m, T1: int(xi), T2: int(yi), Aspect: asp}
						if !yield(p) {
							return false
						}
					}
					x++
				}
				x1 += dx1
				x2 += dx2
				y++
			}

			lastY = &y
			return true
		}

		// fillFixX orients the bottom edge left-to-right before scanning.
		fillFixX := func(a, b, c, d geom.Point, doTop bool) bool {
			if a.X > b.X {
				return doFill(b, a, d, c, doTop)
			}
			return doFill(a, b, c, d, doTop)
		}

		// fillFixY orients the trapezoid bottom-to-top before scanning.
		fillFixY := func(a, b, c, d geom.Point, doTop bool) bool {
			if a.Y > c.Y {
				return doFill(c, d, a, b, doTop)
			}
			return doFill(a, b, c, d, doTop)
		}

		// Transform the query corners into lattice coordinates.
		det := 1.0 / (t1.X*t2.Y - t2.X*t1.Y)
		mbc := [4]float64{t2.Y * det, -t2.X * det, -t1.Y * det, t1.X * det}
		bc := func(p geom.Point) geom.Point {
			return geom.Point{X: mbc[0]*p.X + mbc[1]*p.Y, Y: mbc[2]*p.X + mbc[3]*p.Y}
		}
		pts := [4]geom.Point{bc(a), bc(b), bc(c), bc(d)}
		if det < 0 {
			// Restore CCW orientation in the skewed basis.
			pts[1], pts[3] = pts[3], pts[1]
		}

		switch {
		case math.Abs(pts[0].Y-pts[1].Y) < fillEps:
			fillFixY(pts[0], pts[1], pts[2], pts[3], true)
		case math.Abs(pts[1].Y-pts[2].Y) < fillEps:
			fillFixY(pts[1], pts[2], pts[3], pts[0], true)
		default:
			// General quad: slice at the left and right corners' heights
			// into three horizontally-monotone trapezoids. Ties on the
			// lowest corner break to the smallest index.
			lowest := 0
			for i := 1; i < 4; i++ {
				if pts[i].Y < pts[lowest].Y {
					lowest = i
				}
			}
			bottom := pts[lowest]
			left := pts[(lowest+1)%4]
			top := pts[(lowest+2)%4]
			right := pts[(lowest+3)%4]
			if left.X > right.X {
				left, right = right, left
			}

			if left.Y < right.Y {
				r1 := sampleAtHeight(bottom, right, left.Y)
				l2 := sampleAtHeight(left, top, right.Y)
				_ = fillFixX(bottom, bottom, r1, left, false) &&
					fillFixX(left, r1, right, l2, false) &&
					fillFixX(l2, right, top, top, true)
			} else {
				l1 := sampleAtHeight(bottom, left, right.Y)
				r2 := sampleAtHeight(right, top, left.Y)
				_ = fillFixX(bottom, bottom, right, l1, false) &&
					fillFixX(l1, right, r2, left, false) &&
					fillFixX(left, r2, top, top, true)
			}
		}
	}
}

// sampleAtHeight linearly interpolates the segment p→q to the point at
// height y.
func sampleAtHeight(p, q geom.Point, y float64) geom.Point {
	t := (y - p.Y) / (q.Y - p.Y)
	return geom.Point{X: (1-t)*p.X + t*q.X, Y: y}
}
