package tiling

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/isohedral/geom"
)

// orients are the four intrinsic edge orientations, indexed by
// 2·flip + rotate: identity, 180° rotation about (0.5, 0), reflection
// across x = 0.5, and reflection across y = 0.
var orients = [4]geom.Transform{
	{1, 0, 0, 0, 1, 0},
	{-1, 0, 1, 0, -1, 0},
	{-1, 0, 1, 0, 1, 0},
	{1, 0, 0, 0, -1, 0},
}

// tspiU and tspiS are the half-edge transforms Parts composes onto a U or S
// edge: each carries the canonical unit edge onto one half of it, with the
// second entry mirrored (U) or rotated (S) to land on the far half.
var (
	tspiU = [2]geom.Transform{{0.5, 0, 0, 0, 0.5, 0}, {-0.5, 0, 1, 0, 0.5, 0}}
	tspiS = [2]geom.Transform{{0.5, 0, 0, 0, 0.5, 0}, {-0.5, 0, 1, 0, -0.5, 0}}
)

// IsohedralTiling is one isohedral tiling type instantiated with a
// parameter vector, together with all geometry derived from the pair.
//
// The derived quantities are recomputed in full on construction, Reset, and
// SetParameters; between mutations the value is safe for concurrent readers.
type IsohedralTiling struct {
	db     *Database
	tp     int
	rec    TypeRecord
	params []float64

	verts     []geom.Point
	edges     []geom.Transform
	reversals []bool
	aspects   []geom.Transform
	t1, t2    geom.Point
}

// New constructs a tiling of the given type with its default parameters.
// tp must come from the database's Types list.
func New(db *Database, tp int) (*IsohedralTiling, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}
	t := &IsohedralTiling{db: db}
	if err := t.Reset(tp); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset reinitialises the tiling in place to the given type with its
// default parameters. On ErrInvalidType the current state is unchanged.
func (t *IsohedralTiling) Reset(tp int) error {
	rec, err := t.db.Record(tp)
	if err != nil {
		return err
	}
	t.tp = tp
	t.rec = rec
	t.params = make([]float64, rec.NumParams)
	copy(t.params, rec.DefaultParams)
	t.recompute()
	return nil
}

// TilingType returns the canonical isohedral type number of the tiling.
func (t *IsohedralTiling) TilingType() int { return t.tp }

// NumParameters returns the number of shape parameters of the type.
func (t *IsohedralTiling) NumParameters() int { return t.rec.NumParams }

// NumVertices returns the number of prototile vertices (and edges).
func (t *IsohedralTiling) NumVertices() int { return t.rec.NumVertices }

// NumEdgeShapes returns the number of distinct edge-shape slots.
func (t *IsohedralTiling) NumEdgeShapes() int { return t.rec.NumEdgeShapes }

// NumAspects returns the number of aspects of the tiling.
func (t *IsohedralTiling) NumAspects() int { return t.rec.NumAspects }

// EdgeShape returns the symmetry class of edge-shape slot i.
func (t *IsohedralTiling) EdgeShape(i int) EdgeShape { return t.rec.EdgeShapes[i] }

// Parameters returns a copy of the current parameter vector.
func (t *IsohedralTiling) Parameters() []float64 {
	out := make([]float64, len(t.params))
	copy(out, t.params)
	return out
}

// SetParameters installs a new parameter vector and recomputes all derived
// geometry. The vector length must equal NumParameters; on
// ErrParameterCount the current state is unchanged. Values are not
// range-checked — parameter choices that collapse the lattice are the
// caller's responsibility.
func (t *IsohedralTiling) SetParameters(params []float64) error {
	if len(params) != t.rec.NumParams {
		return fmt.Errorf("%w: got %d, want %d", ErrParameterCount, len(params), t.rec.NumParams)
	}
	t.params = make([]float64, len(params))
	copy(t.params, params)
	t.recompute()
	return nil
}

// Vertex returns prototile vertex i.
func (t *IsohedralTiling) Vertex(i int) geom.Point { return t.verts[i] }

// Vertices returns a copy of the prototile vertices in order.
func (t *IsohedralTiling) Vertices() []geom.Point {
	out := make([]geom.Point, len(t.verts))
	copy(out, t.verts)
	return out
}

// AspectTransform returns the transform placing the prototile in aspect i.
func (t *IsohedralTiling) AspectTransform(i int) geom.Transform { return t.aspects[i] }

// T1 returns the first lattice translation vector.
func (t *IsohedralTiling) T1() geom.Point { return t.t1 }

// T2 returns the second lattice translation vector.
func (t *IsohedralTiling) T2() geom.Point { return t.t2 }

// recompute derives all geometry from (type, params). It is the only writer
// of the derived fields and touches nothing else, so equal inputs always
// reproduce identical state.
func (t *IsohedralTiling) recompute() {
	ntv := t.rec.NumVertices
	aug := t.rec.NumParams + 1

	// 1) Vertex positions.
	t.verts = make([]geom.Point, ntv)
	for i := range t.verts {
		t.verts[i] = makePoint(t.rec.VertexCoeffs, i*2*aug, t.params)
	}

	// 2) Edge transforms and reversals from the orientation flags.
	t.reversals = make([]bool, ntv)
	t.edges = make([]geom.Transform, ntv)
	for i := 0; i < ntv; i++ {
		fl := t.rec.EdgeOrientations[2*i]
		ro := t.rec.EdgeOrientations[2*i+1]
		t.reversals[i] = fl != ro
		seg := geom.MatchSegment(t.verts[i], t.verts[(i+1)%ntv])
		t.edges[i] = seg.Mul(orients[2*boolIdx(fl)+boolIdx(ro)])
	}

	// 3) Aspect transforms.
	t.aspects = make([]geom.Transform, t.rec.NumAspects)
	for i := range t.aspects {
		t.aspects[i] = makeMatrix(t.rec.AspectCoeffs, 6*aug*i, t.params)
	}

	// 4) Lattice translation vectors.
	t.t1 = makePoint(t.rec.TranslationCoeffs, 0, t.params)
	t.t2 = makePoint(t.rec.TranslationCoeffs, 2*aug, t.params)
}

func boolIdx(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Shape yields one EdgeInstance per prototile edge, in vertex order. Each
// instance carries the transform placing the slot curve on that edge and
// whether the curve runs reversed there.
func (t *IsohedralTiling) Shape() iter.Seq[EdgeInstance] {
	return func(yield func(EdgeInstance) bool) {
		for i := 0; i < t.rec.NumVertices; i++ {
			id := t.rec.EdgeShapeIDs[i]
			ei := EdgeInstance{
				T:        t.edges[i],
				ID:       id,
				Shape:    t.rec.EdgeShapes[id],
				Reversed: t.reversals[i],
			}
			if !yield(ei) {
				return
			}
		}
	}
}

// Parts yields the prototile boundary like Shape, but splits each S and U
// edge into its two symmetric halves. The halves appear in traversal order:
// the reversal flag of the whole edge picks which half-transform comes
// first, the first half is yielded unreversed, and the far half is yielded
// with Reversed and Second set.
func (t *IsohedralTiling) Parts() iter.Seq[EdgeInstance] {
	return func(yield func(EdgeInstance) bool) {
		for i := 0; i < t.rec.NumVertices; i++ {
			id := t.rec.EdgeShapeIDs[i]
			shp := t.rec.EdgeShapes[id]

			if shp == J || shp == I {
				ei := EdgeInstance{
					T:        t.edges[i],
					ID:       id,
					Shape:    shp,
					Reversed: t.reversals[i],
				}
				if !yield(ei) {
					return
				}
				continue
			}

			halves := tspiU
			if shp == S {
				halves = tspiS
			}
			first, second := 0, 1
			if t.reversals[i] {
				first, second = 1, 0
			}
			if !yield(EdgeInstance{T: t.edges[i].Mul(halves[first]), ID: id, Shape: shp}) {
				return
			}
			if !yield(EdgeInstance{T: t.edges[i].Mul(halves[second]), ID: id, Shape: shp, Reversed: true, Second: true}) {
				return
			}
		}
	}
}
