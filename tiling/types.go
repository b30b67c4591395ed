package tiling

import (
	"fmt"

	"github.com/katalvlaran/isohedral/geom"
)

// NumTypes is the number of isohedral tiling types in the classification.
const NumTypes = 81

// EdgeShape classifies the symmetry constraint a well-formed edge curve
// must satisfy. The constant values are those of the reference coefficient
// data, so externally decoded blobs round-trip unchanged.
type EdgeShape int

const (
	// J is an unconstrained edge: any curve from (0,0) to (1,0).
	J EdgeShape = 10001
	// U is an edge symmetric under reflection across its perpendicular bisector.
	U EdgeShape = 10002
	// S is an edge symmetric under 180° rotation about its midpoint.
	S EdgeShape = 10003
	// I is a straight edge with no shape degrees of freedom.
	I EdgeShape = 10004
)

// String returns the single-letter name of the edge shape class.
func (s EdgeShape) String() string {
	switch s {
	case J:
		return "J"
	case U:
		return "U"
	case S:
		return "S"
	case I:
		return "I"
	}
	return fmt.Sprintf("EdgeShape(%d)", int(s))
}

// valid reports whether s is one of the four edge shape classes.
func (s EdgeShape) valid() bool {
	return s == J || s == U || s == S || s == I
}

// TypeRecord is the immutable description of one isohedral tiling type.
//
// All geometric quantities are linear in the augmented parameter vector
// [p₀ … pₙ₋₁ 1]: a point consumes 2·(NumParams+1) contiguous coefficients
// (x row then y row), a 2×3 matrix consumes 6·(NumParams+1).
type TypeRecord struct {
	// NumParams is the number of client-controllable shape parameters (0–6).
	NumParams int
	// NumVertices is the number of prototile vertices (3–6).
	NumVertices int
	// NumEdgeShapes is the number of distinct edge-shape slots (1–4).
	NumEdgeShapes int
	// NumAspects is the number of distinct tile orientations that, together
	// with the translation lattice, cover the tiling (1–12).
	NumAspects int

	// EdgeShapes holds the symmetry class of each edge-shape slot.
	EdgeShapes []EdgeShape
	// EdgeShapeIDs maps each prototile edge to one of the shape slots.
	EdgeShapeIDs []int
	// EdgeOrientations holds, per edge, a (flip, rotate) pair of flags
	// selecting the intrinsic orientation of the slot curve on that edge.
	EdgeOrientations []bool

	// DefaultParams is the initial parameter vector, length NumParams.
	DefaultParams []float64

	// VertexCoeffs holds NumVertices points' worth of coefficients.
	VertexCoeffs []float64
	// TranslationCoeffs holds the t1 and t2 points' coefficients.
	TranslationCoeffs []float64
	// AspectCoeffs holds NumAspects matrices' worth of coefficients.
	AspectCoeffs []float64

	// Colouring is the 21-entry colouring table: [0..11] per-aspect base
	// colour, [12..14] the t1 permutation, [15..17] the t2 permutation,
	// [18] the colour count (≤ 3), [19..20] padding.
	Colouring [21]int
}

// EdgeInstance describes one boundary piece yielded by Shape or Parts.
type EdgeInstance struct {
	// T maps the canonical unit edge (0,0)→(1,0) onto the placed piece.
	T geom.Transform
	// ID is the edge-shape slot the piece draws from.
	ID int
	// Shape is the symmetry class of that slot.
	Shape EdgeShape
	// Reversed reports whether the canonical traversal runs backwards here.
	Reversed bool
	// Second marks the second half of a split S or U edge (Parts only).
	Second bool
}

// Placement describes one tile copy yielded by the fill enumerators.
type Placement struct {
	// T is the world-space transform placing the prototile: the aspect
	// transform with its translation column augmented by T1·t1 + T2·t2.
	T geom.Transform
	// T1 and T2 are the integer lattice coordinates of the cell.
	T1, T2 int
	// Aspect is the aspect index of this copy.
	Aspect int
}
