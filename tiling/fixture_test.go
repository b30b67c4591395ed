package tiling_test

import (
	"testing"

	"github.com/katalvlaran/isohedral/tiling"
)

// The production 81-entry coefficient blob is decoded by callers and handed
// to NewDatabase; the suite exercises the same schema through a curated set
// of hand-constructed records whose geometry is simple enough to verify on
// paper.
const (
	// typeSquare: unit square, translations only, one aspect, J edges.
	// Opposite edges carry the same slot, the far edge traversed reversed.
	typeSquare = 1
	// typeBrick: parameterised p0×1 rectangle; a half-turn about (p0, 0.5)
	// pairs two aspects into a 2p0×1 block. S edges, two colours, with the
	// t1 step swapping them.
	typeBrick = 2
	// typeQuarter: unit square with four rotational aspects about (1,1)
	// forming a 2×2 block; one U slot spread over all four edges with all
	// four intrinsic orientations; three colours cycled by both lattice
	// steps.
	typeQuarter = 3
	// typeHexagon: four-parameter hexagon tiled by translations alone,
	// matching the shape of the classification's parametric hexagonal
	// types: six vertices, three J slots, one aspect.
	typeHexagon = 4
)

func squareRecord() tiling.TypeRecord {
	return tiling.TypeRecord{
		NumParams:     0,
		NumVertices:   4,
		NumEdgeShapes: 2,
		NumAspects:    1,
		EdgeShapes:    []tiling.EdgeShape{tiling.J, tiling.J},
		EdgeShapeIDs:  []int{0, 1, 0, 1},
		EdgeOrientations: []bool{
			false, false,
			false, false,
			false, true,
			false, true,
		},
		VertexCoeffs:      []float64{0, 0, 1, 0, 1, 1, 0, 1},
		TranslationCoeffs: []float64{1, 0, 0, 1},
		AspectCoeffs:      []float64{1, 0, 0, 0, 1, 0},
		Colouring:         [21]int{18: 1},
	}
}

func brickRecord() tiling.TypeRecord {
	return tiling.TypeRecord{
		NumParams:     1,
		NumVertices:   4,
		NumEdgeShapes: 2,
		NumAspects:    2,
		EdgeShapes:    []tiling.EdgeShape{tiling.S, tiling.S},
		EdgeShapeIDs:  []int{0, 1, 0, 1},
		EdgeOrientations: []bool{
			false, false,
			false, false,
			false, true,
			false, true,
		},
		DefaultParams: []float64{1},
		// Vertices (0,0), (p0,0), (p0,1), (0,1).
		VertexCoeffs: []float64{
			0, 0, 0, 0,
			1, 0, 0, 0,
			1, 0, 0, 1,
			0, 0, 0, 1,
		},
		// t1 = (2·p0, 0), t2 = (0, 1).
		TranslationCoeffs: []float64{2, 0, 0, 0, 0, 0, 0, 1},
		// Aspect 0 identity; aspect 1 the half-turn about (p0, 1/2):
		// [-1 0 2p0; 0 -1 1].
		AspectCoeffs: []float64{
			0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0,
			0, -1, 0, 0, 2, 0, 0, 0, 0, -1, 0, 1,
		},
		Colouring: [21]int{1: 1, 12: 1, 16: 1, 18: 2},
	}
}

func quarterRecord() tiling.TypeRecord {
	return tiling.TypeRecord{
		NumParams:     0,
		NumVertices:   4,
		NumEdgeShapes: 1,
		NumAspects:    4,
		EdgeShapes:    []tiling.EdgeShape{tiling.U},
		EdgeShapeIDs:  []int{0, 0, 0, 0},
		// One edge per intrinsic orientation: identity, flip, rotate,
		// flip+rotate.
		EdgeOrientations: []bool{
			false, false,
			true, false,
			false, true,
			true, true,
		},
		VertexCoeffs:      []float64{0, 0, 1, 0, 1, 1, 0, 1},
		TranslationCoeffs: []float64{2, 0, 0, 2},
		// Rotations by 0°, 90°, 180°, 270° about (1,1).
		AspectCoeffs: []float64{
			1, 0, 0, 0, 1, 0,
			0, -1, 2, 1, 0, 0,
			-1, 0, 2, 0, -1, 2,
			0, 1, 0, -1, 0, 2,
		},
		Colouring: [21]int{0, 1, 2, 0, 12: 1, 13: 2, 14: 0, 15: 2, 16: 0, 17: 1, 18: 3},
	}
}

func hexagonRecord() tiling.TypeRecord {
	return tiling.TypeRecord{
		NumParams:     4,
		NumVertices:   6,
		NumEdgeShapes: 3,
		NumAspects:    1,
		EdgeShapes:    []tiling.EdgeShape{tiling.J, tiling.J, tiling.J},
		EdgeShapeIDs:  []int{0, 1, 2, 0, 1, 2},
		EdgeOrientations: []bool{
			false, false,
			false, false,
			false, false,
			false, true,
			false, true,
			false, true,
		},
		DefaultParams: []float64{1, 0.5, 1, 0.5},
		// Edge vectors e0 = (p0, 0), e1 = (p1, p2), e2 = (-p3, p2); the
		// opposite edges are their negations, so the hexagon closes for any
		// parameter choice. Vertices accumulate the edge vectors from (0,0).
		VertexCoeffs: []float64{
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			1, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			1, 1, 0, 0, 0, 0, 0, 1, 0, 0,
			1, 1, 0, -1, 0, 0, 0, 2, 0, 0,
			0, 1, 0, -1, 0, 0, 0, 2, 0, 0,
			0, 0, 0, -1, 0, 0, 0, 1, 0, 0,
		},
		// t1 = (p0+p3, -p2) carries the upper-left edge onto the lower-right;
		// t2 = (p1-p3, 2·p2) carries the bottom edge onto the top; their sum
		// carries the lower-left edge onto the upper-right.
		TranslationCoeffs: []float64{
			1, 0, 0, 1, 0, 0, 0, -1, 0, 0,
			0, 1, 0, -1, 0, 0, 0, 2, 0, 0,
		},
		AspectCoeffs: []float64{
			0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
		},
		Colouring: [21]int{18: 1},
	}
}

// fixtureRecords returns the full curated record set.
func fixtureRecords() map[int]tiling.TypeRecord {
	return map[int]tiling.TypeRecord{
		typeSquare:  squareRecord(),
		typeBrick:   brickRecord(),
		typeQuarter: quarterRecord(),
		typeHexagon: hexagonRecord(),
	}
}

// fixtureTypes returns the companion ordering of the curated set.
func fixtureTypes() []int {
	return []int{typeSquare, typeBrick, typeQuarter, typeHexagon}
}

// newTestDatabase builds the curated database; exported examples use it
// directly, tests go through testDatabase.
func newTestDatabase() (*tiling.Database, error) {
	return tiling.NewDatabase(fixtureRecords(), fixtureTypes())
}

func testDatabase(t testing.TB) *tiling.Database {
	t.Helper()
	db, err := newTestDatabase()
	if err != nil {
		t.Fatalf("building fixture database: %v", err)
	}
	return db
}
