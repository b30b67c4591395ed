// Package geom provides the 2D geometric primitives shared by the tiling
// machinery: value-typed points and 2×3 affine transforms.
//
// What:
//
//   - Point is a defined type over gonum's spatial/r2.Vec — an (X, Y) pair
//     whose Add, Sub, Scale, Dot and Cross methods delegate to r2.
//   - Transform is a 2×3 affine matrix stored as a flat [6]float64 in
//     row-major order [a b c d e f], mapping (x, y) ↦ (a·x+b·y+c, d·x+e·y+f).
//   - MatchSegment builds the affine carrying the canonical unit edge
//     (0,0)→(1,0) onto an arbitrary segment p→q.
//
// Why:
//
//   - Prototile edges, aspect placements, and lattice translations are all
//     expressed as affines over points; one tiny shared vocabulary keeps the
//     tiling core free of ad hoc coordinate math.
//
// Conventions:
//
//   - Transforms compose left-to-right through Mul: A.Mul(B) is A∘B, the
//     transform applying B first. The implicit bottom row is [0 0 1].
//   - Affine·point and affine·affine are two distinct named operations
//     (Apply and Mul); there is no runtime dispatch on the operand.
//
// Complexity: every operation is O(1) and allocation-free.
package geom
