// Package tiling constructs and enumerates isohedral tilings of the plane.
//
// Overview:
//
//   - The Grünbaum–Shephard classification admits 81 topological types of
//     isohedral tilings (IH01..IH93 with gaps). Each type is described by a
//     fixed-schema TypeRecord: counts, default parameters, and coefficient
//     tables that express every derived quantity as a linear function of the
//     parameter vector.
//   - IsohedralTiling holds one type plus a parameter vector, and derives the
//     prototile vertices, per-edge placement transforms, aspect transforms,
//     and the translation lattice (t1, t2). Derivation is a pure function of
//     (type, parameters): resetting to the same pair reproduces the same
//     geometry bit for bit.
//   - Shape and Parts walk the prototile boundary; FillRegionBounds and
//     FillRegionQuad lazily yield every (t1, t2, aspect) placement whose tile
//     overlaps a query region; Colour assigns each placement a colour index
//     consistent with the tiling's symmetry group.
//
// When to use:
//
//   - Pattern generators: pick a type, deform its parameters, draw each edge
//     with any curve respecting the edge's declared symmetry.
//   - Texture/wallpaper synthesis: fill the visible viewport and recolour
//     placements with the built-in symmetric colouring.
//   - Geometry tooling that needs the canonical prototile topology of any
//     isohedral type.
//
// Key behaviours:
//
//   - Laziness: Shape, Parts, and the fill enumerators are iter.Seq values;
//     placements are produced one at a time and consumers may stop pulling at
//     any point. No goroutines, no I/O, no blocking.
//   - Ordering: Shape/Parts follow vertex order; fills emit rows of the
//     lattice bottom-to-top, cells left-to-right within a row, and aspects in
//     index order within a cell.
//   - Edge symmetry classes: I (straight), J (free curve), S (2-fold
//     rotation about the midpoint), U (mirror across the perpendicular
//     bisector). Parts splits S and U edges into their two symmetric halves.
//   - The 81-entry coefficient database is external input: build a Database
//     from the decoded blob once, share it freely, and construct any number
//     of tilings against it.
//
// Concurrency:
//
//   - A Database is immutable and safe for concurrent use. An
//     IsohedralTiling is safe for concurrent readers, but SetParameters and
//     Reset must not run concurrently with any other call on the same value.
//
// Error handling (sentinel errors):
//
//   - ErrNilDatabase: a nil *Database was handed to New.
//   - ErrInvalidType: the type number has no record in the database.
//   - ErrParameterCount: SetParameters received a vector whose length does
//     not equal NumParameters. The tiling is left unchanged.
//   - ErrBadRecord: NewDatabase rejected a record that violates the schema.
//
// Degenerate parameters that collapse the lattice (t1 × t2 = 0) are the
// caller's responsibility: the fill enumerators divide by that determinant
// and do not defensively check it.
package tiling
