// Package isohedral constructs and enumerates the 81 isohedral tilings of
// the plane (the Grünbaum–Shephard classification), with parameterised
// vertex geometry and freely deformable edges.
//
// 🧩 What is isohedral?
//
//	A small, synchronous, CPU-bound library that, given a tiling type and a
//	parameter vector, computes:
//
//	  • The prototile: vertices, per-edge placement transforms, reversal flags
//	  • The aspect transforms and the translation lattice (t1, t2)
//	  • A lazy enumeration of every tile placement covering a query region
//	  • A colouring consistent with the tiling's symmetry group
//
// ✨ Why choose isohedral?
//
//   - Complete          — every topological type of the classification is
//     expressible through one fixed record schema
//   - Deterministic     — derived geometry is a pure function of (type, params)
//   - Streaming         — enumerators are pull-based iter.Seq sequences;
//     stop consuming whenever you have enough tiles
//   - Renderer-agnostic — the library yields transforms and indices; drawing
//     the edge curves is entirely up to the caller
//
// Everything is organized under two subpackages:
//
//	geom/   — 2D points and 2×3 affine transforms
//	tiling/ — type records, the tiling database, IsohedralTiling state,
//	          shape/parts enumeration, region fill, colouring
//
// Quick ASCII example:
//
//	    ┌──┬──┐
//	    ├──┼──┤      a 2×2 window of a square tiling: four placements,
//	    └──┴──┘      one per lattice cell, each carrying its own transform.
//
// The 81-entry coefficient database is consumed, not embedded: callers load
// the static blob, hand it to tiling.NewDatabase, and index tilings through
// the companion type list.
package isohedral
