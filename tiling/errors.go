package tiling

import "errors"

var (
	// ErrNilDatabase indicates a nil *Database was passed to New.
	ErrNilDatabase = errors.New("tiling: database must not be nil")
	// ErrInvalidType indicates a type number with no record in the database.
	ErrInvalidType = errors.New("tiling: unknown isohedral tiling type")
	// ErrParameterCount indicates a parameter vector of the wrong length.
	ErrParameterCount = errors.New("tiling: parameter vector length mismatch")
	// ErrBadRecord indicates a tiling type record that violates the schema.
	ErrBadRecord = errors.New("tiling: malformed tiling type record")
)
