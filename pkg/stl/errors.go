package stl

import "errors"

var (
	// ErrMalformed indicates the source file could not be decoded as STL,
	// or its vertex stream does not form whole triangles.
	ErrMalformed = errors.New("malformed STL input")

	// ErrEmptyMesh indicates the source file decoded to zero triangles.
	ErrEmptyMesh = errors.New("empty mesh")
)
