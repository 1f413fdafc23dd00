package vpath

import "errors"

var (
	// ErrOutOfMemory is returned when a buffer would grow beyond MaxVertices.
	ErrOutOfMemory = errors.New("vpath: out of memory")

	// ErrInvalidPath is returned when flattening meets a malformed curve run.
	ErrInvalidPath = errors.New("vpath: invalid path")

	// ErrSVGSyntax is returned by ParseSVG for malformed path data.
	ErrSVGSyntax = errors.New("vpath: invalid svg path data")
)
