package domain

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateLibraryID is returned on an insert that races another
	// writer for the same remote ad. Callers treat it as benign.
	ErrDuplicateLibraryID = errors.New("duplicate library id")
)
