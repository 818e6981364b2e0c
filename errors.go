package doc2nb

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilTree       = errors.New("document tree cannot be nil")
	ErrEmptyDocName  = errors.New("docname cannot be empty")
	ErrSerialization = errors.New("notebook serialization failed")
)
