package util

import "errors"

var (
	ErrStoreUnavailable  = errors.New("document store not available")
	ErrMalformedDocument = errors.New("stored document does not match expected shape")
)
