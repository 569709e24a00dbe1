package knowledge

import "errors"

// Error values for knowledge base lookups and loading.
var (
	ErrNotFound      = errors.New("document not found")
	ErrInvalidSchema = errors.New("invalid configuration schema")
)
