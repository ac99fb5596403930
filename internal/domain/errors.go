package domain

import "errors"

// Common validation errors for resource records.
var (
	ErrNameRequired = errors.New("name is required")
)
