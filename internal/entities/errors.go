// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrValidation signals a record that does not satisfy its schema.
	ErrValidation = errors.New("validation error")
	// ErrDuplicateCompany signals two company records sharing an id.
	ErrDuplicateCompany = errors.New("duplicate company id")
	// ErrSource signals a record source that could not be read.
	ErrSource = errors.New("record source error")
)
