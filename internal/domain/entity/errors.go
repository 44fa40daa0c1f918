package entity

import "errors"

var (
	// ErrValidation marks input outside its declared domain.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration marks a value or artifact the pipeline cannot interpret,
	// such as an unknown activity level or a malformed feature schema.
	ErrConfiguration = errors.New("configuration error")

	// ErrSchemaMismatch marks a feature schema that lacks a required numeric column.
	ErrSchemaMismatch = errors.New("schema mismatch")

	ErrUnknownClass          = errors.New("unknown class index")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)
