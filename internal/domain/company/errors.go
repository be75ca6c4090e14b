package company

import "errors"

var (
	ErrCompanyNotFound   = errors.New("company not found")
	ErrInvalidIdentifier = errors.New("company identifier cannot be empty")
	ErrEmptyCompanyName  = errors.New("company name cannot be empty")
	ErrInvalidURLScheme  = errors.New("invalid url scheme: must be pretty or query")
)
