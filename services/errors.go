package services

import "errors"

// Sentinel errors surfaced by the service layer. Controllers map these
// onto HTTP status codes; callers match with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrBadInput = errors.New("bad input")
)
