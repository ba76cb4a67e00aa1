package domain

import "errors"

var (
	// ErrUnsupportedLocale signals a page locale that has no content bundle.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrInvalidTable signals a column/row set that breaks table invariants.
	ErrInvalidTable = errors.New("invalid table")
	// ErrInvalidRow signals a malformed pricing row.
	ErrInvalidRow = errors.New("invalid row")
	// ErrInvalidColumn signals a malformed column spec.
	ErrInvalidColumn = errors.New("invalid column")
)
