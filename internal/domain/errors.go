package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidSearchQuery = errors.New("search query must be at least 2 characters")
	ErrUnknownFacet       = errors.New("unknown facet")
)
