package domain

import (
	"math"
	"strings"
)

// ContentFilter holds the optional catalog predicates of one request. A nil
// field leaves that attribute unconstrained. Builders return an updated copy
// and never mutate the receiver.
//
// An exact year takes precedence over a year range: WithYear clears any
// range bounds, and WithYearFrom/WithYearTo are ignored once Year is set.
type ContentFilter struct {
	Genre       *string
	Language    *string
	Country     *string
	Year        *int
	YearFrom    *int
	YearTo      *int
	MinRating   *float64
	ContentType *string
}

func (f ContentFilter) WithGenre(genre string) ContentFilter {
	f.Genre = nonBlank(genre)
	return f
}

func (f ContentFilter) WithLanguage(language string) ContentFilter {
	f.Language = nonBlank(language)
	return f
}

func (f ContentFilter) WithCountry(country string) ContentFilter {
	f.Country = nonBlank(country)
	return f
}

func (f ContentFilter) WithContentType(contentType string) ContentFilter {
	f.ContentType = nonBlank(contentType)
	return f
}

func (f ContentFilter) WithYear(year int) ContentFilter {
	f.Year = &year
	f.YearFrom = nil
	f.YearTo = nil
	return f
}

func (f ContentFilter) WithYearFrom(year int) ContentFilter {
	if f.Year != nil {
		return f
	}

	f.YearFrom = &year
	return f
}

func (f ContentFilter) WithYearTo(year int) ContentFilter {
	if f.Year != nil {
		return f
	}

	f.YearTo = &year
	return f
}

// WithMinRating ignores NaN and infinite thresholds.
func (f ContentFilter) WithMinRating(rating float64) ContentFilter {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return f
	}

	f.MinRating = &rating
	return f
}

func (f ContentFilter) HasYearRange() bool {
	return f.YearFrom != nil || f.YearTo != nil
}

func nonBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
