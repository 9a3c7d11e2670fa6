package repository

import (
	"regexp"

	"github.com/metinatakli/content-catalog/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Fields matched by a free-text search.
var searchFields = []string{"title", "original_title", "cast.name", "directors"}

var listProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "imdb_id", Value: 1},
	{Key: "title", Value: 1},
	{Key: "original_title", Value: 1},
	{Key: "year", Value: 1},
	{Key: "release_date", Value: 1},
	{Key: "overview", Value: 1},
	{Key: "plot", Value: 1},
	{Key: "runtime", Value: 1},
	{Key: "imdb_rating", Value: 1},
	{Key: "tmdb_vote_average", Value: 1},
	{Key: "genres", Value: 1},
	{Key: "languages", Value: 1},
	{Key: "countries", Value: 1},
	{Key: "poster_url", Value: 1},
	{Key: "backdrop_url", Value: 1},
	{Key: "content_type", Value: 1},
}

var searchProjection = bson.D{
	{Key: "_id", Value: 1},
	{Key: "imdb_id", Value: 1},
	{Key: "title", Value: 1},
	{Key: "original_title", Value: 1},
	{Key: "year", Value: 1},
	{Key: "release_date", Value: 1},
	{Key: "overview", Value: 1},
	{Key: "imdb_rating", Value: 1},
	{Key: "tmdb_vote_average", Value: 1},
	{Key: "genres", Value: 1},
	{Key: "languages", Value: 1},
	{Key: "poster_url", Value: 1},
	{Key: "content_type", Value: 1},
}

// containsIgnoreCase matches documents whose field, or any element of an
// array field, contains s regardless of case. s is matched literally.
func containsIgnoreCase(s string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// buildFilter translates the request predicates into a filter document. All
// predicates are AND-ed; the minimum rating is satisfied by either rating field.
func buildFilter(f domain.ContentFilter) bson.D {
	filter := bson.D{}

	if f.Genre != nil {
		filter = append(filter, bson.E{Key: "genres.name", Value: containsIgnoreCase(*f.Genre)})
	}

	if f.Language != nil {
		filter = append(filter, bson.E{Key: "languages", Value: containsIgnoreCase(*f.Language)})
	}

	switch {
	case f.Year != nil:
		filter = append(filter, bson.E{Key: "year", Value: *f.Year})
	case f.HasYearRange():
		yearRange := bson.D{}
		if f.YearFrom != nil {
			yearRange = append(yearRange, bson.E{Key: "$gte", Value: *f.YearFrom})
		}
		if f.YearTo != nil {
			yearRange = append(yearRange, bson.E{Key: "$lte", Value: *f.YearTo})
		}
		filter = append(filter, bson.E{Key: "year", Value: yearRange})
	}

	if f.MinRating != nil {
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: domain.PrimaryRatingField, Value: bson.D{{Key: "$gte", Value: *f.MinRating}}}},
			bson.D{{Key: domain.SecondaryRatingField, Value: bson.D{{Key: "$gte", Value: *f.MinRating}}}},
		}})
	}

	if f.ContentType != nil {
		filter = append(filter, bson.E{Key: "content_type", Value: *f.ContentType})
	}

	if f.Country != nil {
		filter = append(filter, bson.E{Key: "countries", Value: containsIgnoreCase(*f.Country)})
	}

	return filter
}

// buildSearchFilter matches term against the searchable fields and AND-s the
// result with the remaining predicates. Wrapping both in $and keeps the text
// $or separate from the rating $or.
func buildSearchFilter(term string, f domain.ContentFilter) bson.D {
	matches := make(bson.A, 0, len(searchFields))
	for _, field := range searchFields {
		matches = append(matches, bson.D{{Key: field, Value: containsIgnoreCase(term)}})
	}

	search := bson.D{{Key: "$or", Value: matches}}

	filter := buildFilter(f)
	if len(filter) == 0 {
		return search
	}

	return bson.D{{Key: "$and", Value: bson.A{search, filter}}}
}

// buildSort appends _id so that equal sort values page deterministically.
func buildSort(s domain.SortSpec) bson.D {
	direction := -1
	if s.Ascending {
		direction = 1
	}

	return bson.D{
		{Key: s.Field, Value: direction},
		{Key: "_id", Value: 1},
	}
}
