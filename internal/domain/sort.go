package domain

type SortKey string

const (
	SortReleaseDate SortKey = "release_date"
	SortRating      SortKey = "rating"
	SortTitle       SortKey = "title"
	SortYear        SortKey = "year"
	SortPopularity  SortKey = "popularity"
)

// Document fields holding the two upstream ratings. The primary rating
// drives sorting; filtering by minimum rating accepts either.
const (
	PrimaryRatingField   = "imdb_rating"
	SecondaryRatingField = "tmdb_vote_average"
)

var sortFields = map[SortKey]string{
	SortReleaseDate: "release_date",
	SortRating:      PrimaryRatingField,
	SortTitle:       "title",
	SortYear:        "year",
	SortPopularity:  "tmdb_popularity",
}

type SortSpec struct {
	Field     string
	Ascending bool
}

// DefaultSort orders by release date, newest first.
var DefaultSort = SortSpec{Field: sortFields[SortReleaseDate]}

// SearchSort is applied to every search regardless of the requested order.
var SearchSort = SortSpec{Field: PrimaryRatingField}

// NewSortSpec maps a sort key and order to a field and direction. Only "asc"
// sorts ascending. An empty or unknown key yields DefaultSort, whatever the
// requested order.
func NewSortSpec(key, order string) SortSpec {
	if key == "" {
		key = string(SortReleaseDate)
	}

	field, ok := sortFields[SortKey(key)]
	if !ok {
		return DefaultSort
	}

	return SortSpec{
		Field:     field,
		Ascending: order == "asc",
	}
}
