package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Content type labels found in the catalog. Movies use a single label, while
// episodic content arrives from upstream providers under several labels.
const (
	ContentTypeMovie  = "movie"
	ContentTypeTV     = "tv"
	ContentTypeShow   = "show"
	ContentTypeSeries = "series"
)

// ShowContentTypes lists every label that counts as an episodic show.
var ShowContentTypes = []string{ContentTypeTV, ContentTypeShow, ContentTypeSeries}

type Genre struct {
	ID   *int   `bson:"id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}

type CastMember struct {
	ID                 int     `bson:"id,omitempty" json:"id,omitempty"`
	Name               string  `bson:"name" json:"name"`
	Character          *string `bson:"character,omitempty" json:"character"`
	KnownForDepartment string  `bson:"known_for_department,omitempty" json:"known_for_department,omitempty"`
	Order              int     `bson:"order,omitempty" json:"order,omitempty"`
	Popularity         float64 `bson:"popularity,omitempty" json:"popularity,omitempty"`
	ProfilePath        *string `bson:"profile_path,omitempty" json:"profile_path"`
}

type StreamingPlatform struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Type     string `bson:"type,omitempty" json:"type,omitempty"`
}

// Crew holds crew entries as stored. Upstream providers disagree on their
// shape (plain names or documents), so entries are kept as decoded and
// embedded documents become maps.
type Crew []any

func (c *Crew) UnmarshalBSONValue(typ byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}
	if raw.Type == bson.TypeNull {
		*c = nil
		return nil
	}

	var values bson.A
	err := raw.Unmarshal(&values)
	if err != nil {
		return err
	}

	crew := make(Crew, 0, len(values))
	for _, v := range values {
		crew = append(crew, plainValue(v))
	}

	*c = crew
	return nil
}

// plainValue converts ordered documents and arrays into maps and slices so
// they encode as JSON objects and arrays.
func plainValue(v any) any {
	switch v := v.(type) {
	case bson.D:
		m := make(map[string]any, len(v))
		for _, e := range v {
			m[e.Key] = plainValue(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[k] = plainValue(e)
		}
		return m
	case bson.A:
		a := make([]any, len(v))
		for i, e := range v {
			a[i] = plainValue(e)
		}
		return a
	default:
		return v
	}
}

// CatalogItem is one movie or show of the merged catalog. Identifier
// uniqueness is enforced by the store.
type CatalogItem struct {
	ID                  bson.ObjectID       `bson:"_id,omitempty" json:"_id"`
	ImdbID              string              `bson:"imdb_id,omitempty" json:"imdb_id"`
	Title               string              `bson:"title,omitempty" json:"title"`
	OriginalTitle       string              `bson:"original_title,omitempty" json:"original_title,omitempty"`
	Year                *int                `bson:"year,omitempty" json:"year"`
	ReleaseDate         *string             `bson:"release_date,omitempty" json:"release_date"`
	Overview            string              `bson:"overview,omitempty" json:"overview,omitempty"`
	Plot                string              `bson:"plot,omitempty" json:"plot,omitempty"`
	PlotFull            string              `bson:"plot_full,omitempty" json:"plot_full,omitempty"`
	Runtime             int                 `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Duration            *int                `bson:"duration,omitempty" json:"duration,omitempty"`
	ImdbRating          *float64            `bson:"imdb_rating,omitempty" json:"imdb_rating,omitempty"`
	ImdbRatingCount     *int64              `bson:"imdb_rating_count,omitempty" json:"imdb_rating_count,omitempty"`
	TmdbVoteAverage     *float64            `bson:"tmdb_vote_average,omitempty" json:"tmdb_vote_average,omitempty"`
	TmdbVoteCount       int64               `bson:"tmdb_vote_count,omitempty" json:"tmdb_vote_count,omitempty"`
	VoteCount           *int64              `bson:"vote_count,omitempty" json:"vote_count,omitempty"`
	TmdbPopularity      float64             `bson:"tmdb_popularity,omitempty" json:"tmdb_popularity,omitempty"`
	Genres              []Genre             `bson:"genres,omitempty" json:"genres,omitempty"`
	Languages           []string            `bson:"languages,omitempty" json:"languages,omitempty"`
	OriginalLanguage    string              `bson:"original_language,omitempty" json:"original_language,omitempty"`
	Countries           []string            `bson:"countries,omitempty" json:"countries,omitempty"`
	Cast                []CastMember        `bson:"cast,omitempty" json:"cast,omitempty"`
	Crew                Crew                `bson:"crew,omitempty" json:"crew,omitempty"`
	Directors           []string            `bson:"directors,omitempty" json:"directors,omitempty"`
	Writers             []string            `bson:"writers,omitempty" json:"writers,omitempty"`
	Stars               []string            `bson:"stars,omitempty" json:"stars,omitempty"`
	ProductionCompanies []string            `bson:"production_companies,omitempty" json:"production_companies,omitempty"`
	PosterURL           string              `bson:"poster_url,omitempty" json:"poster_url,omitempty"`
	BackdropURL         string              `bson:"backdrop_url,omitempty" json:"backdrop_url,omitempty"`
	ContentType         string              `bson:"content_type,omitempty" json:"content_type"`
	Type                string              `bson:"type,omitempty" json:"type,omitempty"`
	Status              string              `bson:"status,omitempty" json:"status,omitempty"`
	Seasons             int                 `bson:"seasons,omitempty" json:"seasons,omitempty"`
	StreamingPlatforms  []StreamingPlatform `bson:"streaming_platforms,omitempty" json:"streaming_platforms,omitempty"`
	InsertedAt          *time.Time          `bson:"inserted_at,omitempty" json:"inserted_at,omitempty"`
}

// IsShow reports whether the item carries one of the episodic content labels.
func (c CatalogItem) IsShow() bool {
	for _, t := range ShowContentTypes {
		if c.ContentType == t {
			return true
		}
	}

	return false
}

type YearRange struct {
	Min int
	Max int
}

type Stats struct {
	Total     int64
	Movies    int64
	Shows     int64
	Genres    int
	Languages int
}

type ContentRepository interface {
	GetAll(ctx context.Context, filters ContentFilter, sort SortSpec, pagination Pagination) ([]*CatalogItem, *Metadata, error)
	GetById(ctx context.Context, id string) (*CatalogItem, error)
	Search(ctx context.Context, term string, filters ContentFilter, pagination Pagination) ([]*CatalogItem, *Metadata, error)
	GetRecent(ctx context.Context, limit int) ([]*CatalogItem, error)
}

type FacetRepository interface {
	GetDistinctValues(ctx context.Context, facet Facet) ([]string, error)
	GetYearRange(ctx context.Context) (*YearRange, error)
	GetStats(ctx context.Context) (*Stats, error)
}
