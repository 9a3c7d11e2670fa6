package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/metinatakli/content-catalog/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/sync/errgroup"
)

const (
	CatalogCollection = "merged_catalog"
	RecentCollection  = "just_in"

	fallbackMinYear = 1900
)

// MongoContentRepository reads the merged catalog and the recently added feed.
//
// GetAll and Search issue the count and the page fetch concurrently. Under
// concurrent writes the two reads may observe different snapshots, so the
// reported total can briefly disagree with the returned page.
type MongoContentRepository struct {
	db  *mongo.Database
	now func() time.Time
}

func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{
		db:  db,
		now: time.Now,
	}
}

func (m *MongoContentRepository) catalog() *mongo.Collection {
	return m.db.Collection(CatalogCollection)
}

func (m *MongoContentRepository) GetAll(
	ctx context.Context,
	filters domain.ContentFilter,
	sort domain.SortSpec,
	pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error) {

	return m.findPage(ctx, buildFilter(filters), buildSort(sort), listProjection, pagination)
}

func (m *MongoContentRepository) Search(
	ctx context.Context,
	term string,
	filters domain.ContentFilter,
	pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error) {

	if utf8.RuneCountInString(term) < 2 {
		return nil, nil, domain.ErrInvalidSearchQuery
	}

	filter := buildSearchFilter(term, filters)

	return m.findPage(ctx, filter, buildSort(domain.SearchSort), searchProjection, pagination)
}

func (m *MongoContentRepository) findPage(
	ctx context.Context,
	filter bson.D,
	sort bson.D,
	projection bson.D,
	pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error) {

	var (
		g     errgroup.Group
		items = []*domain.CatalogItem{}
		total int64
	)

	// A failed read does not cancel its sibling; both are awaited.
	g.Go(func() error {
		opts := options.Find().
			SetSort(sort).
			SetSkip(int64(pagination.Offset())).
			SetLimit(int64(pagination.Limit())).
			SetProjection(projection)

		cursor, err := m.catalog().Find(ctx, filter, opts)
		if err != nil {
			return fmt.Errorf("find catalog items: %w", err)
		}

		err = cursor.All(ctx, &items)
		if err != nil {
			return fmt.Errorf("decode catalog items: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		count, err := m.catalog().CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("count catalog items: %w", err)
		}

		total = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return items, domain.NewMetadata(total, pagination), nil
}

// GetById looks the item up by its external identifier, then by its internal
// ObjectID. An id that is not a valid ObjectID only misses the second lookup.
func (m *MongoContentRepository) GetById(ctx context.Context, id string) (*domain.CatalogItem, error) {
	item, err := m.findOne(ctx, bson.D{{Key: "imdb_id", Value: id}})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return item, err
	}

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	return m.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (m *MongoContentRepository) findOne(ctx context.Context, filter bson.D) (*domain.CatalogItem, error) {
	var item domain.CatalogItem

	err := m.catalog().FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, fmt.Errorf("find catalog item: %w", err)
	}

	return &item, nil
}

func (m *MongoContentRepository) GetRecent(ctx context.Context, limit int) ([]*domain.CatalogItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "inserted_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := m.db.Collection(RecentCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent items: %w", err)
	}

	items := []*domain.CatalogItem{}

	err = cursor.All(ctx, &items)
	if err != nil {
		return nil, fmt.Errorf("decode recent items: %w", err)
	}

	return items, nil
}

// GetDistinctValues returns the sorted non-blank values of a facet.
func (m *MongoContentRepository) GetDistinctValues(ctx context.Context, facet domain.Facet) ([]string, error) {
	field, err := facet.Field()
	if err != nil {
		return nil, err
	}

	values, err := m.distinct(ctx, field)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			result = append(result, v)
		}
	}

	slices.Sort(result)

	return slices.Compact(result), nil
}

// distinct returns the string values of field, skipping nulls and other types.
func (m *MongoContentRepository) distinct(ctx context.Context, field string) ([]string, error) {
	var raw []any

	err := m.catalog().Distinct(ctx, field, bson.D{}).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}

	return values, nil
}

func (m *MongoContentRepository) GetYearRange(ctx context.Context) (*domain.YearRange, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "year", Value: bson.D{{Key: "$exists", Value: true}, {Key: "$ne", Value: nil}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "min", Value: bson.D{{Key: "$min", Value: "$year"}}},
			{Key: "max", Value: bson.D{{Key: "$max", Value: "$year"}}},
		}}},
	}

	cursor, err := m.catalog().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate year range: %w", err)
	}

	var result []struct {
		Min int `bson:"min"`
		Max int `bson:"max"`
	}

	err = cursor.All(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("decode year range: %w", err)
	}

	if len(result) == 0 {
		return &domain.YearRange{Min: fallbackMinYear, Max: m.now().Year()}, nil
	}

	return &domain.YearRange{Min: result[0].Min, Max: result[0].Max}, nil
}

// GetStats runs four independent reads; the counts are not taken from a
// single snapshot.
func (m *MongoContentRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	var (
		g         errgroup.Group
		stats     domain.Stats
		genres    []string
		languages []string
	)

	g.Go(func() error {
		count, err := m.catalog().CountDocuments(ctx, bson.D{{Key: "content_type", Value: domain.ContentTypeMovie}})
		if err != nil {
			return fmt.Errorf("count movies: %w", err)
		}

		stats.Movies = count
		return nil
	})

	g.Go(func() error {
		filter := bson.D{{Key: "content_type", Value: bson.D{{Key: "$in", Value: domain.ShowContentTypes}}}}

		count, err := m.catalog().CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("count shows: %w", err)
		}

		stats.Shows = count
		return nil
	})

	g.Go(func() error {
		var err error
		genres, err = m.distinct(ctx, "genres.name")
		return err
	})

	g.Go(func() error {
		var err error
		languages, err = m.distinct(ctx, "languages")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Total = stats.Movies + stats.Shows
	stats.Genres = countNonEmpty(genres)
	stats.Languages = countNonEmpty(languages)

	return &stats, nil
}

func countNonEmpty(values []string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}

	return n
}
