package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/metinatakli/content-catalog/internal/repository"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const TestObjectIDHex = "65a1b2c3d4e5f60718293a4b"

func genres(names ...string) bson.A {
	a := bson.A{}
	for i, name := range names {
		a = append(a, bson.M{"id": i + 1, "name": name})
	}

	return a
}

func catalogFixtures(t testing.TB) []any {
	oid, err := bson.ObjectIDFromHex(TestObjectIDHex)
	require.NoError(t, err)

	return []any{
		bson.M{
			"imdb_id": "tt0000001", "title": "The Laughing Man", "year": 2018, "release_date": "2018-05-01",
			"imdb_rating": 7.9, "tmdb_vote_average": 7.0, "tmdb_popularity": 10.0,
			"genres": genres("Comedy"), "languages": bson.A{"English"}, "countries": bson.A{"USA"},
			"cast": bson.A{bson.M{"name": "Sam Carter"}}, "directors": bson.A{"Eve Stone"},
			"content_type": "movie",
		},
		bson.M{
			"imdb_id": "tt0000002", "title": "Comedy Nights", "year": 2016, "release_date": "2016-02-01",
			"imdb_rating": 6.5, "tmdb_popularity": 30.0,
			"genres": genres("Comedy", "Drama"), "languages": bson.A{"Hindi"}, "countries": bson.A{"India"},
			"content_type": "movie", "type": "movie", "vote_count": 1234, "duration": 130,
			"crew": bson.A{"Ravi Rao", bson.M{"name": "Mira Sen", "job": "Editor"}},
		},
		bson.M{
			"_id": oid, "title": "Serious Drama", "year": 2010, "release_date": "2010-10-10",
			"tmdb_vote_average": 8.1, "tmdb_popularity": 5.0,
			"genres": genres("Drama", ""), "languages": bson.A{"English"}, "countries": bson.A{"UK"},
			"content_type": "movie",
		},
		bson.M{
			"imdb_id": "tt0000004", "title": "Space Show", "year": 2021, "release_date": "2021-03-01",
			"imdb_rating": 8.8, "tmdb_popularity": 50.0,
			"genres": genres("Sci-Fi"), "languages": bson.A{"English"}, "countries": bson.A{"USA"},
			"content_type": "tv",
		},
		bson.M{
			"imdb_id": "tt0000005", "title": "Series of Jokes", "year": 2019, "release_date": "2019-09-10",
			"imdb_rating": 5.5, "tmdb_popularity": 20.0,
			"genres": genres("Comedy"), "languages": bson.A{"Spanish"}, "countries": bson.A{"Spain"},
			"directors": bson.A{"Ana Lopez"},
			"content_type": "series",
		},
		bson.M{
			"imdb_id": "tt0000006", "title": "Old Classic", "year": 2000, "release_date": "2000-01-01",
			"imdb_rating": 6.0, "tmdb_popularity": 1.0,
			"genres": genres("Rom-Com (Classic)"), "languages": bson.A{"English"}, "countries": bson.A{"USA"},
			"content_type": "movie",
		},
	}
}

func recentFixtures() []any {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	return []any{
		bson.M{"imdb_id": "tt1000001", "title": "Oldest Arrival", "inserted_at": base},
		bson.M{"imdb_id": "tt1000002", "title": "Newest Arrival", "type": "show", "vote_count": 87, "inserted_at": base.Add(2 * time.Hour)},
		bson.M{"imdb_id": "tt1000003", "title": "Middle Arrival", "inserted_at": base.Add(time.Hour)},
	}
}

func clearCatalog(t testing.TB, app *TestApp) {
	ctx := context.Background()

	require.NoError(t, app.DB.Collection(repository.CatalogCollection).Drop(ctx))
	require.NoError(t, app.DB.Collection(repository.RecentCollection).Drop(ctx))
	require.NoError(t, app.Redis.FlushDB(ctx).Err())
}

// resetCatalog replaces both collections with the fixtures and empties the cache.
func resetCatalog(t testing.TB, app *TestApp) {
	ctx := context.Background()

	clearCatalog(t, app)

	_, err := app.DB.Collection(repository.CatalogCollection).InsertMany(ctx, catalogFixtures(t))
	require.NoError(t, err)

	_, err = app.DB.Collection(repository.RecentCollection).InsertMany(ctx, recentFixtures())
	require.NoError(t, err)
}
