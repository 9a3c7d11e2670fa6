package integration_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/app"
	"github.com/metinatakli/content-catalog/internal/repository"
	appvalidator "github.com/metinatakli/content-catalog/internal/validator"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TestApp wires the same repositories twice: App reads the store directly,
// CachedApp serves aggregates through Redis.
type TestApp struct {
	App       *app.Application
	CachedApp *app.Application
	Client    *mongo.Client
	DB        *mongo.Database
	Redis     *redis.Client
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	client, err := app.NewMongoClient(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	spec, err := api.LoadSpec(context.Background())
	if err != nil {
		client.Disconnect(context.Background())
		redisClient.Close()
		return nil, err
	}

	db := client.Database(cfg.Mongo.Database)

	contentRepo := repository.NewMongoContentRepository(db)
	cachedFacetRepo := repository.NewCachedFacetRepository(contentRepo, redisClient, cfg.Redis.CacheTTL, logger)

	return &TestApp{
		App:       app.NewApp(cfg, logger, validator, client, spec, contentRepo, contentRepo),
		CachedApp: app.NewApp(cfg, logger, validator, client, spec, contentRepo, cachedFacetRepo),
		Client:    client,
		DB:        db,
		Redis:     redisClient,
	}, nil
}
