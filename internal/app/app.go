package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/domain"
	"github.com/metinatakli/content-catalog/internal/metrics"
	"github.com/metinatakli/content-catalog/internal/middleware"
	"github.com/metinatakli/content-catalog/internal/repository"
	appvalidator "github.com/metinatakli/content-catalog/internal/validator"
	"github.com/metinatakli/content-catalog/internal/vcs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const serviceName = "content-catalog-api"

var (
	version = vcs.Version()
)

// StorePinger reports document store connectivity.
type StorePinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate
	store     StorePinger
	spec      *openapi3.T

	contentRepo domain.ContentRepository
	facetRepo   domain.FacetRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	store StorePinger,
	spec *openapi3.T,
	contentRepo domain.ContentRepository,
	facetRepo domain.FacetRepository) *Application {

	return &Application{
		config:      cfg,
		logger:      logger,
		validator:   validator,
		store:       store,
		spec:        spec,
		contentRepo: contentRepo,
		facetRepo:   facetRepo,
	}
}

func Run() error {
	cfg, displayVersion, err := parseConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, logger, err := initTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	mongoClient, err := NewMongoClient(cfg)
	if err != nil {
		logger.Error("cannot connect to MongoDB", "error", err)
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("failed to close MongoDB connection", "error", err)
		}
	}()

	spec, err := api.LoadSpec(context.Background())
	if err != nil {
		return err
	}

	contentRepo := repository.NewMongoContentRepository(mongoClient.Database(cfg.Mongo.Database))

	var facetRepo domain.FacetRepository = contentRepo

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			logger.Error("cannot connect to Redis", "error", err)
			return err
		}
		defer redisClient.Close()

		facetRepo = repository.NewCachedFacetRepository(contentRepo, redisClient, cfg.Redis.CacheTTL, logger)
	}

	app := NewApp(cfg, logger, appvalidator.NewValidator(), mongoClient, spec, contentRepo, facetRepo)

	return app.run()
}

// NewMongoClient opens the pooled store client shared by all requests and
// verifies connectivity.
func NewMongoClient(cfg Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(cfg.Mongo.MaxPoolSize).
		SetMonitor(metrics.NewCommandMonitor())

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	err = redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(middleware.NotFound)
	r.MethodNotAllowed(middleware.MethodNotAllowed)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.RecoverPanic(app.logger))
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.Compress(5))

	if app.config.RateLimit > 0 {
		r.Use(httprate.LimitByIP(app.config.RateLimit, time.Minute))
	}

	r.Get("/", app.GetServiceInfo)
	r.Get("/health", app.GetHealth)
	r.Get("/openapi.json", app.GetOpenAPISpec)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/content", app.ListContent)
		r.Get("/content/{id}", app.GetContent)
		r.Get("/search", app.SearchContent)
		r.Get("/genres", app.facetValuesHandler(domain.FacetGenres))
		r.Get("/languages", app.facetValuesHandler(domain.FacetLanguages))
		r.Get("/countries", app.facetValuesHandler(domain.FacetCountries))
		r.Get("/years", app.GetYearRange)
		r.Get("/recent", app.GetRecent)
		r.Get("/stats", app.GetStats)
	})

	return r
}
