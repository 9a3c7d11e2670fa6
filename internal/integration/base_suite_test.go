package integration_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/content-catalog/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
)

const (
	dbName         = "content_db"
	dbImageName    = "mongo:7"
	cacheImageName = "redis:7"
)

type BaseSuite struct {
	suite.Suite
	app            *TestApp
	dbContainer    *MongoContainer
	cacheContainer *RedisContainer
}

func (s *BaseSuite) SetupSuite() {
	ctx := context.Background()

	mongoContainer, err := getDbContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	redisContainer, err := getCacheContainer(ctx)
	if err != nil {
		s.T().Fatalf("failed to start container: %s", err)
	}

	s.dbContainer = mongoContainer
	s.cacheContainer = redisContainer

	cfg := app.Config{
		Port: 8080,
		Env:  "test",
		Mongo: app.MongoConfig{
			URI:            mongoContainer.ConnectionString,
			Database:       dbName,
			MaxPoolSize:    10,
			ConnectTimeout: 10 * time.Second,
		},
		Redis: app.RedisConfig{
			URL:          redisContainer.ConnectionString,
			MaxOpenConns: 10,
			MaxIdleConns: 10,
			MaxIdleTime:  2 * time.Minute,
			CacheTTL:     time.Minute,
		},
		CORS: app.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	testApp, err := newTestApp(cfg)
	if err != nil {
		s.T().Fatalf("cannot initialize app: %s", err)
	}

	s.app = testApp
}

func (s *BaseSuite) TearDownSuite() {
	if s.app != nil {
		s.app.Redis.Close()
		s.app.Client.Disconnect(context.Background())
	}
	if s.dbContainer != nil {
		if err := testcontainers.TerminateContainer(s.dbContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if s.cacheContainer != nil {
		if err := testcontainers.TerminateContainer(s.cacheContainer.Container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func (s *BaseSuite) SetupTest() {
	resetCatalog(s.T(), s.app)
}

type Scenario struct {
	Name             string
	Method           string
	URL              string
	Body             io.Reader
	Headers          map[string]string
	ExpectedStatus   int
	ExpectedResponse string
	BeforeTestFunc   func(t testing.TB, app *TestApp)
	AfterTestFunc    func(t testing.TB, app *TestApp, res *http.Response)
}

func (s Scenario) Run(t *testing.T, testApp *TestApp) {
	t.Run(s.Name, func(t *testing.T) {
		method := s.Method
		if method == "" {
			method = http.MethodGet
		}

		req, err := prepareRequest(method, s.URL, s.Body, s.Headers)
		require.NoError(t, err)

		if s.BeforeTestFunc != nil {
			s.BeforeTestFunc(t, testApp)
		}

		rec := httptest.NewRecorder()
		testApp.App.Routes().ServeHTTP(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		assert.Equal(t, s.ExpectedStatus, res.StatusCode)

		if s.ExpectedResponse != "" {
			compareResponse(t, res.Body, s.ExpectedResponse)
		}

		if s.AfterTestFunc != nil {
			s.AfterTestFunc(t, testApp, res)
		}
	})
}
