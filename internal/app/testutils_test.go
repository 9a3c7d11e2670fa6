package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/mocks"
	"github.com/metinatakli/content-catalog/internal/validator"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type mockStore struct {
	err error
}

func (m *mockStore) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return m.err
}

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			CORS: CORSConfig{AllowedOrigins: defaultCORSOrigins},
		},
		validator:   validator.NewValidator(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:       &mockStore{},
		contentRepo: &mocks.MockContentRepo{},
		facetRepo:   &mocks.MockFacetRepo{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func withContentRepo(repo *mocks.MockContentRepo) func(*Application) {
	return func(app *Application) {
		app.contentRepo = repo
	}
}

func withFacetRepo(repo *mocks.MockFacetRepo) func(*Application) {
	return func(app *Application) {
		app.facetRepo = repo
	}
}

// executeRequest routes a GET request through the full router.
func executeRequest(t *testing.T, app *Application, url string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()

	app.Routes().ServeHTTP(w, r)

	return w
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Errorf("Status = %d, want %d", w.Code, wantStatus)
	}

	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if wantErrMessage != "" && errorResp.Error != wantErrMessage {
		t.Errorf("Error message = %v, want %v", errorResp.Error, wantErrMessage)
	}
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return v
}

func ptr[T any](v T) *T {
	return &v
}
