package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/middleware"
)

func TestRoutesFallbacks(t *testing.T) {
	app := newTestApplication()

	t.Run("unknown route", func(t *testing.T) {
		w := executeRequest(t, app, "/api/unknown")
		checkErrorResponse(t, w, http.StatusNotFound, middleware.MsgResourceNotFound)
	})

	t.Run("method not allowed", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/content", nil)
		w := httptest.NewRecorder()

		app.Routes().ServeHTTP(w, r)

		checkErrorResponse(t, w, http.StatusMethodNotAllowed, middleware.MsgMethodNotAllowed)
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name      string
		origin    string
		wantAllow string
	}{
		{name: "listed origin", origin: "http://localhost:3000", wantAllow: "http://localhost:3000"},
		{name: "wildcard subdomain", origin: "https://someone.github.io", wantAllow: "https://someone.github.io"},
		{name: "unlisted origin", origin: "https://evil.example.com", wantAllow: ""},
	}

	app := newTestApplication()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodOptions, "/api/genres", nil)
			r.Header.Set("Origin", tt.origin)
			r.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()

			app.Routes().ServeHTTP(w, r)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}

func TestGetOpenAPISpec(t *testing.T) {
	spec, err := api.LoadSpec(context.Background())
	if err != nil {
		t.Fatalf("LoadSpec() error = %v", err)
	}

	app := newTestApplication(func(app *Application) {
		app.spec = spec
	})

	w := executeRequest(t, app, "/openapi.json")

	checkErrorResponse(t, w, http.StatusOK, "")

	if !strings.Contains(w.Body.String(), `"/api/content/{id}"`) {
		t.Error("served document does not describe /api/content/{id}")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApplication()

	executeRequest(t, app, "/")
	w := executeRequest(t, app, "/metrics")

	checkErrorResponse(t, w, http.StatusOK, "")

	if !strings.Contains(w.Body.String(), "api_requests_total") {
		t.Error("metrics output does not contain api_requests_total")
	}
}
