package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/jsonutil"
	"github.com/metinatakli/content-catalog/internal/metrics"
)

const (
	MsgInternalServer   = "Internal server error"
	MsgResourceNotFound = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

func RecoverPanic(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error(fmt.Sprintf("%v", err),
						"method", r.Method,
						"uri", r.URL.RequestURI(),
						"request_id", chimiddleware.GetReqID(r.Context()))

					resp := api.ErrorResponse{Error: MsgInternalServer}

					jsonutil.WriteJSON(w, http.StatusInternalServerError, resp, http.Header{
						"Connection": []string{"close"},
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	resp := api.ErrorResponse{Error: MsgResourceNotFound}

	jsonutil.WriteJSON(w, http.StatusNotFound, resp, nil)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	resp := api.ErrorResponse{Error: MsgMethodNotAllowed}

	jsonutil.WriteJSON(w, http.StatusMethodNotAllowed, resp, http.Header{
		"Allow": []string{"GET, OPTIONS"},
	})
}

// Metrics records request count and latency labelled by the matched route
// pattern, so path parameters do not explode label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.RecordAPIRequest(r.Method, route, status, time.Since(start))
	})
}
