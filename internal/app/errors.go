package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/domain"
)

const (
	ErrInternalServer      = "Internal server error"
	ErrContentNotFound     = "Content not found"
	ErrSearchQueryTooShort = "Search query must be at least 2 characters"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri, "request_id", middleware.GetReqID(r.Context()))
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Error: message,
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrContentNotFound)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusBadRequest, message)
}

// handleStoreError maps repository errors onto the response taxonomy.
func (app *Application) handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrInvalidSearchQuery):
		app.badRequestResponse(w, r, ErrSearchQueryTooShort)
	default:
		app.serverErrorResponse(w, r, err)
	}
}
