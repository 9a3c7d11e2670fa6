package app

import (
	"net/http"

	"github.com/metinatakli/content-catalog/internal/middleware"
)

// GetOpenAPISpec serves the embedded API contract.
func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	if app.spec == nil {
		middleware.NotFound(w, r)
		return
	}

	err := app.writeJSON(w, http.StatusOK, app.spec, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
