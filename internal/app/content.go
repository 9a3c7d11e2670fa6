package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/domain"
)

func (app *Application) ListContent(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	items, metadata, err := app.contentRepo.GetAll(
		r.Context(),
		contentFilterFromQuery(qs),
		sortFromQuery(qs),
		paginationFromQuery(qs),
	)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ContentListResponse{
		Items:      nonNilItems(items),
		Pagination: newPaginationResponse(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetContent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := app.contentRepo.GetById(r.Context(), id)
	if err != nil {
		app.handleStoreError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, item, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := domain.ClampRecentLimit(readIntOr(r.URL.Query(), "limit", domain.DefaultRecentLimit))

	items, err := app.contentRepo.GetRecent(r.Context(), limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, nonNilItems(items), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// nonNilItems makes empty results encode as [] rather than null.
func nonNilItems(items []*domain.CatalogItem) []*domain.CatalogItem {
	if items == nil {
		return []*domain.CatalogItem{}
	}

	return items
}
