package app

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/content-catalog/api"
	appvalidator "github.com/metinatakli/content-catalog/internal/validator"
)

type searchInput struct {
	Query string `validate:"required,min=2"`
}

func (app *Application) SearchContent(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	input := searchInput{Query: qs.Get("q")}

	err := app.validator.Struct(input)
	if err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				app.logger.Debug("rejected search query", "field", fe.Field(), "issue", appvalidator.ValidationMessage(fe))
			}
		}

		app.badRequestResponse(w, r, ErrSearchQueryTooShort)
		return
	}

	items, metadata, err := app.contentRepo.Search(
		r.Context(),
		input.Query,
		contentFilterFromQuery(qs),
		paginationFromQuery(qs),
	)
	if err != nil {
		app.handleStoreError(w, r, err)
		return
	}

	resp := api.SearchResponse{
		Query:      input.Query,
		Items:      nonNilItems(items),
		Pagination: newPaginationResponse(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
