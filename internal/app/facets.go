package app

import (
	"net/http"

	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/domain"
)

// facetValuesHandler serves the distinct values of one facet as a JSON array.
func (app *Application) facetValuesHandler(facet domain.Facet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values, err := app.facetRepo.GetDistinctValues(r.Context(), facet)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		if values == nil {
			values = []string{}
		}

		err = app.writeJSON(w, http.StatusOK, values, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
	}
}

func (app *Application) GetYearRange(w http.ResponseWriter, r *http.Request) {
	years, err := app.facetRepo.GetYearRange(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.YearRangeResponse{
		Min: years.Min,
		Max: years.Max,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := app.facetRepo.GetStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.StatsResponse{
		Total:     stats.Total,
		Movies:    stats.Movies,
		Shows:     stats.Shows,
		Genres:    stats.Genres,
		Languages: stats.Languages,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
