package app

import (
	"net/url"

	"github.com/metinatakli/content-catalog/api"
	"github.com/metinatakli/content-catalog/internal/domain"
)

func contentFilterFromQuery(qs url.Values) domain.ContentFilter {
	f := domain.ContentFilter{}.
		WithGenre(qs.Get("genre")).
		WithLanguage(qs.Get("language")).
		WithCountry(qs.Get("country")).
		WithContentType(qs.Get("type"))

	if year := readInt(qs, "year"); year != nil {
		f = f.WithYear(*year)
	}

	if from := readInt(qs, "year_from"); from != nil {
		f = f.WithYearFrom(*from)
	}

	if to := readInt(qs, "year_to"); to != nil {
		f = f.WithYearTo(*to)
	}

	if rating := readFloat(qs, "min_rating"); rating != nil {
		f = f.WithMinRating(*rating)
	}

	return f
}

func paginationFromQuery(qs url.Values) domain.Pagination {
	return domain.NewPagination(
		readIntOr(qs, "page", domain.DefaultPage),
		readIntOr(qs, "limit", domain.DefaultPageSize),
		domain.MaxPageSize,
	)
}

func sortFromQuery(qs url.Values) domain.SortSpec {
	return domain.NewSortSpec(qs.Get("sort"), qs.Get("order"))
}

func newPaginationResponse(m *domain.Metadata) api.Pagination {
	return api.Pagination{
		Page:  m.Page,
		Limit: m.Limit,
		Total: m.Total,
		Pages: m.Pages,
	}
}
