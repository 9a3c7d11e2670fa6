package api

import "github.com/metinatakli/content-catalog/internal/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

type ServiceInfo struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type HealthcheckResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ContentListResponse struct {
	Items      []*domain.CatalogItem `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

type SearchResponse struct {
	Query      string                `json:"query"`
	Items      []*domain.CatalogItem `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

type YearRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type StatsResponse struct {
	Total     int64 `json:"total"`
	Movies    int64 `json:"movies"`
	Shows     int64 `json:"shows"`
	Genres    int   `json:"genres"`
	Languages int   `json:"languages"`
}
