package mocks

import (
	"context"

	"github.com/metinatakli/content-catalog/internal/domain"
)

type MockFacetRepo struct {
	domain.FacetRepository
	GetDistinctValuesFunc func(ctx context.Context, facet domain.Facet) ([]string, error)
	GetYearRangeFunc      func(ctx context.Context) (*domain.YearRange, error)
	GetStatsFunc          func(ctx context.Context) (*domain.Stats, error)
}

func (m *MockFacetRepo) GetDistinctValues(ctx context.Context, facet domain.Facet) ([]string, error) {
	return m.GetDistinctValuesFunc(ctx, facet)
}

func (m *MockFacetRepo) GetYearRange(ctx context.Context) (*domain.YearRange, error) {
	return m.GetYearRangeFunc(ctx)
}

func (m *MockFacetRepo) GetStats(ctx context.Context) (*domain.Stats, error) {
	return m.GetStatsFunc(ctx)
}
