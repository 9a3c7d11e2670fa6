package mocks

import (
	"context"

	"github.com/metinatakli/content-catalog/internal/domain"
)

type MockContentRepo struct {
	domain.ContentRepository
	GetAllFunc    func(ctx context.Context, filters domain.ContentFilter, sort domain.SortSpec, pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error)
	GetByIdFunc   func(ctx context.Context, id string) (*domain.CatalogItem, error)
	SearchFunc    func(ctx context.Context, term string, filters domain.ContentFilter, pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error)
	GetRecentFunc func(ctx context.Context, limit int) ([]*domain.CatalogItem, error)
}

func (m *MockContentRepo) GetAll(
	ctx context.Context,
	filters domain.ContentFilter,
	sort domain.SortSpec,
	pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error) {

	return m.GetAllFunc(ctx, filters, sort, pagination)
}

func (m *MockContentRepo) GetById(ctx context.Context, id string) (*domain.CatalogItem, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockContentRepo) Search(
	ctx context.Context,
	term string,
	filters domain.ContentFilter,
	pagination domain.Pagination) ([]*domain.CatalogItem, *domain.Metadata, error) {

	return m.SearchFunc(ctx, term, filters, pagination)
}

func (m *MockContentRepo) GetRecent(ctx context.Context, limit int) ([]*domain.CatalogItem, error) {
	return m.GetRecentFunc(ctx, limit)
}
