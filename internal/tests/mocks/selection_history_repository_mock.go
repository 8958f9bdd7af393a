package mocks

import (
	"context"

	"plantviewer/internal/models"
)

type SelectionHistoryRepositoryMock struct {
	CreateFunc     func(ctx context.Context, change *models.SelectionChange) error
	ListRecentFunc func(ctx context.Context, limit int) ([]models.SelectionChange, error)
	DeleteAllFunc  func(ctx context.Context) error
}

func (m *SelectionHistoryRepositoryMock) Create(ctx context.Context, change *models.SelectionChange) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, change)
	}
	return nil
}

func (m *SelectionHistoryRepositoryMock) ListRecent(ctx context.Context, limit int) ([]models.SelectionChange, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return []models.SelectionChange{}, nil
}

func (m *SelectionHistoryRepositoryMock) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}
