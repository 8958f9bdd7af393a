package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"plantviewer/internal/models"
)

type SelectionHistoryRepository interface {
	Create(ctx context.Context, change *models.SelectionChange) error
	ListRecent(ctx context.Context, limit int) ([]models.SelectionChange, error)
	DeleteAll(ctx context.Context) error
}

type selectionHistoryRepository struct {
	db *gorm.DB
}

func NewSelectionHistoryRepository(db *gorm.DB) SelectionHistoryRepository {
	return &selectionHistoryRepository{db: db}
}

func (r *selectionHistoryRepository) Create(ctx context.Context, change *models.SelectionChange) error {
	if change == nil {
		return errors.New("selection change is required")
	}
	return r.db.WithContext(ctx).Create(change).Error
}

func (r *selectionHistoryRepository) ListRecent(ctx context.Context, limit int) ([]models.SelectionChange, error) {
	var changes []models.SelectionChange
	res := r.db.WithContext(ctx).Order("changed_at desc").Order("rowid desc").Limit(limit).Find(&changes)
	if res.Error != nil {
		return nil, res.Error
	}
	return changes, nil
}

func (r *selectionHistoryRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.SelectionChange{}).Error
}
