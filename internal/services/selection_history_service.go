package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"plantviewer/internal/models"
	"plantviewer/internal/repositories"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

type SelectionHistoryService interface {
	Startup(ctx context.Context)
	Record(field models.SettingsField, previous, value string) (*models.SelectionChange, error)
	Recent(limit int) ([]models.SelectionChange, error)
	Clear() error
}

type selectionHistoryService struct {
	repo repositories.SelectionHistoryRepository
	ctx  context.Context
	now  func() time.Time
}

func NewSelectionHistoryService(repo repositories.SelectionHistoryRepository) SelectionHistoryService {
	return &selectionHistoryService{repo: repo, ctx: context.Background(), now: time.Now}
}

func (s *selectionHistoryService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *selectionHistoryService) Record(field models.SettingsField, previous, value string) (*models.SelectionChange, error) {
	if !field.Valid() {
		return nil, fmt.Errorf("service: record selection: %w: %q", repositories.ErrUnknownField, field)
	}
	change := &models.SelectionChange{
		ID:        uuid.NewString(),
		Field:     string(field),
		Previous:  previous,
		Value:     value,
		ChangedAt: s.now().UTC(),
	}
	if err := s.repo.Create(s.ctx, change); err != nil {
		return nil, fmt.Errorf("service: record selection: %w", err)
	}
	return change, nil
}

// Recent lists the newest changes first. limit <= 0 means the default and
// larger values are capped at MaxHistoryLimit.
func (s *selectionHistoryService) Recent(limit int) ([]models.SelectionChange, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	changes, err := s.repo.ListRecent(s.ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service: list selections: %w", err)
	}
	return changes, nil
}

func (s *selectionHistoryService) Clear() error {
	if err := s.repo.DeleteAll(s.ctx); err != nil {
		return fmt.Errorf("service: clear selections: %w", err)
	}
	return nil
}
