package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantviewer/internal/models"
	"plantviewer/internal/services"
	"plantviewer/internal/tests/mocks"
)

func TestSelectionHistoryService_RecordFillsIDAndTime(t *testing.T) {
	var stored *models.SelectionChange
	repo := &mocks.SelectionHistoryRepositoryMock{
		CreateFunc: func(ctx context.Context, change *models.SelectionChange) error {
			stored = change
			return nil
		},
	}
	svc := services.NewSelectionHistoryService(repo)
	svc.Startup(context.Background())

	change, err := svc.Record(models.FieldDrawingName, "d1", "d2")
	require.NoError(t, err)
	assert.Same(t, stored, change)
	assert.Len(t, change.ID, 36)
	assert.False(t, change.ChangedAt.IsZero())
	assert.Equal(t, "drawing_name", change.Field)
}

func TestSelectionHistoryService_RecordRejectsUnknownField(t *testing.T) {
	svc := services.NewSelectionHistoryService(&mocks.SelectionHistoryRepositoryMock{})

	_, err := svc.Record(models.SettingsField("bogus"), "", "x")
	assert.Error(t, err)
}

func TestSelectionHistoryService_RecentClampsLimit(t *testing.T) {
	var limits []int
	repo := &mocks.SelectionHistoryRepositoryMock{
		ListRecentFunc: func(ctx context.Context, limit int) ([]models.SelectionChange, error) {
			limits = append(limits, limit)
			return nil, nil
		},
	}
	svc := services.NewSelectionHistoryService(repo)

	for _, limit := range []int{0, -3, 5, 10_000} {
		_, err := svc.Recent(limit)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{services.DefaultHistoryLimit, services.DefaultHistoryLimit, 5, services.MaxHistoryLimit}, limits)
}

func TestSelectionHistoryService_ErrorsAreWrapped(t *testing.T) {
	repo := &mocks.SelectionHistoryRepositoryMock{
		ListRecentFunc: func(ctx context.Context, limit int) ([]models.SelectionChange, error) {
			return nil, assert.AnError
		},
		DeleteAllFunc: func(ctx context.Context) error {
			return assert.AnError
		},
	}
	svc := services.NewSelectionHistoryService(repo)

	_, err := svc.Recent(1)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, svc.Clear(), assert.AnError)
}
