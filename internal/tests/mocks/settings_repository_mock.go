package mocks

import (
	"context"

	"plantviewer/internal/models"
)

type SettingsRepositoryMock struct {
	PathValue               string
	LoadFunc                func(ctx context.Context) (*models.SettingsRecord, error)
	SaveFunc                func(ctx context.Context, record *models.SettingsRecord) error
	UpdateFunc              func(ctx context.Context, field models.SettingsField, value string) (*models.SettingsRecord, *models.SettingsRecord, error)
	EnsureDefaultFunc       func(ctx context.Context) (bool, error)
	LegacyDrawingFunc       func(ctx context.Context) (string, bool, error)
	RetireLegacyDrawingFunc func(ctx context.Context) error
}

func (m *SettingsRepositoryMock) Path() string {
	if m.PathValue != "" {
		return m.PathValue
	}
	return "settings.json"
}

func (m *SettingsRepositoryMock) Load(ctx context.Context) (*models.SettingsRecord, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return &models.SettingsRecord{}, nil
}

func (m *SettingsRepositoryMock) Save(ctx context.Context, record *models.SettingsRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	return nil
}

func (m *SettingsRepositoryMock) Update(ctx context.Context, field models.SettingsField, value string) (*models.SettingsRecord, *models.SettingsRecord, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, field, value)
	}
	before := models.SettingsRecord{}
	after, err := before.With(field, value)
	if err != nil {
		return nil, nil, err
	}
	return &before, &after, nil
}

func (m *SettingsRepositoryMock) EnsureDefault(ctx context.Context) (bool, error) {
	if m.EnsureDefaultFunc != nil {
		return m.EnsureDefaultFunc(ctx)
	}
	return false, nil
}

func (m *SettingsRepositoryMock) LegacyDrawing(ctx context.Context) (string, bool, error) {
	if m.LegacyDrawingFunc != nil {
		return m.LegacyDrawingFunc(ctx)
	}
	return "", false, nil
}

func (m *SettingsRepositoryMock) RetireLegacyDrawing(ctx context.Context) error {
	if m.RetireLegacyDrawingFunc != nil {
		return m.RetireLegacyDrawingFunc(ctx)
	}
	return nil
}
