package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"plantviewer/internal/events"
	"plantviewer/internal/models"
	"plantviewer/internal/repositories"
)

type SettingsService interface {
	Startup(ctx context.Context)
	Path() string
	EnsureDefault() (bool, error)
	Read() events.ReadResult
	ReadAsync(arg string) <-chan events.ReadResult
	UpdateIModel(name string) (*models.SettingsRecord, error)
	UpdateProject(name string) (*models.SettingsRecord, error)
	UpdateDrawingName(name string) (*models.SettingsRecord, error)
	MigrateLegacyDrawing() (bool, error)
}

type settingsService struct {
	repo    repositories.SettingsRepository
	emitter events.Emitter
	history SelectionHistoryService
	log     logger.Logger

	mu  sync.RWMutex
	ctx context.Context
}

// NewSettingsService wires the settings store. history may be nil.
func NewSettingsService(repo repositories.SettingsRepository, emitter events.Emitter, history SelectionHistoryService, log logger.Logger) SettingsService {
	if emitter == nil {
		emitter = events.Discard
	}
	return &settingsService{
		repo:    repo,
		emitter: emitter,
		history: history,
		log:     log,
	}
}

func (s *settingsService) Startup(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
}

func (s *settingsService) currentContext() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ctx == nil {
		return context.Background()
	}
	return s.ctx
}

func (s *settingsService) Path() string {
	return s.repo.Path()
}

func (s *settingsService) EnsureDefault() (bool, error) {
	created, err := s.repo.EnsureDefault(s.currentContext())
	if err != nil {
		return false, fmt.Errorf("service: ensure default settings: %w", err)
	}
	if created {
		s.log.Info("wrote default settings to " + s.repo.Path())
	}
	return created, nil
}

// Read loads the settings file and classifies the outcome. Failures are
// logged and reported in the result, never returned as an error.
func (s *settingsService) Read() events.ReadResult {
	record, err := s.repo.Load(s.currentContext())
	if err == nil {
		return events.NewReadSuccess(record)
	}

	status := events.ReadIOError
	switch {
	case errors.Is(err, repositories.ErrSettingsNotFound):
		status = events.ReadAbsent
	case errors.Is(err, repositories.ErrSettingsMalformed):
		status = events.ReadParseError
	}
	s.log.Error(fmt.Sprintf("read settings (%s): %v", status, err))
	return events.NewReadFailure(status, err)
}

// ReadAsync reads in the background and delivers the record on the channel
// selected by arg. A failed read sends nothing on either result channel; the
// failure goes to readConfigFailed instead. The returned channel yields the
// result once delivery has happened.
func (s *settingsService) ReadAsync(arg string) <-chan events.ReadResult {
	done := make(chan events.ReadResult, 1)
	go func() {
		defer close(done)
		res := s.Read()
		if res.OK() {
			s.emit(events.ReadChannel(arg), res.Record)
		} else {
			s.emit(events.ReadConfigFailed, res)
		}
		done <- res
	}()
	return done
}

func (s *settingsService) UpdateIModel(name string) (*models.SettingsRecord, error) {
	return s.update(models.FieldIModelName, name)
}

func (s *settingsService) UpdateProject(name string) (*models.SettingsRecord, error) {
	return s.update(models.FieldProjectName, name)
}

func (s *settingsService) UpdateDrawingName(name string) (*models.SettingsRecord, error) {
	return s.update(models.FieldDrawingName, name)
}

func (s *settingsService) update(field models.SettingsField, value string) (*models.SettingsRecord, error) {
	before, after, err := s.repo.Update(s.currentContext(), field, value)
	if err != nil {
		s.log.Error(fmt.Sprintf("update %s: %v", field, err))
		return nil, fmt.Errorf("service: update %s: %w", field, err)
	}

	if previous := before.Get(field); s.history != nil && previous != value {
		if _, err := s.history.Record(field, previous, value); err != nil {
			s.log.Warning(fmt.Sprintf("record %s change: %v", field, err))
		}
	}

	s.emit(events.SettingsUpdated, after)
	return after, nil
}

// MigrateLegacyDrawing folds a drawing_name left in config.json by the old
// drawing updater into settings.json and retires the legacy file.
func (s *settingsService) MigrateLegacyDrawing() (bool, error) {
	ctx := s.currentContext()
	name, found, err := s.repo.LegacyDrawing(ctx)
	if err != nil {
		return false, fmt.Errorf("service: read legacy drawing: %w", err)
	}
	if !found {
		return false, nil
	}

	if name != "" {
		if _, err := s.UpdateDrawingName(name); err != nil {
			return false, err
		}
	}
	if err := s.repo.RetireLegacyDrawing(ctx); err != nil {
		return false, fmt.Errorf("service: retire legacy drawing: %w", err)
	}
	s.log.Info(fmt.Sprintf("migrated legacy drawing %q into %s", name, s.repo.Path()))
	return true, nil
}

func (s *settingsService) emit(name string, data ...interface{}) {
	if err := s.emitter.Emit(name, data...); err != nil {
		s.log.Warning(fmt.Sprintf("emit %s: %v", name, err))
	}
}
