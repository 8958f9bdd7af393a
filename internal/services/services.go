package services

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"

	"plantviewer/internal/repositories"
)

// Services aggregates the backend services bound to the renderer.
type Services struct {
	Emitter  *EventEmitterService
	Settings SettingsService
	History  SelectionHistoryService
	Relay    *RelayService
	Watcher  *SettingsWatcher
}

// NewServices builds the container. db may be nil, in which case selection
// history is disabled.
func NewServices(settingsPath string, db *gorm.DB, log logger.Logger) *Services {
	emitter := NewEventEmitterService(log)

	var history SelectionHistoryService
	if db != nil {
		history = NewSelectionHistoryService(repositories.NewSelectionHistoryRepository(db))
	}

	settings := NewSettingsService(repositories.NewSettingsRepository(settingsPath), emitter, history, log)

	return &Services{
		Emitter:  emitter,
		Settings: settings,
		History:  history,
		Relay:    NewRelayService(),
		Watcher:  NewSettingsWatcher(settings, emitter, log),
	}
}

func (s *Services) Startup(ctx context.Context) {
	s.Emitter.Startup(ctx)
	s.Settings.Startup(ctx)
	if s.History != nil {
		s.History.Startup(ctx)
	}
}
