package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantviewer/internal/database"
	"plantviewer/internal/services"
	"plantviewer/internal/tests/mocks"
)

func TestNewServices_WithoutDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	svc := services.NewServices(path, nil, &mocks.LoggerMock{})

	assert.Nil(t, svc.History)
	assert.NotNil(t, svc.Relay)
	assert.NotNil(t, svc.Watcher)
	assert.Equal(t, path, svc.Settings.Path())
}

func TestNewServices_WithDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := database.Init(database.Config{Path: filepath.Join(dir, "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	svc := services.NewServices(filepath.Join(dir, "settings.json"), db, &mocks.LoggerMock{})
	require.NotNil(t, svc.History)

	_, err = svc.Settings.UpdateDrawingName("d1")
	require.NoError(t, err)

	recent, err := svc.History.Recent(0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "d1", recent[0].Value)
}

func TestEventEmitterService_NotStarted(t *testing.T) {
	emitter := services.NewEventEmitterService(&mocks.LoggerMock{})
	assert.ErrorIs(t, emitter.Emit("x"), services.ErrEmitterNotStarted)

	var nilEmitter *services.EventEmitterService
	assert.ErrorIs(t, nilEmitter.Emit("x"), services.ErrEmitterNotStarted)
}

func TestEventEmitterService_ShutdownStopsDelivery(t *testing.T) {
	emitter := services.NewEventEmitterService(nil)
	emitter.Startup(context.Background())
	emitter.Shutdown()
	assert.ErrorIs(t, emitter.Emit("x"), services.ErrEmitterNotStarted)
}
