package services

import (
	"context"
	"errors"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var ErrEmitterNotStarted = errors.New("event emitter is not started")

// EventEmitterService sends events to the renderer through the Wails runtime.
// Events emitted before Startup or after Shutdown are dropped with an error.
type EventEmitterService struct {
	mu      sync.RWMutex
	context context.Context
	log     logger.Logger
}

func NewEventEmitterService(log logger.Logger) *EventEmitterService {
	return &EventEmitterService{log: log}
}

func (e *EventEmitterService) Startup(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.context = ctx
}

func (e *EventEmitterService) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.context = nil
}

func (e *EventEmitterService) Emit(name string, data ...interface{}) error {
	if e == nil {
		return ErrEmitterNotStarted
	}
	e.mu.RLock()
	ctx := e.context
	e.mu.RUnlock()
	if ctx == nil {
		return ErrEmitterNotStarted
	}

	if e.log != nil {
		e.log.Debug("emit " + name)
	}
	runtime.EventsEmit(ctx, name, data...)
	return nil
}
