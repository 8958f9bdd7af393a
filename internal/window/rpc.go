package window

import (
	"context"
	"strings"

	"plantviewer/internal/events"
)

// RPCRegistrar binds the opaque RPC interface identifiers to the active window.
type RPCRegistrar interface {
	Register(ctx context.Context, interfaces []string) error
}

// EventRPCRegistrar announces the identifiers to the renderer, which owns the
// RPC client side.
type EventRPCRegistrar struct {
	emitter events.Emitter
}

func NewEventRPCRegistrar(emitter events.Emitter) *EventRPCRegistrar {
	return &EventRPCRegistrar{emitter: emitter}
}

func (r *EventRPCRegistrar) Register(ctx context.Context, interfaces []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ids := make([]string, 0, len(interfaces))
	for _, id := range interfaces {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return r.emitter.Emit(events.RPCInterfacesRegistered, ids)
}
