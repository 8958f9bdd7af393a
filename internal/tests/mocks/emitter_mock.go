package mocks

import "sync"

// EmittedEvent is one call recorded by EmitterMock.
type EmittedEvent struct {
	Name string
	Data []interface{}
}

// EmitterMock records events and optionally fails with Err.
type EmitterMock struct {
	mu     sync.Mutex
	events []EmittedEvent
	Err    error
}

func (m *EmitterMock) Emit(name string, data ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, EmittedEvent{Name: name, Data: data})
	return m.Err
}

func (m *EmitterMock) Events() []EmittedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]EmittedEvent(nil), m.events...)
}

// Named returns the recorded events called name.
func (m *EmitterMock) Named(name string) []EmittedEvent {
	var out []EmittedEvent
	for _, ev := range m.Events() {
		if ev.Name == name {
			out = append(out, ev)
		}
	}
	return out
}
