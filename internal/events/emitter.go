package events

// Emitter delivers a named event with an optional payload to the renderer.
type Emitter interface {
	Emit(name string, data ...interface{}) error
}

// EmitterFunc adapts a plain function to Emitter.
type EmitterFunc func(name string, data ...interface{}) error

func (f EmitterFunc) Emit(name string, data ...interface{}) error {
	return f(name, data...)
}

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(string, ...interface{}) error { return nil })
