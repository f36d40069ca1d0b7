package dispatchers

import "context"

// Handler executes a command with its bound arguments.
type Handler interface {
	Handle(ctx context.Context, args *Arguments) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, args *Arguments) error

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, args *Arguments) error {
	return f(ctx, args)
}

// Scope is the per-invocation resolution context. It is opened before the handler is
// looked up and closed exactly once on every exit path, receiving the invocation's
// outcome (nil on success).
type Scope interface {
	Handler(id CommandID) (Handler, bool)
	Close(outcome error) error
}

// HandlerResolver opens a Scope for each invocation.
type HandlerResolver interface {
	BeginScope(ctx context.Context) (Scope, error)
}

// HandlerMap is a HandlerResolver over a fixed capability map with no per-invocation
// resources.
type HandlerMap map[CommandID]Handler

// BeginScope implements HandlerResolver.
func (m HandlerMap) BeginScope(context.Context) (Scope, error) {
	return mapScope(m), nil
}

type mapScope map[CommandID]Handler

func (s mapScope) Handler(id CommandID) (Handler, bool) {
	h, ok := s[id]
	return h, ok
}

func (mapScope) Close(error) error { return nil }
