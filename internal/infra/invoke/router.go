// Package invoke dispatches named commands received from a host process to
// registered handlers.
package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/runoshun/shellbridge/internal/domain"
)

// Handler serves one named command. args is the raw JSON argument object
// (nil when the request had none). The returned value is JSON-encoded into
// the response; a returned error becomes the response's error string.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Router maps command names to handlers. It is safe for concurrent use.
type Router struct {
	handlers map[string]Handler
	mu       sync.RWMutex
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

// Register binds a handler to a command name.
func (r *Router) Register(name string, h Handler) error {
	if name == "" {
		return errors.New("register handler: empty command name")
	}
	if h == nil {
		return fmt.Errorf("register handler %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("register handler %q: already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// Invoke runs the handler registered for name.
func (r *Router) Invoke(ctx context.Context, name string, args json.RawMessage) (any, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, name)
	}
	return h(ctx, args)
}

// Names returns the registered command names in sorted order.
func (r *Router) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DecodeArgs unmarshals a handler's argument object into v.
// Missing arguments decode as an empty object.
func DecodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArguments, err)
	}
	return nil
}
