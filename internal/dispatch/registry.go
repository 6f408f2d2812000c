// Package dispatch maps named channels to their outbound dispatcher.
package dispatch

import (
	"context"
	"sync"
)

// Channel names known to the bridge.
const (
	ChannelWebhook = "webhook"
	ChannelSlack   = "slack"
)

// Dispatcher delivers one formatted notification. Implementations report
// whether their channel has an endpoint and credential before sending.
type Dispatcher interface {
	Configured() bool
	Send(ctx context.Context, title, message string, priority int) (string, error)
}

// Registry holds the dispatchers registered per channel. Channels are
// registered once at startup; lookups happen per request.
type Registry struct {
	mu       sync.RWMutex
	channels map[string]Dispatcher
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{channels: make(map[string]Dispatcher)}
}

// Register adds a dispatcher for a channel name.
func (r *Registry) Register(name string, d Dispatcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channels[name] = d
}

// Get returns the dispatcher for a channel. ok is false if none is
// registered.
func (r *Registry) Get(name string) (Dispatcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.channels[name]
	return d, ok
}

// Names returns all registered channel names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	return names
}
