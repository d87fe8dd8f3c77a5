package command

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sandevgo/csvterm/internal/core"
)

// Registry maps command prefixes to handlers. Registering an existing name
// replaces the previous handler.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]core.Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]core.Handler),
	}
}

// Register stores h under name. Empty names and nil handlers are ignored:
// an empty prefix is what blank input dispatches to.
func (r *Registry) Register(name string, h core.Handler) {
	if name == "" || h == nil {
		log.Warn().Str("name", name).Bool("nil_handler", h == nil).Msg("command registration ignored")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

func (r *Registry) Lookup(name string) (core.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered prefixes in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
