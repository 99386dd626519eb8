package registry

import (
	"sort"
	"sync"

	"github.com/score-to-terraform/score2tf/internal/config"
	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/result"
)

// WorkloadHandler is the interface each workload kind handler must implement.
type WorkloadHandler interface {
	Kind() string
	// Extract adds the defaulted workload to cfg.
	Extract(w *descriptor.Workload, cfg *config.Config) []result.Warning
}

// Default is the global handler registry.
var Default = New()

// Registry holds workload kind handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]WorkloadHandler
}

// New returns a new empty registry.
func New() *Registry {
	return &Registry{handlers: make(map[string]WorkloadHandler)}
}

// Register adds a handler for the given workload kind.
func (r *Registry) Register(kind string, h WorkloadHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[kind] = h
}

// Get returns the handler for the workload kind, or nil and false.
func (r *Registry) Get(kind string) (WorkloadHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[kind]
	return h, ok
}

// ListSupportedKinds returns all registered workload kinds, sorted.
func (r *Registry) ListSupportedKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
