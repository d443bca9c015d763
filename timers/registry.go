package timers

import (
	"sync"

	"golang.org/x/exp/slog"
)

// # Registry
//
// Represents a collection of timers created and looked up by name for
// one logical execution context. Access to the underlying map is
// guarded so a registry may be shared, but the timers it hands out
// remain single-flow objects; callers needing isolation should hold
// one registry per flow.
// Its zero value has no meaning and should not be used.
type Registry struct {
	*sync.RWMutex // manages concurrent access to timers
	timers        map[string]*Timer
}

// NewRegistry returns an empty timer registry.
func NewRegistry() *Registry {
	return &Registry{
		RWMutex: &sync.RWMutex{},
		timers:  make(map[string]*Timer),
	}
}

// CreateTimer creates a new timer named name, stores it in the
// registry, and returns it. An existing timer with the same name is
// replaced.
func (r *Registry) CreateTimer(name string) *Timer {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.timers[name]; ok {
		logger.Warn("replacing existing timer",
			slog.String("timer", name))
	}

	t := NewNamedTimer(name)
	r.timers[name] = t

	return t
}

// FindTimer returns the timer named name and whether one was created.
func (r *Registry) FindTimer(name string) (*Timer, bool) {
	r.RLock()
	defer r.RUnlock()

	t, ok := r.timers[name]
	return t, ok
}

// dregistry (default registry) backs the package level CreateTimer and
// FindTimer convenience functions.
var dregistry = NewRegistry()

// CreateTimer is equivalent to calling [Registry.CreateTimer] on the
// package default registry.
func CreateTimer(name string) *Timer {
	return dregistry.CreateTimer(name)
}

// FindTimer is equivalent to calling [Registry.FindTimer] on the
// package default registry.
func FindTimer(name string) (*Timer, bool) {
	return dregistry.FindTimer(name)
}
