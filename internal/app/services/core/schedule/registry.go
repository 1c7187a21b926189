package schedule

import (
	"clinicbook-service/internal/app/contracts"
	"sync"
	"time"
)

// Factory builds the view-model for a session.
type Factory func(sessionID string) *ViewModel

type registryEntry struct {
	viewModel *ViewModel
	lastUsed  time.Time
}

// Registry keeps one view-model per BFF session so that a session's writes
// are serialized the way a single screen serializes them.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	factory Factory
	maxIdle time.Duration
	now     func() time.Time
}

func NewRegistry(factory Factory, maxIdle time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		factory: factory,
		maxIdle: maxIdle,
		now:     time.Now,
	}
}

func (r *Registry) ForSession(sessionID string) contracts.ScheduleViewModel {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	entry, ok := r.entries[sessionID]
	if !ok {
		entry = &registryEntry{viewModel: r.factory(sessionID)}
		r.entries[sessionID] = entry
	}
	entry.lastUsed = now
	return entry.viewModel
}

func (r *Registry) Evict(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// sweep must be called with r.mu held.
func (r *Registry) sweep(now time.Time) {
	if r.maxIdle <= 0 {
		return
	}
	for sessionID, entry := range r.entries {
		if now.Sub(entry.lastUsed) > r.maxIdle {
			delete(r.entries, sessionID)
		}
	}
}
