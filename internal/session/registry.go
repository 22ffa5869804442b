package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

// HeaderName carries the session id on requests and responses.
const HeaderName = "X-Session-Id"

// Factory builds the store for a new session.
type Factory func() *store.Store

type gauge interface {
	SetActiveSessions(n int)
}

// Options configures a Registry.
type Options struct {
	Factory Factory
	IdleTTL time.Duration
	Metrics gauge
	Logger  *logger.Logger
	Now     func() time.Time
}

type entry struct {
	store    *store.Store
	lastSeen time.Time
}

// Registry owns one store per session and expires idle sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	factory  Factory
	idleTTL  time.Duration
	metrics  gauge
	logg     *logger.Logger
	nowFn    func() time.Time
}

// NewRegistry validates options and returns an empty registry.
func NewRegistry(opts Options) (*Registry, error) {
	if opts.Factory == nil {
		return nil, fmt.Errorf("session factory required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Registry{
		sessions: make(map[string]*entry),
		factory:  opts.Factory,
		idleTTL:  opts.IdleTTL,
		metrics:  opts.Metrics,
		logg:     opts.Logger,
		nowFn:    nowFn,
	}, nil
}

// Open returns the store for id, creating the session when id is unknown. Ids that are not
// UUIDs are replaced with a fresh one. The returned id is the one the caller must use.
func (r *Registry) Open(ctx context.Context, id string) (string, *store.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if parsed, err := uuid.Parse(id); err == nil {
		id = parsed.String()
		if e, ok := r.sessions[id]; ok {
			e.lastSeen = r.nowFn()
			return id, e.store, false
		}
	} else {
		id = uuid.NewString()
	}

	e := &entry{store: r.factory(), lastSeen: r.nowFn()}
	r.sessions[id] = e
	r.publishLocked()
	r.logg.Info(r.logg.WithSessionID(ctx, id), "session.opened")
	return id, e.store, true
}

// Get returns the store for an existing session and marks it active.
func (r *Registry) Get(id string) (*store.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.nowFn()
	return e.store, true
}

// End tears a session down. Unknown ids are a no-op.
func (r *Registry) End(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	r.publishLocked()
	r.logg.Info(r.logg.WithSessionID(ctx, id), "session.ended")
	return true
}

// Sweep removes sessions idle for longer than the TTL and returns how many were removed.
func (r *Registry) Sweep(ctx context.Context) int {
	if r.idleTTL <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.nowFn().Add(-r.idleTTL)
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		r.publishLocked()
		r.logg.Info(r.logg.WithField(ctx, "expired", removed), "session.swept")
	}
	return removed
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("sweep interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

func (r *Registry) publishLocked() {
	if r.metrics != nil {
		r.metrics.SetActiveSessions(len(r.sessions))
	}
}
