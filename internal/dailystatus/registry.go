package dailystatus

import (
	"context"
	"sync"

	dailystatuserrors "go-academy/internal/dailystatus/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Registry keeps one started Session per tenant. Sessions are created on first use;
// concurrent first requests for the same tenant share one initial load.
type Registry struct {
	source EventSource
	roster Roster
	clock  DayClock
	opts   []SessionOption
	logger *zap.Logger

	group singleflight.Group

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

func NewRegistry(source EventSource, roster Roster, clk DayClock, logger *zap.Logger, opts ...SessionOption) *Registry {
	if logger == nil {
		logger = zap.L()
	}
	return &Registry{
		source:   source,
		roster:   roster,
		clock:    clk,
		opts:     append([]SessionOption{WithSessionLogger(logger)}, opts...),
		logger:   logger.Named("dailystatus.registry"),
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) lookup(tenantID string) (*Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false, dailystatuserrors.ErrSessionClosed
	}
	s, ok := r.sessions[tenantID]
	return s, ok, nil
}

// Get returns the tenant's session, starting it if needed. The initial load is detached
// from ctx cancellation because the session outlives the request that created it.
func (r *Registry) Get(ctx context.Context, tenantID string) (*Session, error) {
	if s, ok, err := r.lookup(tenantID); err != nil || ok {
		return s, err
	}

	v, err, _ := r.group.Do(tenantID, func() (any, error) {
		if s, ok, err := r.lookup(tenantID); err != nil || ok {
			return s, err
		}

		s := NewSession(tenantID, r.source, r.roster, r.clock, r.opts...)
		s.Start(context.WithoutCancel(ctx))

		r.mu.Lock()
		if r.closed {
			r.mu.Unlock()
			s.Dispose()
			return nil, dailystatuserrors.ErrSessionClosed
		}
		r.sessions[tenantID] = s
		count := len(r.sessions)
		r.mu.Unlock()

		r.logger.Info("attendance session started",
			zap.String("tenant_id", tenantID),
			zap.String("date", s.DayKey()),
			zap.Int("sessions", count),
		)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Close disposes every session. Later Get calls fail with ErrSessionClosed.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Dispose()
	}
	r.logger.Info("attendance sessions closed", zap.Int("sessions", len(sessions)))
}
