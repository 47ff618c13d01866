package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/penbot/penbot-web/pkg/events"
	"github.com/penbot/penbot-web/pkg/logger"
)

// Service is the single owner of session state. Every component reads
// the token through it instead of touching the store directly, change
// notification is an explicit subscription on it, and expiry eviction
// lives here: a timer armed on every write, with the previous timer
// canceled first so a stale timer from an old token can never evict a
// newer one.
type Service struct {
	store Store
	bus   events.Publisher
	now   func() time.Time

	mu        sync.Mutex
	timer     *time.Timer
	listeners []func(present bool)
}

func NewService(store Store, bus events.Publisher) *Service {
	if bus == nil {
		bus = events.NoopBus{}
	}
	return &Service{
		store: store,
		bus:   bus,
		now:   time.Now,
	}
}

// Token returns the stored token if one exists and has not expired.
// Expired or malformed tokens are evicted lazily on read.
func (s *Service) Token(ctx context.Context) (string, bool) {
	token, err := s.store.Get(ctx)
	if err != nil {
		return "", false
	}

	claims, err := DecodeClaims(token)
	if err != nil || claims.Expired(s.now()) {
		s.evict(ctx)
		return "", false
	}
	return token, true
}

// SetToken stores a freshly issued token, re-arms the eviction timer,
// and notifies subscribers. Writing replaces any previous session.
// Tokens whose expiry has already passed are rejected outright rather
// than stored and immediately evicted.
func (s *Service) SetToken(ctx context.Context, token string) error {
	claims, err := DecodeClaims(token)
	if err != nil {
		return err
	}
	if claims.Expired(s.now()) {
		return jwt.ErrTokenExpired
	}

	if err := s.store.Set(ctx, token); err != nil {
		return err
	}

	s.arm(claims.TimeUntilExpiry(s.now()))
	s.notify(ctx, true)
	return nil
}

// Clear removes the session on explicit logout.
func (s *Service) Clear(ctx context.Context) error {
	s.disarm()
	if err := s.store.Delete(ctx); err != nil {
		return err
	}
	s.notify(ctx, false)
	return nil
}

// Valid reports whether a token is present with its expiry strictly in
// the future.
func (s *Service) Valid(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// HasRole reports whether the session is valid and carries the role.
func (s *Service) HasRole(ctx context.Context, role string) bool {
	token, ok := s.Token(ctx)
	if !ok {
		return false
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		return false
	}
	return claims.HasRole(role)
}

// OnChange registers a listener invoked after every token write,
// clear, or expiry eviction.
func (s *Service) OnChange(fn func(present bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Close cancels any armed eviction timer.
func (s *Service) Close() {
	s.disarm()
}

func (s *Service) arm(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(ttl, func() {
		logger.Info("Session token expired, evicting")
		s.evict(context.Background())
		_ = s.bus.Publish(context.Background(), events.SessionExpired, events.SessionChangedEvent{
			Present:   false,
			ChangedAt: s.now(),
		})
	})
}

func (s *Service) disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) evict(ctx context.Context) {
	if err := s.store.Delete(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to evict session token", "error", err)
	}
	s.notify(ctx, false)
}

func (s *Service) notify(ctx context.Context, present bool) {
	s.mu.Lock()
	listeners := make([]func(bool), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(present)
	}

	_ = s.bus.Publish(ctx, events.SessionChanged, events.SessionChangedEvent{
		Present:   present,
		ChangedAt: s.now(),
	})
}
