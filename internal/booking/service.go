// Package booking implements the reservation submission flow: the
// selected range and guest count become one availability query or one
// create call against the backend, which is the sole arbiter of
// availability.
package booking

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/penbot/penbot-web/internal/calendar"
	"github.com/penbot/penbot-web/internal/domain"
	"github.com/penbot/penbot-web/internal/selection"
	"github.com/penbot/penbot-web/pkg/events"
	"github.com/penbot/penbot-web/pkg/logger"
)

var (
	// ErrNoSelection blocks a call before any request is issued when
	// no start date has been picked.
	ErrNoSelection = errors.New("no date selected")

	// ErrHeadcount blocks a call when the guest count is missing or
	// outside the bookable band.
	ErrHeadcount = errors.New("headcount missing or out of range")

	// ErrLoginRequired aborts a submission with no valid session; the
	// caller sends the user into the login flow instead.
	ErrLoginRequired = errors.New("login required")

	// ErrSubmitInFlight rejects a re-entrant submission while one is
	// outstanding. A courtesy guard for this instance only, not a
	// server-side exclusivity guarantee.
	ErrSubmitInFlight = errors.New("booking submission already in flight")
)

// Backend is the slice of the API client the booking flow uses.
type Backend interface {
	CheckAvailability(ctx context.Context, start calendar.Date, end *calendar.Date) error
	CreateBooking(ctx context.Context, token string, req domain.BookingRequest) error
}

// Sessions is the slice of the session service the booking flow uses.
type Sessions interface {
	Token(ctx context.Context) (string, bool)
}

type Service struct {
	backend  Backend
	sessions Sessions
	bus      events.Publisher

	minHeadcount int
	maxHeadcount int

	inFlight atomic.Bool
}

func NewService(backend Backend, sessions Sessions, bus events.Publisher, minHeadcount, maxHeadcount int) *Service {
	if bus == nil {
		bus = events.NoopBus{}
	}
	return &Service{
		backend:      backend,
		sessions:     sessions,
		bus:          bus,
		minHeadcount: minHeadcount,
		maxHeadcount: maxHeadcount,
	}
}

// CheckAvailability asks the backend whether the selected interval is
// free. Requires no session and mutates nothing; safe to repeat.
func (s *Service) CheckAvailability(ctx context.Context, r selection.Range) error {
	start, _, ok := r.Interval()
	if !ok {
		return ErrNoSelection
	}
	return s.backend.CheckAvailability(ctx, start, r.End)
}

// Submit creates the booking. Validation failures reject client-side
// before any network call; a missing session aborts before the call
// too. Success publishes a booking.created event.
func (s *Service) Submit(ctx context.Context, r selection.Range, headcount int) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	start, end, ok := r.Interval()
	if !ok {
		return ErrNoSelection
	}
	if headcount < s.minHeadcount || headcount > s.maxHeadcount {
		return ErrHeadcount
	}

	token, ok := s.sessions.Token(ctx)
	if !ok {
		return ErrLoginRequired
	}

	req := domain.BookingRequest{
		StartDate: start.ISO(),
		EndDate:   end.ISO(),
		Headcount: headcount,
	}
	if err := s.backend.CreateBooking(ctx, token, req); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Booking created",
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"headcount", req.Headcount,
	)
	_ = s.bus.Publish(ctx, events.BookingCreated, events.BookingCreatedEvent{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Headcount: req.Headcount,
		CreatedAt: time.Now(),
	})
	return nil
}
