// Package backend is the REST client for the pension booking API.
// This service does not control that API: availability, bookings, and
// authorization are all decided server-side, and this client only
// formats requests and surfaces the server's answers.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/penbot/penbot-web/internal/calendar"
	"github.com/penbot/penbot-web/internal/domain"
	"github.com/penbot/penbot-web/pkg/logger"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type availabilityQuery struct {
	StartDate string `url:"startDate"`
	EndDate   string `url:"endDate"`
}

// CheckAvailability asks whether the interval is free. End defaults to
// one night after start when absent. Never mutates server state; safe
// to repeat.
func (c *Client) CheckAvailability(ctx context.Context, start calendar.Date, end *calendar.Date) error {
	checkout := start.AddDays(1)
	if end != nil {
		checkout = *end
	}

	q, err := query.Values(availabilityQuery{
		StartDate: start.ISO(),
		EndDate:   checkout.ISO(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode availability query: %w", err)
	}

	_, err = c.do(ctx, http.MethodGet, "/api/bookings/available?"+q.Encode(), "", nil)
	return err
}

// CreateBooking submits the reservation with the bearer token
// attached. Not safely repeatable: the backend issues no idempotency
// key, so a double submit can create two bookings.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/bookings/", token, req)
	return err
}

// GetProfile fetches the logged-in member's account view (contact
// details and their own bookings) from the backend's user search.
func (c *Client) GetProfile(ctx context.Context, token string) (*domain.Profile, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/user/search", token, nil)
	if err != nil {
		return nil, err
	}
	var out domain.Profile
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	return &out, nil
}

// Host surface.

func (c *Client) ListHostBookings(ctx context.Context, token string) ([]domain.Booking, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/host/bookings", token, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.Booking
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode booking list: %w", err)
	}
	return out, nil
}

func (c *Client) GetHostBooking(ctx context.Context, token string, id int64) (*domain.Booking, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/host/bookings/%d", id), token, nil)
	if err != nil {
		return nil, err
	}
	var out domain.Booking
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode booking: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateHostBooking(ctx context.Context, token string, id int64, status domain.BookingStatus) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/host/bookings/%d", id), token,
		domain.BookingStatusUpdate{Status: status})
	return err
}

func (c *Client) ListBlockedDates(ctx context.Context, token string) ([]domain.BlockedDate, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/host/blocks", token, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.BlockedDate
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode block list: %w", err)
	}
	return out, nil
}

func (c *Client) CreateBlockedDate(ctx context.Context, token string, req domain.BlockedDateRequest) (*domain.BlockedDate, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/host/blocks", token, req)
	if err != nil {
		return nil, err
	}
	var out domain.BlockedDate
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode block: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteBlockedDate(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/host/blocks/%d", id), token, nil)
	return err
}

func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/host/users", token, nil)
	if err != nil {
		return nil, err
	}
	var out []domain.User
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode user list: %w", err)
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, token string, id int64) (*domain.User, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/host/users/%d", id), token, nil)
	if err != nil {
		return nil, err
	}
	var out domain.User
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/host/users/%d", id), token, nil)
	return err
}

// AskChat forwards a visitor question to the backend's language-model
// proxy and returns its answer.
func (c *Client) AskChat(ctx context.Context, token, text string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/gemini/ask", token, map[string]string{"text": text})
	if err != nil {
		return "", err
	}
	var out struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	return out.Result, nil
}

// do issues one request and reads the whole response. Non-2xx
// responses become an *APIError carrying any {message} body;
// transport failures classify into ErrTimeout or ErrNetwork.
func (c *Client) do(ctx context.Context, method, path, token string, payload interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := ctx.Value(logger.RequestIDKey); requestID != nil {
		req.Header.Set("X-Request-ID", requestID.(string))
	}

	logger.DebugContext(ctx, "Calling booking backend", "method", method, "path", path)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return nil, apiErr
	}

	return raw, nil
}
