package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nordclinic/bookctl/pkg/log"
	"github.com/nordclinic/bookctl/pkg/session"
	"github.com/nordclinic/bookctl/pkg/types"
)

// Client issues requests against the booking backend's REST API. It reads
// the bearer token from the session store but never writes to it.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions session.Store
	logger   zerolog.Logger
}

// NewClient creates a client for the given base URL. The base URL may be
// an absolute origin, a relative prefix, or empty (paths pass through
// untouched).
func NewClient(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		sessions: sessions,
		logger:   log.WithComponent("api"),
	}
}

// Login exchanges credentials for a token and user record
func (c *Client) Login(ctx context.Context, creds types.Credentials) (*types.Session, error) {
	var resp struct {
		Token string     `json:"token"`
		User  types.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, false, &resp); err != nil {
		return nil, err
	}
	return &types.Session{Token: resp.Token, User: resp.User}, nil
}

// Register creates a new patient account. The backend issues no token on
// registration; callers log in afterwards to obtain a session.
func (c *Client) Register(ctx context.Context, name string, creds types.Credentials) (*types.User, error) {
	body := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: creds.Email, Password: creds.Password}

	var resp struct {
		User types.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/register", body, false, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Health is the backend's health check response
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health checks backend connectivity
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, false, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListSlots returns currently bookable slots in the backend's order. Zero
// times request the backend's default window (the next 7 days). The client
// does not filter the result; the backend's time window is authoritative.
func (c *Client) ListSlots(ctx context.Context, from, to time.Time) ([]types.Slot, error) {
	path := "/api/slots"
	if !from.IsZero() && !to.IsZero() {
		q := url.Values{}
		q.Set("from", from.Format("2006-01-02"))
		q.Set("to", to.Format("2006-01-02"))
		path += "?" + q.Encode()
	}

	var slots []types.Slot
	if err := c.do(ctx, http.MethodGet, path, nil, false, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// ListMyBookings returns the caller's bookings
func (c *Client) ListMyBookings(ctx context.Context) ([]types.Booking, error) {
	var bookings []types.Booking
	if err := c.do(ctx, http.MethodGet, "/api/my-bookings", nil, true, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListAllBookings returns every booking; the backend restricts this to
// admin accounts.
func (c *Client) ListAllBookings(ctx context.Context) ([]types.Booking, error) {
	var bookings []types.Booking
	if err := c.do(ctx, http.MethodGet, "/api/all-bookings", nil, true, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// BookSlot reserves the slot for the authenticated user
func (c *Client) BookSlot(ctx context.Context, slotID int64) (*types.Booking, error) {
	body := struct {
		SlotID int64 `json:"slotId"`
	}{SlotID: slotID}

	var resp struct {
		Message string        `json:"message"`
		Booking types.Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/book", body, true, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

// CancelBooking cancels a booking, freeing its slot
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cancel/%d", bookingID), nil, true, nil)
}

// do runs one request/response cycle: resolve the path against the base
// URL, attach the bearer token when asked to, encode the body as JSON, and
// decode either the success payload into out or the error envelope into an
// APIError. Transport failures come back as NetworkError.
func (c *Client) do(ctx context.Context, method, path string, body any, requireAuth bool, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	if requireAuth {
		sess, err := c.sessions.Load()
		if err != nil {
			return err
		}
		// No token: send the request unauthenticated and let the backend
		// reject it with its own error message.
		if sess.Valid() {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", req.Header.Get("X-Request-Id")).
		Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeError extracts the backend's error envelope, falling back to a
// generic message when the body is not the conventional shape.
func decodeError(status int, data []byte) error {
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	apiErr := &APIError{Status: status, Message: genericErrorMessage}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
