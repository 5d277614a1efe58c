package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordclinic/bookctl/pkg/session"
	"github.com/nordclinic/bookctl/pkg/types"
)

func loggedInStore(t *testing.T) session.Store {
	t.Helper()
	store := session.NewMemStore()
	err := store.Save(&types.Session{
		Token: "tok-xyz",
		User:  types.User{ID: 3, Name: "Ana Ruiz", Role: types.RolePatient},
	})
	require.NoError(t, err)
	return store
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Write([]byte(`{"token":"tok-123","role":"patient","user":{"id":3,"name":"Ana Ruiz","email":"ana@example.com","role":"patient"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	sess, err := client.Login(context.Background(), types.Credentials{Email: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, int64(3), sess.User.ID)
	assert.Equal(t, types.RolePatient, sess.User.Role)
	assert.True(t, sess.Valid())
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedInStore(t))
	_, err := client.ListMyBookings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-xyz", gotAuth)
}

func TestNoTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"TOKEN_MISSING","message":"Token is missing"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.ListMyBookings(context.Background())

	assert.Empty(t, gotAuth, "request goes out without credentials; the backend rejects it")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Token is missing", apiErr.Message)
}

func TestUnauthenticatedSlotsFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"), "/api/slots needs no auth")
		assert.Equal(t, "/api/slots", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"start_at":"2026-09-01T09:00:00","end_at":"2026-09-01T09:30:00"},
			{"id":2,"start_at":"2026-09-01T09:30:00","end_at":"2026-09-01T10:00:00"}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedInStore(t))
	slots, err := client.ListSlots(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)

	// Backend order is kept as delivered
	require.Len(t, slots, 2)
	assert.Equal(t, int64(1), slots[0].ID)
	assert.Equal(t, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), slots[0].StartAt.Time)
}

func TestListSlotsWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-09-08", r.URL.Query().Get("to"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.ListSlots(context.Background(),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
}

func TestBookSlotConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"SLOT_TAKEN","message":"This slot is already booked"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedInStore(t))
	_, err := client.BookSlot(context.Background(), 42)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "SLOT_TAKEN", apiErr.Code)
	assert.Equal(t, "This slot is already booked", apiErr.Message)
}

func TestErrorBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>502 Bad Gateway</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.ListSlots(context.Background(), time.Time{}, time.Time{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, genericErrorMessage, apiErr.Message)
	assert.Empty(t, apiErr.Code)
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	client := NewClient(srv.URL, session.NewMemStore())
	_, err := client.Health(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure is not an APIError")
}

func TestCancelBooking(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.Write([]byte(`{"message":"Booking cancelled successfully","booking_id":7}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, loggedInStore(t))
	require.NoError(t, client.CancelBooking(context.Background(), 7))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/cancel/7", gotPath)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"OK","message":"API is running"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", session.NewMemStore())
	_, err := client.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/health", gotPath, "no double slash after joining")
}
