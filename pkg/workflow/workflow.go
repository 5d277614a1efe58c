package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nordclinic/bookctl/pkg/api"
	"github.com/nordclinic/bookctl/pkg/log"
	"github.com/nordclinic/bookctl/pkg/types"
)

// Status is the advisory state of the dashboard after the last operation.
// These states inform the view; they are not concurrency gates.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Messages shown when an operation resolves
const (
	bookedMessage       = "Slot booked successfully!"
	cancelledMessage    = "Booking cancelled successfully!"
	networkErrorMessage = "Network error. Please try again."
)

// ErrDeclined reports that the user backed out of a confirmation prompt.
// No request was issued.
var ErrDeclined = errors.New("action declined")

// API is the slice of the REST client the dashboard needs
type API interface {
	ListSlots(ctx context.Context, from, to time.Time) ([]types.Slot, error)
	ListMyBookings(ctx context.Context) ([]types.Booking, error)
	BookSlot(ctx context.Context, slotID int64) (*types.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) error
}

// Confirmer gates irreversible actions behind an explicit user decision
type Confirmer interface {
	Confirm(prompt string) bool
}

// State is the view's snapshot: status line plus the two fetched
// collections. The collections are independent fetches; consistency
// between them comes only from re-fetching both after a mutation.
type State struct {
	Status   Status
	Message  string
	Slots    []types.Slot
	Bookings []types.Booking
}

// Dashboard drives the patient booking view. It owns the advisory status
// and the last fetched collections, and re-fetches both after every
// successful mutation: slot availability is contended by other users, so
// only the backend's answer after the fact is trusted. Rebuilt on every
// run; nothing here is persisted.
type Dashboard struct {
	api    API
	state  State
	logger zerolog.Logger
}

// NewDashboard creates an idle dashboard over the given API
func NewDashboard(a API) *Dashboard {
	return &Dashboard{
		api:    a,
		state:  State{Status: StatusIdle},
		logger: log.WithComponent("workflow"),
	}
}

// State returns the current view snapshot
func (d *Dashboard) State() State {
	return d.state
}

// Refresh fetches the open slots and the caller's bookings. On failure the
// last good collections stay in place and the status carries the error
// message. A successful refresh leaves the status line alone, so the
// outcome of a preceding mutation stays visible.
func (d *Dashboard) Refresh(ctx context.Context) error {
	slots, err := d.api.ListSlots(ctx, time.Time{}, time.Time{})
	if err != nil {
		d.fail(err)
		return err
	}
	bookings, err := d.api.ListMyBookings(ctx)
	if err != nil {
		d.fail(err)
		return err
	}

	d.state.Slots = slots
	d.state.Bookings = bookings
	return nil
}

// Book reserves the slot and, on success, re-fetches both collections so
// the view reflects the now-taken slot and the new booking. On failure the
// collections are left untouched: no optimistic local patching.
func (d *Dashboard) Book(ctx context.Context, slotID int64) error {
	d.state.Status = StatusLoading
	d.state.Message = ""

	if _, err := d.api.BookSlot(ctx, slotID); err != nil {
		d.fail(err)
		return err
	}

	d.state.Status = StatusSuccess
	d.state.Message = bookedMessage
	return d.Refresh(ctx)
}

// Cancel asks the Confirmer first; declining issues no request at all and
// leaves the state unchanged. A confirmed cancellation follows the same
// mutate-then-dual-refetch path as Book.
func (d *Dashboard) Cancel(ctx context.Context, bookingID int64, confirm Confirmer) error {
	if !confirm.Confirm("Are you sure you want to cancel this booking?") {
		return ErrDeclined
	}

	d.state.Status = StatusLoading
	d.state.Message = ""

	if err := d.api.CancelBooking(ctx, bookingID); err != nil {
		d.fail(err)
		return err
	}

	d.state.Status = StatusSuccess
	d.state.Message = cancelledMessage
	return d.Refresh(ctx)
}

// fail collapses both error kinds into the advisory message the view
// shows. Nothing is fatal: the dashboard stays interactive and the user
// re-triggers the action to retry.
func (d *Dashboard) fail(err error) {
	d.state.Status = StatusError

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		d.state.Message = apiErr.Message
		d.logger.Debug().
			Int("status", apiErr.Status).
			Str("code", apiErr.Code).
			Msg("backend rejected request")
		return
	}

	d.state.Message = networkErrorMessage
	d.logger.Debug().Err(err).Msg("request did not reach backend")
}
