package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role defines the authorization level of a user account
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// User is the backend's record of an account, cached locally after login.
// The client never modifies it; the backend supplies it at auth time.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt Time   `json:"created_at,omitempty"`
}

// Session pairs an opaque bearer token with the user record it was issued
// for. Token and user always travel together: the session store writes and
// removes them in one step.
type Session struct {
	Token string
	User  User
}

// Valid reports whether the session carries both a token and a user record.
// Safe to call on a nil session.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != 0
}

// Credentials carries a login request body
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Slot is a bookable appointment opening. Slots appear in the available
// list only while unbooked; the backend owns that lifecycle.
type Slot struct {
	ID      int64 `json:"id"`
	StartAt Time  `json:"start_at"`
	EndAt   Time  `json:"end_at"`
}

// Booking is a confirmed reservation of a slot by a specific user. The
// user_name/user_email fields are only populated on admin listings.
type Booking struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	SlotID    int64  `json:"slot_id"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	SlotStart Time   `json:"slot_start"`
	SlotEnd   Time   `json:"slot_end,omitempty"`
	CreatedAt Time   `json:"created_at,omitempty"`
}

// Upcoming reports whether the booking's slot starts strictly after now.
// The status is derived at display time, never stored.
func (b *Booking) Upcoming(now time.Time) bool {
	return b.SlotStart.After(now)
}

// isoNoZone matches timestamps the backend emits without a zone offset.
const isoNoZone = "2006-01-02T15:04:05"

// Time decodes the backend's timestamps, which arrive either as RFC 3339
// or as bare ISO 8601 without an offset (treated as UTC).
type Time struct {
	time.Time
}

// UnmarshalJSON accepts RFC 3339, zone-less ISO 8601, and null.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.ParseInLocation(isoNoZone, s, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q", s)
		}
	}
	t.Time = parsed
	return nil
}

// MarshalJSON emits RFC 3339, or null for the zero value.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
