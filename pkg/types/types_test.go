package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: `"2026-09-01T09:30:00Z"`,
			want:  time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "iso without zone",
			input: `"2026-09-01T09:30:00"`,
			want:  time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "iso with microseconds",
			input: `"2026-09-01T09:30:00.123456"`,
			want:  time.Date(2026, 9, 1, 9, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:    "garbage",
			input:   `"next tuesday"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Time
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts.Time, tt.want)
		})
	}
}

func TestTimeMarshalRoundTrip(t *testing.T) {
	in := Time{Time: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Time
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Equal(in.Time))
}

func TestSessionValid(t *testing.T) {
	var nilSess *Session
	assert.False(t, nilSess.Valid())

	assert.False(t, (&Session{Token: "tok"}).Valid())
	assert.False(t, (&Session{User: User{ID: 1}}).Valid())
	assert.True(t, (&Session{Token: "tok", User: User{ID: 1, Role: RolePatient}}).Valid())
}

func TestBookingUpcoming(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	past := &Booking{SlotStart: Time{Time: now.Add(-time.Hour)}}
	future := &Booking{SlotStart: Time{Time: now.Add(time.Hour)}}
	exact := &Booking{SlotStart: Time{Time: now}}

	assert.False(t, past.Upcoming(now))
	assert.True(t, future.Upcoming(now))
	assert.False(t, exact.Upcoming(now), "slot starting exactly now is not upcoming")
}
