/*
Package types defines the core data structures shared across bookctl.

This package contains the client's domain model: users and roles, the
locally cached session, bookable slots, and bookings. The JSON tags match
the booking backend's wire format, so these types are used directly by the
API client when decoding responses.

The Time type exists because the backend emits ISO 8601 timestamps without
a zone offset alongside RFC 3339 ones; it accepts both and treats offset-less
values as UTC.
*/
package types
