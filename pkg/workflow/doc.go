/*
Package workflow implements the booking view's state machine.

The Dashboard holds the two collections the patient view renders (open
slots, own bookings) plus an advisory status line, and funnels every
mutation through the same pattern:

	mutate ──► success ──► re-fetch slots ──► re-fetch bookings
	   │
	   └────► failure ──► error status, collections untouched

The dual re-fetch after a successful mutation is deliberate. Slots are a
shared resource contended by other users, so an optimistic local patch
could show state the backend never had; re-fetching both collections
converges on whatever the backend decided. Failures change nothing
locally beyond the status message, and the user retries by re-running
the action.

Status values are advisory only. Two mutations in flight at once are not
serialized here; the last response to resolve owns the status line, and
their re-fetches are idempotent and order-insensitive.

Cancellation is irreversible, so Cancel is gated on a Confirmer: a
declined prompt returns ErrDeclined without issuing any request.
*/
package workflow
