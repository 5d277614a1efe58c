/*
Package api implements the HTTP client for the booking backend.

The client wraps a single request/response core shared by every
operation:

	┌────────────────────── REQUEST CYCLE ──────────────────────┐
	│                                                            │
	│  path ──► base URL join ──► JSON body ──► bearer token     │
	│                                              (if required) │
	│                                                    │       │
	│                  ┌─────────────────────────────────▼──┐    │
	│                  │          HTTP transport             │    │
	│                  └──────┬──────────────────────┬──────┘    │
	│                         │ no response          │ response  │
	│                         ▼                      ▼           │
	│                   NetworkError          2xx: decode JSON   │
	│                                        non-2xx: APIError   │
	│                                        from {error:{code,  │
	│                                        message}} envelope  │
	└────────────────────────────────────────────────────────────┘

Two error kinds cover everything callers need to distinguish: APIError
(the backend answered and said no, with its own message) and NetworkError
(the backend never answered). Both are plain errors usable with
errors.As.

Authenticated operations read the bearer token from the session store; a
missing token is not an error here, the request simply goes out without
credentials and the backend's rejection is surfaced like any other
APIError. The client never writes to the session store.

No retries, no client-side timeouts beyond the transport's defaults, and
no response caching: the caller owns the context and re-fetches when it
wants fresher data.
*/
package api
