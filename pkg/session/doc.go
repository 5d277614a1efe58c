/*
Package session provides durable local storage for the login session.

The session is two entries stored together: the opaque bearer token and
the JSON-serialized user record it belongs to. They are written and
removed in a single transaction, so a reader can never observe a token
without its user or the other way around.

# Storage layout

BoltStore keeps a single bucket in <dataDir>/bookctl.db:

	session/
	  token  -> raw token bytes
	  user   -> JSON user record

Failure handling degrades toward "logged out": a missing entry is no
session, and a user record that fails to decode clears both entries and
is likewise reported as no session. Nothing here reaches the network;
whether the token is still honored is decided by the backend on each
request.

MemStore implements the same Store interface in memory for tests.
*/
package session
