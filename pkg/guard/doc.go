/*
Package guard decides whether a navigation target may be shown for the
current session.

Decide is a pure function from (session, path) to a render-or-redirect
decision, kept separate from any rendering so the rules are testable on
their own. Authenticated users are bounced off the auth pages to their
role's home; each dashboard renders only for its own role and sends
everyone else to /login.
*/
package guard
