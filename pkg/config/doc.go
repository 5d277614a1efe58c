/*
Package config resolves bookctl's client settings.

Settings come from three layers, strongest last when reading top to
bottom:

  - defaults (development backend at http://localhost:5000,
    data under ~/.bookctl)
  - <data dir>/config.yaml
  - environment (BOOKCTL_API_URL, BOOKCTL_DATA_DIR, BOOKCTL_LOG_LEVEL),
    with a .env file loaded first when present

Command-line flags are applied on top of the loaded Config by the CLI.
The API base URL may be an absolute origin, a relative prefix, or the
empty string; empty means requests go out with their paths untouched.
*/
package config
