/*
Package log provides structured logging for bookctl using zerolog.

The log package wraps the zerolog library to provide structured logging
with component-specific child loggers and configurable levels. The CLI
defaults to human-readable console output on stderr so log lines never
mix with command output; --json switches to JSON for scripting.

Component loggers attach a stable field for filtering:

	logger := log.WithComponent("api")
	logger.Debug().Str("path", "/api/slots").Msg("request")
*/
package log
