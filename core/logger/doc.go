// Package logger provides structured logging helpers built on Go's standard
// slog package, used across the client for best-effort diagnostics.
//
// Persistence and claim-decode failures in the session layer are logged and
// swallowed rather than surfaced, so consistent structured attributes are the
// only way to observe them. The helpers here cover the attributes this client
// emits:
//
//	log.Warn("failed to persist session",
//		logger.Component("session"),
//		logger.Error(err),
//	)
//
// All helpers are nil-safe: passing a nil error or zero time yields an empty
// attribute that slog drops silently.
package logger
