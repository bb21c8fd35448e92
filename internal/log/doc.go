// Package log provides structured logging helpers for webrecon.
//
// Probe targets are user-supplied URLs and frequently carry embedded
// credentials (API keys in query strings, basic-auth userinfo). The
// RedactHandler masks those before any record reaches the underlying
// slog handler, so verbose logging never leaks a secret into a terminal
// scrollback or a log file.
package log
