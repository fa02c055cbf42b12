// Package logger provides slog attribute helpers with consistent keys
// for the attributes this module logs (errors, timing, request metadata).
package logger
