// Package logging assembles the structured slog loggers used across gavel
// components.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// defines the standard attribute keys (component, request id, case id) so
// every component emits log lines with the same shape. Prefer these
// constructors over hand-rolled slog setup.
package logging
