// Package logging provides the structured logging abstraction for the
// scanner, backed by zerolog. All diagnostics go to stderr; stdout carries
// only the per-candidate verdict lines.
package logging
