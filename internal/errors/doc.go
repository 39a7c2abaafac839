// Package apperrors defines the error taxonomy and exit codes shared across
// the scanner. The taxonomy is deliberately small: configuration and
// validation failures surface to the user, candidates below the supported
// domain are rejected with ErrCandidateTooSmall, and everything else is
// treated as fatal.
package apperrors
