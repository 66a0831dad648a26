// Package sduierrors provides structured error types for the sduitools library.
//
// Import path: github.com/sduikit/sduitools/sduierrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [ParseError]: JSON parsing failures and unreadable files
//   - [ReferenceError]: $ref strings that cannot be interpreted at all
//   - [ResourceLimitError]: Resource exhaustion (file size, cache capacity)
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Note that most degraded conditions during reference resolution (missing
// files, depth limits, duplicate caps) never surface as Go errors at all:
// the resolver encodes them as stub nodes in the output document. The types
// in this package cover the conditions that do cross an API boundary, such
// as an unreadable root document or invalid options.
package sduierrors
