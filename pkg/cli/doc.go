// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: The fmaa command tree (provision, init, schema)
//   - cli/helpers: Flag handling utilities including timing detection
//   - cli/ui: User interface components (errorhandler)
//
// The utilities in this package follow dependency injection patterns and
// integrate with the fmaa runtime container for testability and flexibility.
package cli
