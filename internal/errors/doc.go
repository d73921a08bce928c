// Package errors provides error handling conventions for the zodplay CLI.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors so
// that the rest of the module imports a single errors package, and adds an
// [ExitError] type carrying a process exit code and a user-facing
// suggestion.
//
// # Contract Violations
//
// Programming-contract violations (states that correct callers can never
// reach) are raised with [AssertionFailedf] and panicked, never returned:
//
//	panic(errors.AssertionFailedf("no flag for option %q", name))
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
package errors
