// Package logging provides structured logging for the zodplay CLI using slog.
//
// Text output goes through [Handler], which colorizes levels and keys when
// the writer is a terminal and clips long attribute values so that file
// contents passing through the playground store do not flood the log.
// JSON output uses the standard library's JSON handler.
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
