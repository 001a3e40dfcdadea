// Package logging provides structured logging for argue runs.
//
// This package wraps Go's log/slog to produce JSON-formatted records with
// persistent run context. Diagnostic output never touches stdout: solver
// answers own that stream, so logs go to stderr or to a rotated file.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (run ID, framework file, problem code)
//   - Log rotation with configurable size limits
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. The [Logger] type
// uses Go's slog internally which is designed for concurrent access. The
// [RotatingWriter] type uses a mutex to protect file operations during
// rotation. Child loggers created via With* methods share the underlying
// writer safely.
//
// # Basic Usage
//
// Create a logger writing to a file, or pass an empty path for stderr:
//
//	logger, err := logging.NewLogger("/path/to/argue.log", "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Debug("labelling expanded", "branch_depth", 4)
//	logger.Info("query evaluated", "problem", "DC-CO", "answer", true)
//	logger.Warn("large framework", "arguments", 50000)
//	logger.Error("parse failed", "error", err.Error())
//
// # Context Propagation
//
// Create child loggers with persistent context attributes:
//
//	runLogger := logger.WithRun("run-abc123")
//	fwLogger := runLogger.WithFramework("examples/cycle.apx")
//	queryLogger := fwLogger.WithProblem("DS-ST")
//
//	// All records from queryLogger include run_id, framework, and problem.
//	queryLogger.Info("query evaluated", "answer", false)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"query evaluated","run_id":"run-abc123","framework":"examples/cycle.apx","problem":"DS-ST","answer":false}
//
// # Log Rotation
//
// Watch mode can run indefinitely, so file output is rotated to prevent
// unbounded growth:
//
//	config := logging.RotationConfig{
//	    MaxSizeMB:  10, // Rotate when file exceeds 10MB
//	    MaxBackups: 3,  // Keep 3 backup files
//	}
//
// Rotated files are named argue.log.1, argue.log.2, and so on, where .1 is
// the most recent backup.
//
// # Testing
//
// For testing, use [NopLogger] to discard all log output:
//
//	func TestSomething(t *testing.T) {
//	    logger := logging.NopLogger()
//	    // Use logger in tests without creating files
//	}
//
// # Log Levels
//
// The package defines four log levels:
//
//   - [LevelDebug]: Detailed information for debugging
//   - [LevelInfo]: General operational information (default)
//   - [LevelWarn]: Warning conditions that may need attention
//   - [LevelError]: Error conditions that affect functionality
//
// Use [ValidLevels] to get the list of valid level strings, and [ParseLevel]
// to normalize user-provided level strings.
package logging
