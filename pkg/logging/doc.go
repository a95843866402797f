// Package logging provides structured logging for checkjmx with unified
// log handling and level filtering.
//
// This package implements a thin layer on top of Go's standard slog
// package. Every log entry carries a subsystem identifier so that the
// probe's pipeline stages can be told apart in verbose output.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about probe operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// # Usage
//
//	import "checkjmx/pkg/logging"
//
//	// Initialize with Warn level logging to stderr
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("Connection", "opening session to %s", endpoint)
//	logging.Warn("Liveness", "dead-connection check failed")
//	logging.Error("Probe", err, "probe cycle failed")
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering and categorization:
//
//   - **Config**: Configuration loading and merging
//   - **Connection**: Session open/close and transport dialing
//   - **Liveness**: Periodic dead-connection checking
//   - **Resolver**: Object name parsing and pattern resolution
//   - **Probe**: Orchestration of one probe cycle
//
// # Output Discipline
//
// checkjmx prints exactly one result line on stdout; that line is parsed
// by monitoring supervisors. All logging therefore goes to stderr, and the
// default level is Warn so the happy path stays silent.
package logging
