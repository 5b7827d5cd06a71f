// Package logger provides a structured logging facility based on Zap.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (coloured levels, no stack traces) or json
//
// Logs go to stderr so that command output on stdout stays machine
// readable.
//
// # Run IDs
//
// Every CLI invocation gets a random run id. WithRunID attaches it to a
// logger so that all entries of one run can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("puzzle solved", zap.Int64("corner_product", p))
package logger
