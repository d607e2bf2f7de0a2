// Package logging provides structured logging for pocketscan, built on zap.
//
// Logging is silent by default so the simulator TUI and the one-shot scan
// commands can own the terminal. Set the POCKETSCAN_LOG_LEVEL environment
// variable to "debug", "info", "warn", or "error" to enable output.
//
// The package exposes a small set of package-level helpers (Info, Debug,
// Warn, Error, Fatal) plus domain helpers for the events worth correlating
// when debugging the firmware loop: button presses, screen transitions, and
// scan passes.
package logging
