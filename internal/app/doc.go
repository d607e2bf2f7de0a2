// Package app runs the firmware control loop.
//
// Execution is single-threaded and cooperative: each iteration samples the
// buttons, applies at most one navigation transition, runs any scan the
// transition or the 10-second auto-refresh requests, and yields for the
// configured loop delay. Scans block the loop for their whole duration, so
// button presses during a scan are lost, not queued — exactly as on the
// hardware. Cancellation is checked between iterations only; a scan that
// has started runs to completion.
package app
