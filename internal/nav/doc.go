// Package nav implements the menu navigation state machine: the current
// screen, the list cursor, and the detail-page cursor, plus the transition
// table that interprets button events.
//
// Transitions are table-driven so the machine is testable without any
// hardware. Cursor and page wraparound is applied eagerly at transition
// time; outside of Apply the cursor and page are always within range for
// the live registry counts, and the renderer can stay a pure function.
//
// Transitions that start a scan do not run it; Apply returns an Effect and
// the caller (the firmware loop) performs the blocking scan.
package nav
