// Package tui is the terminal simulator for the handheld scanner.
//
// It draws the 16x2 character display inside a bordered panel and maps
// the arrow keys, enter, and escape onto the four hardware buttons. The
// firmware loop runs unchanged in a background goroutine against a
// virtual pin bank; the TUI only latches key presses into pins and
// paints the frames the loop pushes back.
package tui
