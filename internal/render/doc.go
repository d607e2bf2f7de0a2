// Package render maps navigation state and registry contents to the exact
// two-row, 16-column text shown on the character display.
//
// Render is a pure function: the cursor and page it receives are already
// wrapped into range by the navigation machine, so rendering mutates
// nothing. Truncation to the display width is handled here; the display
// drivers receive rows that always fit.
package render
