// Package input converts raw button levels into discrete press events.
//
// Buttons are active-low (pressed = low level, pulled high when idle). The
// Sampler applies a debounce interval to suppress switch bounce. The
// debounce timestamp is intentionally SHARED across all four buttons, as on
// the reference hardware: a press accepted on any button arms the cooldown
// for every button, so rapid alternating presses on different buttons are
// throttled too.
package input
