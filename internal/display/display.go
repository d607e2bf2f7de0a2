// Package display abstracts the 16x2 character display and the sinks a
// rendered frame can be pushed to.
//
// The hardware-shaped Device interface mirrors what a character LCD
// offers: clear-all plus cursor-positioned text writes, no partial-line
// clearing. Higher layers deal in whole frames through Sink; a Device is
// adapted with NewDeviceSink, and Tee fans one frame out to several sinks
// (the simulator LCD plus the WebSocket mirror, for instance).
package display

import "github.com/mvantaa/pocketscan/internal/render"

// Device is a raw character display addressed by (column, row).
type Device interface {
	Clear()
	WriteAt(col, row int, text string)
}

// Sink receives complete rendered frames.
type Sink interface {
	Show(f render.Frame)
}

// deviceSink adapts a Device to the frame-level interface.
type deviceSink struct {
	dev Device
}

// NewDeviceSink wraps a raw display. Each Show clears the device and
// writes the padded rows from the left edge.
func NewDeviceSink(dev Device) Sink {
	return &deviceSink{dev: dev}
}

func (s *deviceSink) Show(f render.Frame) {
	s.dev.Clear()
	for row, line := range f.Padded() {
		s.dev.WriteAt(0, row, line)
	}
}

// Tee fans every frame out to all member sinks in order.
type Tee []Sink

// Show implements Sink.
func (t Tee) Show(f render.Frame) {
	for _, s := range t {
		s.Show(f)
	}
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(f render.Frame)

// Show implements Sink.
func (fn SinkFunc) Show(f render.Frame) { fn(f) }
