package input

import "time"

// DefaultDebounce is the debounce interval of the reference hardware.
const DefaultDebounce = 200 * time.Millisecond

// Sampler debounces raw button levels into discrete press events.
//
// Poll returns true at most once per debounce interval for a sustained or
// repeated low level. The last-accept timestamp is shared across all
// buttons, not tracked per button.
type Sampler struct {
	pins     PinReader
	debounce time.Duration
	now      func() time.Time

	lastAccept time.Time
}

// NewSampler builds a Sampler over the given pins. A debounce <= 0 falls
// back to DefaultDebounce. The clock defaults to time.Now; tests inject a
// fake.
func NewSampler(pins PinReader, debounce time.Duration) *Sampler {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Sampler{
		pins:     pins,
		debounce: debounce,
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *Sampler) WithClock(now func() time.Time) *Sampler {
	s.now = now
	return s
}

// Poll reports whether a press event is accepted for the button right now.
// It returns false while the shared debounce interval has not elapsed since
// the last accepted event on any button. The only side effect is updating
// the shared last-accept timestamp.
func (s *Sampler) Poll(b Button) bool {
	if !s.pins.Pressed(b) {
		return false
	}
	now := s.now()
	if now.Sub(s.lastAccept) < s.debounce {
		return false
	}
	s.lastAccept = now
	return true
}

// PollAll samples every button in order and returns the first accepted
// press, if any. With the shared debounce timestamp at most one event can
// be accepted per call.
func (s *Sampler) PollAll() (Button, bool) {
	for _, b := range Buttons {
		if s.Poll(b) {
			return b, true
		}
	}
	return 0, false
}
