package tui

import (
	"sync"

	"github.com/mvantaa/pocketscan/internal/input"
)

// VirtualPins latches keyboard presses so the firmware loop's sampler
// can observe them. A latch is consumed by the first read, which makes
// a key tap behave like a momentary button press regardless of how the
// poll and the key event interleave.
type VirtualPins struct {
	mu      sync.Mutex
	pending map[input.Button]bool
}

// NewVirtualPins creates an empty pin bank.
func NewVirtualPins() *VirtualPins {
	return &VirtualPins{pending: make(map[input.Button]bool)}
}

// Press latches a button press for the next poll.
func (p *VirtualPins) Press(b input.Button) {
	p.mu.Lock()
	p.pending[b] = true
	p.mu.Unlock()
}

// Pressed implements input.PinReader. Reading a latched press clears it.
func (p *VirtualPins) Pressed(b input.Button) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.pending[b] {
		return false
	}
	p.pending[b] = false
	return true
}
