package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvantaa/pocketscan/internal/render"
)

// Program wraps the bubbletea program and doubles as the display sink
// for the firmware loop: every Show is delivered to the model as a
// FrameMsg.
type Program struct {
	p *tea.Program
}

// NewProgram builds the simulator program around a virtual pin bank.
func NewProgram(pins *VirtualPins) *Program {
	model := NewModel(pins)
	return &Program{
		p: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Show implements display.Sink. Safe to call from the firmware loop's
// goroutine; bubbletea serializes Sends internally.
func (p *Program) Show(f render.Frame) {
	p.p.Send(FrameMsg{Frame: f})
}

// Run blocks until the user quits the simulator.
func (p *Program) Run() error {
	_, err := p.p.Run()
	return err
}

// Quit asks the simulator to exit.
func (p *Program) Quit() {
	p.p.Quit()
}
