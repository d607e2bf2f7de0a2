package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvantaa/pocketscan/internal/input"
	"github.com/mvantaa/pocketscan/internal/render"
)

// FrameMsg delivers a rendered display frame to the simulator.
type FrameMsg struct {
	Frame render.Frame
}

// keyMap defines key bindings mapped onto the four hardware buttons
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", "right"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "left"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the simulator's bubbletea model. It owns no scanner state;
// the firmware loop pushes frames in and key presses go out through the
// virtual pins.
type Model struct {
	pins  *VirtualPins
	frame render.Frame

	keys keyMap
	help help.Model

	Width  int
	Height int
}

// NewModel creates the simulator model around a virtual pin bank.
func NewModel(pins *VirtualPins) Model {
	return Model{
		pins:  pins,
		frame: render.Frame{Lines: [render.Rows]string{"", ""}},
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and incoming display frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case FrameMsg:
		m.frame = msg.Frame
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.pins.Press(input.ButtonUp)
		case key.Matches(msg, m.keys.Down):
			m.pins.Press(input.ButtonDown)
		case key.Matches(msg, m.keys.Select):
			m.pins.Press(input.ButtonSelect)
		case key.Matches(msg, m.keys.Back):
			m.pins.Press(input.ButtonBack)
		}
		return m, nil
	}

	return m, nil
}

// View renders the header, the simulated LCD, the button legend, and
// the help footer.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(BuildHeaderContent()))
	b.WriteString("\n")

	lcd := LCDStyle.Render(strings.Join(padRows(m.frame), "\n"))
	b.WriteString(lcd)
	b.WriteString("\n")

	b.WriteString(ButtonLabelStyle.Render("[UP] [DOWN] [SELECT] [BACK]"))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	content := b.String()
	if m.Width > 0 && m.Height > 0 {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func padRows(f render.Frame) []string {
	padded := f.Padded()
	return padded[:]
}
