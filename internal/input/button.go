package input

// Button identifies one of the four push buttons.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonSelect
	ButtonBack
)

// Buttons lists all buttons in the order they are sampled each loop
// iteration.
var Buttons = []Button{ButtonUp, ButtonDown, ButtonSelect, ButtonBack}

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonSelect:
		return "select"
	case ButtonBack:
		return "back"
	default:
		return "unknown"
	}
}

// PinReader reports the raw electrical level of a button's input pin.
// Pressed returns true while the pin reads low (buttons are active-low).
type PinReader interface {
	Pressed(b Button) bool
}
