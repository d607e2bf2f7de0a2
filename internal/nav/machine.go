package nav

import (
	"github.com/mvantaa/pocketscan/internal/input"
)

// Screen identifies one of the five UI screens.
type Screen int

const (
	MainMenu Screen = iota
	WifiList
	BleList
	WifiDetail
	BleDetail
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case MainMenu:
		return "main-menu"
	case WifiList:
		return "wifi-list"
	case BleList:
		return "ble-list"
	case WifiDetail:
		return "wifi-detail"
	case BleDetail:
		return "ble-detail"
	default:
		return "unknown"
	}
}

// IsScanList reports whether the screen is one of the two scan-list
// screens, which are the only screens with auto-refresh.
func (s Screen) IsScanList() bool {
	return s == WifiList || s == BleList
}

// Detail page counts per screen.
const (
	menuEntries     = 2 // WiFi Scanner, BLE Scanner
	WifiDetailPages = 3 // RSSI, MAC, channel+security
	BleDetailPages  = 4 // RSSI, address, TX power, service UUID
)

// PageCount returns the number of detail pages for a detail screen, or 0
// for screens without pages.
func PageCount(s Screen) int {
	switch s {
	case WifiDetail:
		return WifiDetailPages
	case BleDetail:
		return BleDetailPages
	default:
		return 0
	}
}

// Effect is a side effect requested by a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectScanWiFi
	EffectScanBLE
)

// Registries supplies the live registry counts the machine wraps its
// cursor over.
type Registries interface {
	WiFiCount() int
	BLECount() int
}

// Machine owns the navigation state. Not safe for concurrent use; the
// firmware loop is single-threaded.
type Machine struct {
	screen Screen
	cursor int
	page   int
	regs   Registries
}

// NewMachine starts at the main menu with cursor and page at 0.
func NewMachine(regs Registries) *Machine {
	return &Machine{regs: regs}
}

// Screen returns the active screen.
func (m *Machine) Screen() Screen { return m.screen }

// Cursor returns the list cursor. On list and detail screens it indexes
// the matching registry; on the main menu it selects the menu entry.
func (m *Machine) Cursor() int { return m.cursor }

// Page returns the detail-page cursor.
func (m *Machine) Page() int { return m.page }

// ResetCursor moves the list cursor back to the top. Called after every
// scan pass.
func (m *Machine) ResetCursor() { m.cursor = 0 }

// transition mutates the machine and reports a requested side effect.
type transition func(m *Machine) Effect

// transitions is the full state/event table. A missing entry is a no-op.
var transitions = map[Screen]map[input.Button]transition{
	MainMenu: {
		input.ButtonUp:     cursorUp,
		input.ButtonDown:   cursorDown,
		input.ButtonSelect: selectFromMenu,
		input.ButtonBack:   stay,
	},
	WifiList: {
		input.ButtonUp:     cursorUp,
		input.ButtonDown:   cursorDown,
		input.ButtonSelect: enterDetail,
		input.ButtonBack:   backToMenu,
	},
	BleList: {
		input.ButtonUp:     cursorUp,
		input.ButtonDown:   cursorDown,
		input.ButtonSelect: enterDetail,
		input.ButtonBack:   backToMenu,
	},
	WifiDetail: {
		input.ButtonUp:     pageUp,
		input.ButtonDown:   pageDown,
		input.ButtonSelect: stay,
		input.ButtonBack:   backToList,
	},
	BleDetail: {
		input.ButtonUp:     pageUp,
		input.ButtonDown:   pageDown,
		input.ButtonSelect: stay,
		input.ButtonBack:   backToList,
	},
}

// Apply runs one accepted button event through the transition table and
// returns the effect the caller must perform. The cursor and page are in
// range when Apply returns.
func (m *Machine) Apply(b input.Button) Effect {
	row, ok := transitions[m.screen]
	if !ok {
		return EffectNone
	}
	t, ok := row[b]
	if !ok {
		return EffectNone
	}
	return t(m)
}

// ring returns the cursor modulus for the active screen: the menu entry
// count on the main menu, the live registry count on list and detail
// screens.
func (m *Machine) ring() int {
	switch m.screen {
	case MainMenu:
		return menuEntries
	case WifiList, WifiDetail:
		return m.regs.WiFiCount()
	case BleList, BleDetail:
		return m.regs.BLECount()
	default:
		return 0
	}
}

// wrap folds v into [0, n) with modular wraparound. n <= 0 pins to 0,
// which covers empty registries.
func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func stay(m *Machine) Effect { return EffectNone }

func cursorUp(m *Machine) Effect {
	m.cursor = wrap(m.cursor-1, m.ring())
	return EffectNone
}

func cursorDown(m *Machine) Effect {
	m.cursor = wrap(m.cursor+1, m.ring())
	return EffectNone
}

func pageUp(m *Machine) Effect {
	m.page = wrap(m.page-1, PageCount(m.screen))
	return EffectNone
}

func pageDown(m *Machine) Effect {
	m.page = wrap(m.page+1, PageCount(m.screen))
	return EffectNone
}

// selectFromMenu enters the scan list picked by the cursor and always
// requests a fresh scan, even if the previous one is still recent.
func selectFromMenu(m *Machine) Effect {
	m.page = 0
	if m.cursor == 0 {
		m.screen = WifiList
		return EffectScanWiFi
	}
	m.screen = BleList
	return EffectScanBLE
}

// enterDetail opens the detail view for the selected record. Selecting on
// an empty list is a no-op; there is no record to show.
func enterDetail(m *Machine) Effect {
	m.page = 0
	switch m.screen {
	case WifiList:
		if m.regs.WiFiCount() > 0 {
			m.screen = WifiDetail
		}
	case BleList:
		if m.regs.BLECount() > 0 {
			m.screen = BleDetail
		}
	}
	return EffectNone
}

func backToMenu(m *Machine) Effect {
	m.page = 0
	m.cursor = 0
	m.screen = MainMenu
	return EffectNone
}

func backToList(m *Machine) Effect {
	m.page = 0
	m.cursor = 0
	switch m.screen {
	case WifiDetail:
		m.screen = WifiList
	case BleDetail:
		m.screen = BleList
	}
	return EffectNone
}
