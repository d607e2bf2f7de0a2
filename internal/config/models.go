package config

import "time"

// Config represents the entire configuration file.
type Config struct {
	Version int      `yaml:"version"`
	Buttons *Buttons `yaml:"buttons,omitempty"`
	Timing  *Timing  `yaml:"timing,omitempty"`
	Scanner *Scanner `yaml:"scanner,omitempty"`
	Monitor *Monitor `yaml:"monitor,omitempty"`
}

// Buttons holds the GPIO pin assignment for the four push buttons.
// Pins are active-low with internal pull-ups; the defaults match the
// reference hardware.
type Buttons struct {
	UpPin     int `yaml:"up_pin"`
	DownPin   int `yaml:"down_pin"`
	SelectPin int `yaml:"select_pin"`
	BackPin   int `yaml:"back_pin"`
}

// Timing holds the firmware loop timing knobs, all in milliseconds.
type Timing struct {
	DebounceMs     int `yaml:"debounce_ms"`      // minimum spacing between accepted button events
	ScanIntervalMs int `yaml:"scan_interval_ms"` // auto-refresh period while a scan list is active
	BLEWindowMs    int `yaml:"ble_window_ms"`    // blocking BLE scan window
	LoopDelayMs    int `yaml:"loop_delay_ms"`    // cooperative yield per loop iteration
}

// Scanner holds scan-related settings.
type Scanner struct {
	// Capacity bounds each device registry. Results past the capacity
	// are dropped silently.
	Capacity int `yaml:"capacity"`

	// WiFiInterface is the host wireless interface used in host-radio
	// mode (e.g. "wlan0"). Empty means the first interface found.
	WiFiInterface string `yaml:"wifi_interface,omitempty"`
}

// Monitor holds the optional display-mirror server settings.
type Monitor struct {
	// ListenAddr is the address the WebSocket frame mirror listens on.
	// Empty disables the mirror.
	ListenAddr string `yaml:"listen_addr,omitempty"`
}

// Debounce returns the debounce interval as a duration.
func (t *Timing) Debounce() time.Duration {
	return time.Duration(t.DebounceMs) * time.Millisecond
}

// ScanInterval returns the auto-refresh period as a duration.
func (t *Timing) ScanInterval() time.Duration {
	return time.Duration(t.ScanIntervalMs) * time.Millisecond
}

// BLEWindow returns the BLE scan window as a duration.
func (t *Timing) BLEWindow() time.Duration {
	return time.Duration(t.BLEWindowMs) * time.Millisecond
}

// LoopDelay returns the per-iteration loop delay as a duration.
func (t *Timing) LoopDelay() time.Duration {
	return time.Duration(t.LoopDelayMs) * time.Millisecond
}

// Default returns a Config populated with the reference hardware constants:
// 200ms debounce, 10s scan refresh, 2s BLE window, 50ms loop delay, and
// 25-entry registries.
func Default() *Config {
	return &Config{
		Version: 1,
		Buttons: &Buttons{
			UpPin:     32,
			DownPin:   33,
			SelectPin: 25,
			BackPin:   26,
		},
		Timing: &Timing{
			DebounceMs:     200,
			ScanIntervalMs: 10000,
			BLEWindowMs:    2000,
			LoopDelayMs:    50,
		},
		Scanner: &Scanner{
			Capacity: 25,
		},
		Monitor: &Monitor{},
	}
}

// normalize fills in any sections or values missing from a loaded file so
// callers never see nil sections or zero timing.
func (c *Config) normalize() {
	def := Default()
	if c.Buttons == nil {
		c.Buttons = def.Buttons
	}
	if c.Timing == nil {
		c.Timing = def.Timing
	}
	if c.Scanner == nil {
		c.Scanner = def.Scanner
	}
	if c.Monitor == nil {
		c.Monitor = def.Monitor
	}
	if c.Timing.DebounceMs <= 0 {
		c.Timing.DebounceMs = def.Timing.DebounceMs
	}
	if c.Timing.ScanIntervalMs <= 0 {
		c.Timing.ScanIntervalMs = def.Timing.ScanIntervalMs
	}
	if c.Timing.BLEWindowMs <= 0 {
		c.Timing.BLEWindowMs = def.Timing.BLEWindowMs
	}
	if c.Timing.LoopDelayMs <= 0 {
		c.Timing.LoopDelayMs = def.Timing.LoopDelayMs
	}
	if c.Scanner.Capacity <= 0 {
		c.Scanner.Capacity = def.Scanner.Capacity
	}
}
