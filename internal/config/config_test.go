package config

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Version != 1 {
		t.Errorf("Default().Version = %d, want 1", cfg.Version)
	}
	if cfg.Timing.DebounceMs != 200 {
		t.Errorf("Default().Timing.DebounceMs = %d, want 200", cfg.Timing.DebounceMs)
	}
	if cfg.Timing.ScanIntervalMs != 10000 {
		t.Errorf("Default().Timing.ScanIntervalMs = %d, want 10000", cfg.Timing.ScanIntervalMs)
	}
	if cfg.Timing.BLEWindowMs != 2000 {
		t.Errorf("Default().Timing.BLEWindowMs = %d, want 2000", cfg.Timing.BLEWindowMs)
	}
	if cfg.Scanner.Capacity != 25 {
		t.Errorf("Default().Scanner.Capacity = %d, want 25", cfg.Scanner.Capacity)
	}
	if cfg.Buttons.UpPin != 32 || cfg.Buttons.DownPin != 33 || cfg.Buttons.SelectPin != 25 || cfg.Buttons.BackPin != 26 {
		t.Errorf("Default().Buttons = %+v, want pins 32/33/25/26", cfg.Buttons)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full document",
			yaml: `
version: 1
buttons:
  up_pin: 12
  down_pin: 13
  select_pin: 14
  back_pin: 15
timing:
  debounce_ms: 150
  scan_interval_ms: 5000
  ble_window_ms: 3000
  loop_delay_ms: 25
scanner:
  capacity: 10
  wifi_interface: wlan1
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Buttons.UpPin != 12 {
					t.Errorf("UpPin = %d, want 12", cfg.Buttons.UpPin)
				}
				if cfg.Timing.DebounceMs != 150 {
					t.Errorf("DebounceMs = %d, want 150", cfg.Timing.DebounceMs)
				}
				if cfg.Scanner.Capacity != 10 {
					t.Errorf("Capacity = %d, want 10", cfg.Scanner.Capacity)
				}
				if cfg.Scanner.WiFiInterface != "wlan1" {
					t.Errorf("WiFiInterface = %q, want wlan1", cfg.Scanner.WiFiInterface)
				}
			},
		},
		{
			name: "missing sections filled with defaults",
			yaml: "version: 1\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Timing == nil || cfg.Timing.DebounceMs != 200 {
					t.Errorf("Timing not defaulted: %+v", cfg.Timing)
				}
				if cfg.Scanner == nil || cfg.Scanner.Capacity != 25 {
					t.Errorf("Scanner not defaulted: %+v", cfg.Scanner)
				}
			},
		},
		{
			name: "zero timing values defaulted",
			yaml: `
version: 1
timing:
  debounce_ms: 0
  scan_interval_ms: -5
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Timing.DebounceMs != 200 {
					t.Errorf("DebounceMs = %d, want 200", cfg.Timing.DebounceMs)
				}
				if cfg.Timing.ScanIntervalMs != 10000 {
					t.Errorf("ScanIntervalMs = %d, want 10000", cfg.Timing.ScanIntervalMs)
				}
			},
		},
		{
			name:    "unsupported version",
			yaml:    "version: 2\n",
			wantErr: "unsupported config version",
		},
		{
			name:    "malformed yaml",
			yaml:    "version: [1\n",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestTimingDurations(t *testing.T) {
	timing := &Timing{DebounceMs: 200, ScanIntervalMs: 10000, BLEWindowMs: 2000, LoopDelayMs: 50}

	if got := timing.Debounce().Milliseconds(); got != 200 {
		t.Errorf("Debounce() = %dms, want 200ms", got)
	}
	if got := timing.ScanInterval().Seconds(); got != 10 {
		t.Errorf("ScanInterval() = %vs, want 10s", got)
	}
	if got := timing.BLEWindow().Seconds(); got != 2 {
		t.Errorf("BLEWindow() = %vs, want 2s", got)
	}
	if got := timing.LoopDelay().Milliseconds(); got != 50 {
		t.Errorf("LoopDelay() = %dms, want 50ms", got)
	}
}
