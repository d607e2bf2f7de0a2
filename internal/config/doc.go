// Package config provides user configuration management for pocketscan.
//
// The configuration is a YAML file holding the hardware and timing knobs of
// the scanner: button pin assignments, debounce interval, scan refresh
// interval, BLE scan window, registry capacity, and the host WiFi interface
// used when running against real radios. Scan results themselves are never
// persisted; all device state is volatile and reset on startup.
//
// # Configuration File Location
//
// The file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/pocketscan/config.yaml or $HOME/.config/pocketscan/config.yaml
//   - macOS: $HOME/.config/pocketscan/config.yaml
//   - Windows: %LOCALAPPDATA%\pocketscan\config.yaml
//
// Saves are atomic (write to a temp file, then rename) so a crash cannot
// leave a half-written config behind.
package config
