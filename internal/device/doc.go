// Package device holds the scan-result data model: WiFi network and BLE
// device records plus the bounded registries that store the most recent
// scan pass for each protocol.
//
// Registries are arena-style: a fixed backing buffer and a length, never a
// growing slice. That keeps the memory footprint deterministic on
// constrained hardware. A scan pass always resets a registry before
// repopulating it; results past the capacity are dropped silently, and BLE
// duplicates (same address within one pass) are suppressed, first seen wins.
package device
