// Package scan triggers protocol scans and populates the device
// registries.
//
// The Coordinator owns both registries, the radios behind the WiFiRadio
// and BLERadio interfaces, and the last-scan timestamp that drives the
// 10-second auto-refresh. Scans are blocking: a WiFi scan takes as long as
// the driver takes, a BLE scan blocks for the configured window. A radio
// failure degrades to an empty registry; the empty result is accepted and
// not retried until the next natural trigger.
package scan
