package device

import (
	mapset "github.com/deckarep/golang-set"
)

// DefaultCapacity is the registry size of the reference hardware.
const DefaultCapacity = 25

// WiFiRegistry is a bounded, ordered collection of WiFi scan results.
// Not safe for concurrent use; the firmware loop is single-threaded.
type WiFiRegistry struct {
	networks []WiFiNetwork
	count    int
}

// NewWiFiRegistry allocates a registry with the given capacity.
// A capacity <= 0 falls back to DefaultCapacity.
func NewWiFiRegistry(capacity int) *WiFiRegistry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &WiFiRegistry{networks: make([]WiFiNetwork, capacity)}
}

// Reset clears the registry ahead of a new scan pass. The backing buffer is
// retained; no allocation happens per scan.
func (r *WiFiRegistry) Reset() {
	r.count = 0
}

// Add appends a network. Returns false when the registry is full; the
// record is dropped with no error signaled.
func (r *WiFiRegistry) Add(n WiFiNetwork) bool {
	if r.count >= len(r.networks) {
		return false
	}
	r.networks[r.count] = n
	r.count++
	return true
}

// Len returns the number of records from the current scan pass.
func (r *WiFiRegistry) Len() int { return r.count }

// Capacity returns the fixed registry capacity.
func (r *WiFiRegistry) Capacity() int { return len(r.networks) }

// At returns the record at index i. The index must be in [0, Len()).
func (r *WiFiRegistry) At(i int) WiFiNetwork { return r.networks[i] }

// BLERegistry is a bounded, ordered collection of BLE scan results with
// per-pass address deduplication. Not safe for concurrent use.
type BLERegistry struct {
	devices []BLEDevice
	count   int

	// seen tracks addresses added during the current pass. Dedup is
	// pass-local: Reset clears it along with the records.
	seen mapset.Set
}

// NewBLERegistry allocates a registry with the given capacity.
// A capacity <= 0 falls back to DefaultCapacity.
func NewBLERegistry(capacity int) *BLERegistry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &BLERegistry{
		devices: make([]BLEDevice, capacity),
		seen:    mapset.NewSet(),
	}
}

// Reset clears the registry and the seen-address set ahead of a new scan
// pass.
func (r *BLERegistry) Reset() {
	r.count = 0
	r.seen = mapset.NewSet()
}

// Add appends a device unless its address was already seen in this pass or
// the registry is full. The first record for an address wins. Returns true
// when the record was stored.
func (r *BLERegistry) Add(d BLEDevice) bool {
	if r.count >= len(r.devices) {
		return false
	}
	if !r.seen.Add(d.Address) {
		return false
	}
	r.devices[r.count] = d
	r.count++
	return true
}

// Len returns the number of records from the current scan pass.
func (r *BLERegistry) Len() int { return r.count }

// Capacity returns the fixed registry capacity.
func (r *BLERegistry) Capacity() int { return len(r.devices) }

// At returns the record at index i. The index must be in [0, Len()).
func (r *BLERegistry) At(i int) BLEDevice { return r.devices[i] }
