package scan

import (
	"context"
	"fmt"
	"time"
)

// WiFiResult is one raw network as reported by a WiFi radio, before it is
// mapped into a device.WiFiNetwork.
type WiFiResult struct {
	SSID     string
	BSSID    string
	Channel  int
	RSSI     int // dBm
	AuthMode int // raw 802.11 auth-mode code; mapped via device.SecurityFromAuthMode
}

// BLEAdvertisement is one raw advertisement as reported by a BLE radio.
// Absent optional fields are zero values; the coordinator substitutes the
// display placeholders at record construction.
type BLEAdvertisement struct {
	Name        string
	Address     string
	RSSI        int
	TxPower     int
	ServiceUUID string
}

// WiFiRadio is the WiFi scan collaborator. Scan blocks for a
// driver-dependent duration and returns the found networks in driver
// order. Implementations free any driver-side result memory before
// returning.
type WiFiRadio interface {
	Scan(ctx context.Context) ([]WiFiResult, error)
}

// BLERadio is the BLE scan collaborator. Scan runs an active scan for the
// given window and returns the collected advertisements, duplicates
// included; deduplication is the registry's job. Implementations clear the
// underlying scan buffer before returning.
type BLERadio interface {
	Scan(ctx context.Context, window time.Duration) ([]BLEAdvertisement, error)
}

// RadioErrorKind categorizes radio failures.
type RadioErrorKind int

const (
	// RadioErrUnavailable means the radio hardware or driver could not
	// be opened at all.
	RadioErrUnavailable RadioErrorKind = iota
	// RadioErrPermission means the process lacks the privileges the
	// driver requires (raw sockets, netlink).
	RadioErrPermission
	// RadioErrScan means the scan itself failed after the radio opened.
	RadioErrScan
)

// String returns a human-readable name for the error kind.
func (k RadioErrorKind) String() string {
	switch k {
	case RadioErrUnavailable:
		return "radio unavailable"
	case RadioErrPermission:
		return "permission denied"
	case RadioErrScan:
		return "scan failed"
	default:
		return fmt.Sprintf("RadioErrorKind(%d)", k)
	}
}

// RadioError is a classified radio failure. The coordinator logs these and
// degrades to an empty registry; the CLI scan commands surface them.
type RadioError struct {
	Kind     RadioErrorKind
	Protocol string // "wifi" or "ble"
	Err      error
}

// Error implements the error interface
func (e *RadioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s radio: %s: %v", e.Protocol, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s radio: %s", e.Protocol, e.Kind)
}

// Unwrap returns the underlying error for error chain inspection
func (e *RadioError) Unwrap() error { return e.Err }

// NewRadioError wraps err with a kind and protocol tag.
func NewRadioError(kind RadioErrorKind, protocol string, err error) *RadioError {
	return &RadioError{Kind: kind, Protocol: protocol, Err: err}
}
