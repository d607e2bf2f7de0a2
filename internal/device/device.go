package device

import "fmt"

// Security is the advertised security mode of a WiFi network.
type Security int

const (
	SecurityOpen Security = iota
	SecurityWEP
	SecurityWPA
	SecurityWPA2
	SecurityWPAWPA2
	SecurityWPA2Enterprise
	SecurityUnknown
)

// String returns the display label for the security mode, as shown on the
// channel/security detail page.
func (s Security) String() string {
	switch s {
	case SecurityOpen:
		return "Open"
	case SecurityWEP:
		return "WEP"
	case SecurityWPA:
		return "WPA"
	case SecurityWPA2:
		return "WPA2"
	case SecurityWPAWPA2:
		return "WPA/WPA2"
	case SecurityWPA2Enterprise:
		return "WPA2-E"
	default:
		return "Unknown"
	}
}

// SecurityFromAuthMode maps a raw 802.11 auth-mode code (as reported by the
// WiFi radio) to a Security value. Unrecognized codes map to
// SecurityUnknown rather than failing.
func SecurityFromAuthMode(code int) Security {
	switch code {
	case 0:
		return SecurityOpen
	case 1:
		return SecurityWEP
	case 2:
		return SecurityWPA
	case 3:
		return SecurityWPA2
	case 4:
		return SecurityWPAWPA2
	case 5:
		return SecurityWPA2Enterprise
	default:
		return SecurityUnknown
	}
}

// WiFiNetwork is one found network from a WiFi scan pass. Records are
// created in bulk by a scan and replaced wholesale by the next one.
type WiFiNetwork struct {
	// SSID is the network name. Empty means a hidden network; the
	// renderer substitutes "Hidden Network".
	SSID     string
	BSSID    string
	Channel  int
	RSSI     int // dBm
	Security Security
}

// String returns a compact one-line summary, used by the one-shot CLI scan.
func (n WiFiNetwork) String() string {
	ssid := n.SSID
	if ssid == "" {
		ssid = "Hidden Network"
	}
	return fmt.Sprintf("%-20s %s ch%-3d %4d dBm %s", ssid, n.BSSID, n.Channel, n.RSSI, n.Security)
}

// Placeholder values substituted for absent optional BLE advertisement
// fields at record construction time.
const (
	NoName        = "N/A"
	NoServiceUUID = "None"
)

// BLEDevice is one advertiser found during a BLE scan pass. Address is the
// unique key within a pass.
type BLEDevice struct {
	Name        string
	Address     string
	RSSI        int // dBm, 0 when the advertisement carried none
	TxPower     int // dB, 0 when the advertisement carried none
	ServiceUUID string
}

// NewBLEDevice builds a record from advertisement data, substituting the
// placeholder values for absent name and service UUID. Missing signal
// strength or TX power are conventionally passed as 0 by the radio layer.
func NewBLEDevice(name, address string, rssi, txPower int, serviceUUID string) BLEDevice {
	if name == "" {
		name = NoName
	}
	if serviceUUID == "" {
		serviceUUID = NoServiceUUID
	}
	return BLEDevice{
		Name:        name,
		Address:     address,
		RSSI:        rssi,
		TxPower:     txPower,
		ServiceUUID: serviceUUID,
	}
}

// String returns a compact one-line summary, used by the one-shot CLI scan.
func (d BLEDevice) String() string {
	return fmt.Sprintf("%-20s %s %4d dBm tx %3d %s", d.Name, d.Address, d.RSSI, d.TxPower, d.ServiceUUID)
}
