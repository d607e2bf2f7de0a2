package render

import (
	"fmt"
	"strings"

	"github.com/mvantaa/pocketscan/internal/device"
	"github.com/mvantaa/pocketscan/internal/nav"
)

// Display geometry of the 16x2 character LCD.
const (
	Columns = 16
	Rows    = 2
)

// HiddenNetwork is shown in place of an empty SSID.
const HiddenNetwork = "Hidden Network"

// Frame is the full content of the display: Rows lines, each at most
// Columns characters.
type Frame struct {
	Lines [Rows]string
}

// Padded returns the lines space-padded to exactly Columns characters,
// for displays without partial-line clearing.
func (f Frame) Padded() [Rows]string {
	var out [Rows]string
	for i, line := range f.Lines {
		out[i] = fmt.Sprintf("%-*s", Columns, line)
	}
	return out
}

// Scanning is the interstitial frame shown while a blocking scan runs.
func Scanning() Frame {
	return Frame{Lines: [Rows]string{"Scanning...", ""}}
}

// Render produces the frame for the given navigation state. cursor and
// page must already be wrapped into range; on list and detail screens with
// a non-empty registry, cursor must be within [0, count).
func Render(screen nav.Screen, cursor, page int, wifi *device.WiFiRegistry, ble *device.BLERegistry) Frame {
	switch screen {
	case nav.MainMenu:
		return renderMainMenu(cursor)
	case nav.WifiList:
		return renderWifiList(cursor, wifi)
	case nav.BleList:
		return renderBleList(cursor, ble)
	case nav.WifiDetail:
		return renderWifiDetail(cursor, page, wifi)
	case nav.BleDetail:
		return renderBleDetail(cursor, page, ble)
	default:
		return Frame{}
	}
}

func renderMainMenu(cursor int) Frame {
	return Frame{Lines: [Rows]string{
		marker(cursor == 0) + "WiFi Scanner",
		marker(cursor == 1) + "BLE Scanner",
	}}
}

func renderWifiList(cursor int, wifi *device.WiFiRegistry) Frame {
	header := truncate(fmt.Sprintf("WiFi Networks %d", wifi.Len()))
	if wifi.Len() == 0 {
		return Frame{Lines: [Rows]string{header, truncate("No networks found")}}
	}

	ssid := wifi.At(cursor).SSID
	if ssid == "" {
		ssid = HiddenNetwork
	}
	return Frame{Lines: [Rows]string{header, truncate("-> " + ssid)}}
}

func renderBleList(cursor int, ble *device.BLERegistry) Frame {
	header := truncate(fmt.Sprintf("BLE Devices   %d", ble.Len()))
	if ble.Len() == 0 {
		return Frame{Lines: [Rows]string{header, truncate("No devices found")}}
	}

	return Frame{Lines: [Rows]string{header, truncate("-> " + ble.At(cursor).Name)}}
}

func renderWifiDetail(cursor, page int, wifi *device.WiFiRegistry) Frame {
	n := wifi.At(cursor)

	top := n.SSID
	if top == "" {
		top = HiddenNetwork
	}
	top = truncate(strings.TrimSpace(top))

	var bottom string
	switch page {
	case 0:
		bottom = fmt.Sprintf("RSSI: %d dBm", n.RSSI)
	case 1:
		bottom = n.BSSID
	case 2:
		bottom = fmt.Sprintf("Ch: %d Sec: %s", n.Channel, n.Security)
	}

	return Frame{Lines: [Rows]string{top, truncate(bottom)}}
}

func renderBleDetail(cursor, page int, ble *device.BLERegistry) Frame {
	d := ble.At(cursor)

	top := truncate(strings.TrimSpace(d.Name))

	var bottom string
	switch page {
	case 0:
		bottom = fmt.Sprintf("RSSI: %d dBm", d.RSSI)
	case 1:
		bottom = d.Address
	case 2:
		bottom = fmt.Sprintf("TX Power: %d dB", d.TxPower)
	case 3:
		bottom = "UUID:" + d.ServiceUUID
	}

	return Frame{Lines: [Rows]string{top, truncate(bottom)}}
}

func marker(selected bool) string {
	if selected {
		return "-> "
	}
	return "   "
}

// truncate clips a line to the display width, rune-safe.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= Columns {
		return s
	}
	return string(runes[:Columns])
}
