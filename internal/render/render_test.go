package render

import (
	"fmt"
	"testing"

	"github.com/mvantaa/pocketscan/internal/device"
	"github.com/mvantaa/pocketscan/internal/nav"
)

func wifiRegistry(networks ...device.WiFiNetwork) *device.WiFiRegistry {
	r := device.NewWiFiRegistry(device.DefaultCapacity)
	for _, n := range networks {
		r.Add(n)
	}
	return r
}

func bleRegistry(devices ...device.BLEDevice) *device.BLERegistry {
	r := device.NewBLERegistry(device.DefaultCapacity)
	for _, d := range devices {
		r.Add(d)
	}
	return r
}

func TestRenderMainMenu(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   [2]string
	}{
		{"wifi selected", 0, [2]string{"-> WiFi Scanner", "   BLE Scanner"}},
		{"ble selected", 1, [2]string{"   WiFi Scanner", "-> BLE Scanner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Render(nav.MainMenu, tt.cursor, 0, wifiRegistry(), bleRegistry())
			if f.Lines != tt.want {
				t.Errorf("Render() = %q, want %q", f.Lines, tt.want)
			}
		})
	}
}

func TestRenderWifiListHeaderCount(t *testing.T) {
	// The header shows the live count for any fill level.
	for _, n := range []int{0, 1, 7, device.DefaultCapacity} {
		t.Run(fmt.Sprintf("count %d", n), func(t *testing.T) {
			r := device.NewWiFiRegistry(device.DefaultCapacity)
			for i := 0; i < n; i++ {
				r.Add(device.WiFiNetwork{SSID: fmt.Sprintf("net-%d", i)})
			}

			f := Render(nav.WifiList, 0, 0, r, bleRegistry())
			want := fmt.Sprintf("WiFi Networks %d", n)
			if f.Lines[0] != want {
				t.Errorf("header = %q, want %q", f.Lines[0], want)
			}
		})
	}
}

func TestRenderWifiListEmpty(t *testing.T) {
	f := Render(nav.WifiList, 0, 0, wifiRegistry(), bleRegistry())

	// 17 characters clip to the 16-column row, as on the hardware.
	if f.Lines[1] != "No networks foun" {
		t.Errorf("row1 = %q, want %q", f.Lines[1], "No networks foun")
	}
}

func TestRenderBleListEmpty(t *testing.T) {
	f := Render(nav.BleList, 0, 0, wifiRegistry(), bleRegistry())

	if f.Lines[0] != "BLE Devices   0" {
		t.Errorf("row0 = %q, want %q", f.Lines[0], "BLE Devices   0")
	}
	if f.Lines[1] != "No devices found" {
		t.Errorf("row1 = %q, want %q", f.Lines[1], "No devices found")
	}
}

func TestRenderWifiListSelection(t *testing.T) {
	reg := wifiRegistry(
		device.WiFiNetwork{SSID: "Alpha"},
		device.WiFiNetwork{SSID: "Beta"},
		device.WiFiNetwork{SSID: ""},
	)

	tests := []struct {
		name   string
		cursor int
		want   string
	}{
		{"first entry", 0, "-> Alpha"},
		{"second entry", 1, "-> Beta"},
		{"hidden network placeholder", 2, "-> Hidden Networ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Render(nav.WifiList, tt.cursor, 0, reg, bleRegistry())
			if f.Lines[1] != tt.want {
				t.Errorf("row1 = %q, want %q", f.Lines[1], tt.want)
			}
		})
	}
}

func TestRenderListTruncation(t *testing.T) {
	reg := wifiRegistry(device.WiFiNetwork{SSID: "A Very Long Network Name"})

	f := Render(nav.WifiList, 0, 0, reg, bleRegistry())
	if got := len([]rune(f.Lines[1])); got != Columns {
		t.Fatalf("row1 length = %d, want %d", got, Columns)
	}
	if f.Lines[1] != "-> A Very Long N" {
		t.Errorf("row1 = %q, want %q", f.Lines[1], "-> A Very Long N")
	}
}

func TestRenderWifiDetailPages(t *testing.T) {
	reg := wifiRegistry(device.WiFiNetwork{
		SSID:     "HomeNet",
		BSSID:    "aa:bb:cc:dd:ee:ff",
		Channel:  11,
		RSSI:     -62,
		Security: device.SecurityWPA2,
	})

	tests := []struct {
		name string
		page int
		want string
	}{
		{"rssi page", 0, "RSSI: -62 dBm"},
		{"mac page", 1, "aa:bb:cc:dd:ee:f"},
		{"channel and security page", 2, "Ch: 11 Sec: WPA2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Render(nav.WifiDetail, 0, tt.page, reg, bleRegistry())
			if f.Lines[0] != "HomeNet" {
				t.Errorf("row0 = %q, want %q", f.Lines[0], "HomeNet")
			}
			if f.Lines[1] != tt.want {
				t.Errorf("row1 = %q, want %q", f.Lines[1], tt.want)
			}
		})
	}
}

func TestRenderWifiDetailHiddenNetwork(t *testing.T) {
	reg := wifiRegistry(device.WiFiNetwork{SSID: "", RSSI: -80})

	f := Render(nav.WifiDetail, 0, 0, reg, bleRegistry())
	if f.Lines[0] != "Hidden Network" {
		t.Errorf("row0 = %q, want %q", f.Lines[0], "Hidden Network")
	}
}

func TestRenderBleDetailPages(t *testing.T) {
	reg := bleRegistry(device.NewBLEDevice("Tracker", "11:22:33:44:55:66", -71, 4, "180f"))

	tests := []struct {
		name string
		page int
		want string
	}{
		{"rssi page", 0, "RSSI: -71 dBm"},
		{"address page", 1, "11:22:33:44:55:6"},
		{"tx power page", 2, "TX Power: 4 dB"},
		{"service uuid page", 3, "UUID:180f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Render(nav.BleDetail, 0, tt.page, wifiRegistry(), reg)
			if f.Lines[0] != "Tracker" {
				t.Errorf("row0 = %q, want %q", f.Lines[0], "Tracker")
			}
			if f.Lines[1] != tt.want {
				t.Errorf("row1 = %q, want %q", f.Lines[1], tt.want)
			}
		})
	}
}

func TestRenderBleDetailPlaceholders(t *testing.T) {
	reg := bleRegistry(device.NewBLEDevice("", "aa:aa:aa:aa:aa:aa", 0, 0, ""))

	f := Render(nav.BleDetail, 0, 0, wifiRegistry(), reg)
	if f.Lines[0] != "N/A" {
		t.Errorf("row0 = %q, want %q", f.Lines[0], "N/A")
	}

	f = Render(nav.BleDetail, 0, 3, wifiRegistry(), reg)
	if f.Lines[1] != "UUID:None" {
		t.Errorf("row1 = %q, want %q", f.Lines[1], "UUID:None")
	}
}

func TestScanningFrame(t *testing.T) {
	f := Scanning()
	if f.Lines[0] != "Scanning..." || f.Lines[1] != "" {
		t.Errorf("Scanning() = %q", f.Lines)
	}
}

func TestFramePadded(t *testing.T) {
	f := Frame{Lines: [Rows]string{"short", ""}}
	padded := f.Padded()

	for i, line := range padded {
		if len(line) != Columns {
			t.Errorf("Padded()[%d] length = %d, want %d", i, len(line), Columns)
		}
	}
	if padded[0] != "short           " {
		t.Errorf("Padded()[0] = %q", padded[0])
	}
}
