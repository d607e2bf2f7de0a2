package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mvantaa/pocketscan/internal/device"
	"github.com/mvantaa/pocketscan/internal/nav"
)

type fakeWiFiRadio struct {
	results []WiFiResult
	err     error
	calls   int
}

func (f *fakeWiFiRadio) Scan(ctx context.Context) ([]WiFiResult, error) {
	f.calls++
	return f.results, f.err
}

type fakeBLERadio struct {
	advs   []BLEAdvertisement
	err    error
	calls  int
	window time.Duration
}

func (f *fakeBLERadio) Scan(ctx context.Context, window time.Duration) ([]BLEAdvertisement, error) {
	f.calls++
	f.window = window
	return f.advs, f.err
}

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCoordinator(wifi *fakeWiFiRadio, ble *fakeBLERadio) (*Coordinator, *testClock) {
	clock := &testClock{t: time.Unix(5000, 0)}
	c := NewCoordinator(wifi, ble, device.DefaultCapacity, DefaultInterval, DefaultBLEWindow).WithClock(clock.now)
	return c, clock
}

func TestScanWiFiPopulatesRegistry(t *testing.T) {
	radio := &fakeWiFiRadio{results: []WiFiResult{
		{SSID: "HomeNet", BSSID: "aa:aa:aa:aa:aa:aa", Channel: 6, RSSI: -48, AuthMode: 3},
		{SSID: "", BSSID: "bb:bb:bb:bb:bb:bb", Channel: 11, RSSI: -77, AuthMode: 0},
		{SSID: "Corp", BSSID: "cc:cc:cc:cc:cc:cc", Channel: 1, RSSI: -60, AuthMode: 42},
	}}
	c, _ := newTestCoordinator(radio, &fakeBLERadio{})

	if err := c.ScanWiFi(context.Background()); err != nil {
		t.Fatalf("ScanWiFi() error = %v", err)
	}

	if c.WiFiCount() != 3 {
		t.Fatalf("WiFiCount() = %d, want 3", c.WiFiCount())
	}

	first := c.WiFi().At(0)
	if first.SSID != "HomeNet" || first.Security != device.SecurityWPA2 {
		t.Errorf("At(0) = %+v, want HomeNet/WPA2", first)
	}
	if got := c.WiFi().At(1).Security; got != device.SecurityOpen {
		t.Errorf("At(1).Security = %v, want Open", got)
	}
	// Unmapped auth codes degrade to Unknown, never an error.
	if got := c.WiFi().At(2).Security; got != device.SecurityUnknown {
		t.Errorf("At(2).Security = %v, want Unknown", got)
	}
}

func TestScanWiFiCapsAtCapacity(t *testing.T) {
	var results []WiFiResult
	for i := 0; i < device.DefaultCapacity+10; i++ {
		results = append(results, WiFiResult{SSID: fmt.Sprintf("net-%d", i)})
	}
	c, _ := newTestCoordinator(&fakeWiFiRadio{results: results}, &fakeBLERadio{})

	if err := c.ScanWiFi(context.Background()); err != nil {
		t.Fatalf("ScanWiFi() error = %v", err)
	}
	if c.WiFiCount() != device.DefaultCapacity {
		t.Errorf("WiFiCount() = %d, want %d", c.WiFiCount(), device.DefaultCapacity)
	}
}

func TestScanWiFiErrorDegradesToEmpty(t *testing.T) {
	radio := &fakeWiFiRadio{err: NewRadioError(RadioErrUnavailable, "wifi", errors.New("no interface"))}
	c, clock := newTestCoordinator(radio, &fakeBLERadio{})

	// Seed a previous pass so we can see the reset.
	radioOK := &fakeWiFiRadio{results: []WiFiResult{{SSID: "old"}}}
	c.wifiRadio = radioOK
	if err := c.ScanWiFi(context.Background()); err != nil {
		t.Fatalf("seed scan error = %v", err)
	}
	c.wifiRadio = radio

	if err := c.ScanWiFi(context.Background()); err == nil {
		t.Fatal("ScanWiFi() error = nil, want radio error")
	}
	if c.WiFiCount() != 0 {
		t.Errorf("WiFiCount() = %d, want 0 after failed scan", c.WiFiCount())
	}
	// The failed pass still stamps the scan time: an empty result is
	// accepted, not retried early.
	if !c.LastScan().Equal(clock.t) {
		t.Errorf("LastScan() = %v, want %v", c.LastScan(), clock.t)
	}
}

func TestScanBLEDeduplicatesAndDefaults(t *testing.T) {
	radio := &fakeBLERadio{advs: []BLEAdvertisement{
		{Name: "Beacon", Address: "aa:bb:cc:dd:ee:ff", RSSI: -55, TxPower: 4, ServiceUUID: "180f"},
		{Name: "Beacon later", Address: "aa:bb:cc:dd:ee:ff", RSSI: -80},
		{Address: "11:22:33:44:55:66"},
	}}
	c, _ := newTestCoordinator(&fakeWiFiRadio{}, radio)

	if err := c.ScanBLE(context.Background()); err != nil {
		t.Fatalf("ScanBLE() error = %v", err)
	}

	if c.BLECount() != 2 {
		t.Fatalf("BLECount() = %d, want 2 after dedup", c.BLECount())
	}
	// First seen wins for a duplicated address.
	if got := c.BLE().At(0).Name; got != "Beacon" {
		t.Errorf("At(0).Name = %q, want Beacon", got)
	}
	// Absent optionals get the display placeholders.
	second := c.BLE().At(1)
	if second.Name != "N/A" || second.ServiceUUID != "None" || second.RSSI != 0 || second.TxPower != 0 {
		t.Errorf("At(1) = %+v, want placeholder defaults", second)
	}
}

func TestScanBLEUsesConfiguredWindow(t *testing.T) {
	radio := &fakeBLERadio{}
	c, _ := newTestCoordinator(&fakeWiFiRadio{}, radio)

	if err := c.ScanBLE(context.Background()); err != nil {
		t.Fatalf("ScanBLE() error = %v", err)
	}
	if radio.window != DefaultBLEWindow {
		t.Errorf("scan window = %v, want %v", radio.window, DefaultBLEWindow)
	}
}

func TestRefresh(t *testing.T) {
	tests := []struct {
		name     string
		screen   nav.Screen
		wantRan  bool
		wantWiFi int
		wantBLE  int
	}{
		{"wifi list scans wifi", nav.WifiList, true, 1, 0},
		{"ble list scans ble", nav.BleList, true, 0, 1},
		{"main menu scans nothing", nav.MainMenu, false, 0, 0},
		{"detail screens scan nothing", nav.WifiDetail, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wifi := &fakeWiFiRadio{}
			ble := &fakeBLERadio{}
			c, _ := newTestCoordinator(wifi, ble)

			if ran := c.Refresh(context.Background(), tt.screen); ran != tt.wantRan {
				t.Errorf("Refresh() = %v, want %v", ran, tt.wantRan)
			}
			if wifi.calls != tt.wantWiFi {
				t.Errorf("wifi radio calls = %d, want %d", wifi.calls, tt.wantWiFi)
			}
			if ble.calls != tt.wantBLE {
				t.Errorf("ble radio calls = %d, want %d", ble.calls, tt.wantBLE)
			}
		})
	}
}

func TestNeedsRefresh(t *testing.T) {
	c, clock := newTestCoordinator(&fakeWiFiRadio{}, &fakeBLERadio{})

	if err := c.ScanWiFi(context.Background()); err != nil {
		t.Fatalf("ScanWiFi() error = %v", err)
	}

	if c.NeedsRefresh(nav.WifiList) {
		t.Error("NeedsRefresh() = true right after a scan, want false")
	}

	clock.advance(9 * time.Second)
	if c.NeedsRefresh(nav.WifiList) {
		t.Error("NeedsRefresh() = true at 9s, want false")
	}

	clock.advance(2 * time.Second)
	if !c.NeedsRefresh(nav.WifiList) {
		t.Error("NeedsRefresh() = false at 11s, want true")
	}

	// Only scan-list screens auto-refresh.
	if c.NeedsRefresh(nav.MainMenu) || c.NeedsRefresh(nav.WifiDetail) {
		t.Error("NeedsRefresh() = true on a non-list screen, want false")
	}
}

func TestRadioError(t *testing.T) {
	underlying := errors.New("hci0 down")
	err := NewRadioError(RadioErrPermission, "ble", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() = false, want unwrap to underlying error")
	}
	want := "ble radio: permission denied: hci0 down"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
