package scan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mvantaa/pocketscan/internal/device"
	"github.com/mvantaa/pocketscan/internal/logging"
	"github.com/mvantaa/pocketscan/internal/nav"
)

// Defaults matching the reference hardware.
const (
	DefaultInterval  = 10 * time.Second
	DefaultBLEWindow = 2 * time.Second
)

// Coordinator triggers protocol scans, populates the registries, and
// tracks the last-scan time for auto-refresh. Not safe for concurrent use;
// the firmware loop is single-threaded.
type Coordinator struct {
	wifiRadio WiFiRadio
	bleRadio  BLERadio

	wifi *device.WiFiRegistry
	ble  *device.BLERegistry

	interval time.Duration
	window   time.Duration

	lastScan time.Time
	now      func() time.Time
}

// NewCoordinator wires the radios to fresh registries of the given
// capacity. Non-positive interval, window, or capacity fall back to the
// reference defaults.
func NewCoordinator(wifiRadio WiFiRadio, bleRadio BLERadio, capacity int, interval, window time.Duration) *Coordinator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if window <= 0 {
		window = DefaultBLEWindow
	}
	return &Coordinator{
		wifiRadio: wifiRadio,
		bleRadio:  bleRadio,
		wifi:      device.NewWiFiRegistry(capacity),
		ble:       device.NewBLERegistry(capacity),
		interval:  interval,
		window:    window,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// WiFi returns the WiFi registry.
func (c *Coordinator) WiFi() *device.WiFiRegistry { return c.wifi }

// BLE returns the BLE registry.
func (c *Coordinator) BLE() *device.BLERegistry { return c.ble }

// WiFiCount implements nav.Registries.
func (c *Coordinator) WiFiCount() int { return c.wifi.Len() }

// BLECount implements nav.Registries.
func (c *Coordinator) BLECount() int { return c.ble.Len() }

// LastScan returns the time of the most recent scan pass (zero before the
// first one).
func (c *Coordinator) LastScan() time.Time { return c.lastScan }

// ScanWiFi runs a blocking WiFi scan pass. The registry is reset first and
// repopulated up to capacity; an error leaves it empty, which is a valid
// result. The last-scan time is stamped either way so a failed pass is not
// retried before the next natural trigger.
func (c *Coordinator) ScanWiFi(ctx context.Context) error {
	c.wifi.Reset()
	defer c.stamp()

	start := c.now()
	results, err := c.wifiRadio.Scan(ctx)
	if err != nil {
		logging.Warn("WiFi scan failed, keeping empty registry", zap.Error(err))
		return err
	}

	for _, r := range results {
		if !c.wifi.Add(device.WiFiNetwork{
			SSID:     r.SSID,
			BSSID:    r.BSSID,
			Channel:  r.Channel,
			RSSI:     r.RSSI,
			Security: device.SecurityFromAuthMode(r.AuthMode),
		}) {
			break
		}
	}

	logging.LogScan("wifi", c.wifi.Len(), c.now().Sub(start))
	return nil
}

// ScanBLE runs a blocking active BLE scan for the configured window. The
// registry is reset first; duplicate addresses within the pass are
// suppressed and absent optional fields get their placeholders. An error
// leaves the registry empty, which is a valid result.
func (c *Coordinator) ScanBLE(ctx context.Context) error {
	c.ble.Reset()
	defer c.stamp()

	start := c.now()
	advs, err := c.bleRadio.Scan(ctx, c.window)
	if err != nil {
		logging.Warn("BLE scan failed, keeping empty registry", zap.Error(err))
		return err
	}

	for _, adv := range advs {
		c.ble.Add(device.NewBLEDevice(adv.Name, adv.Address, adv.RSSI, adv.TxPower, adv.ServiceUUID))
		if c.ble.Len() >= c.ble.Capacity() {
			break
		}
	}

	logging.LogScan("ble", c.ble.Len(), c.now().Sub(start))
	return nil
}

// Refresh runs the scan matching the active screen. Errors are already
// degraded to an empty registry inside the scan methods, so Refresh only
// reports whether a scan ran at all.
func (c *Coordinator) Refresh(ctx context.Context, screen nav.Screen) bool {
	switch screen {
	case nav.WifiList:
		_ = c.ScanWiFi(ctx)
		return true
	case nav.BleList:
		_ = c.ScanBLE(ctx)
		return true
	default:
		return false
	}
}

// NeedsRefresh reports whether the auto-refresh interval has elapsed while
// a scan-list screen is active.
func (c *Coordinator) NeedsRefresh(screen nav.Screen) bool {
	if !screen.IsScanList() {
		return false
	}
	return c.now().Sub(c.lastScan) > c.interval
}

func (c *Coordinator) stamp() {
	c.lastScan = c.now()
}
