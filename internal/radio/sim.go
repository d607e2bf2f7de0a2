package radio

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mvantaa/pocketscan/internal/scan"
)

// simScanLatency is how long a simulated WiFi sweep takes, so the
// interstitial frame is actually visible in the simulator.
const simScanLatency = 700 * time.Millisecond

// simWifiPool is the fixed neighborhood the simulated WiFi radio draws
// from. One entry has no SSID to exercise the hidden-network path.
var simWifiPool = []scan.WiFiResult{
	{SSID: "HomeFibre-5G", BSSID: "a4:91:b1:0c:22:01", Channel: 36, AuthMode: 3},
	{SSID: "HomeFibre", BSSID: "a4:91:b1:0c:22:02", Channel: 6, AuthMode: 3},
	{SSID: "CoffeeCorner Guest", BSSID: "f0:9f:c2:71:aa:10", Channel: 1, AuthMode: 0},
	{SSID: "TP-Link_8F31", BSSID: "50:c7:bf:44:8f:31", Channel: 11, AuthMode: 4},
	{SSID: "", BSSID: "dc:a6:32:09:41:7b", Channel: 3, AuthMode: 3},
	{SSID: "corp-byod", BSSID: "00:1a:1e:90:be:40", Channel: 44, AuthMode: 5},
	{SSID: "PrinterDirect-c4", BSSID: "ac:18:26:55:c4:90", Channel: 6, AuthMode: 2},
	{SSID: "ye-olde-wep", BSSID: "00:14:bf:3d:77:05", Channel: 9, AuthMode: 1},
}

// simBlePool is the neighborhood for the simulated BLE radio. Names and
// service UUIDs are deliberately absent on some entries, and serviceUUID
// values are derived deterministically from the device name so repeated
// runs look consistent.
var simBlePool = []scan.BLEAdvertisement{
	{Name: "PixelBuds", Address: "54:6c:0e:11:ab:01", TxPower: 4},
	{Name: "Tile_Keys", Address: "e0:9d:13:52:cc:02", TxPower: -3},
	{Name: "", Address: "7b:22:18:04:de:03"},
	{Name: "MX Master 3", Address: "f1:38:29:66:ef:04", TxPower: 0},
	{Name: "Polar H10", Address: "a0:9e:1a:73:11:05", TxPower: 5},
	{Name: "", Address: "49:0f:27:8e:02:06", TxPower: -8},
}

func init() {
	for i := range simBlePool {
		if simBlePool[i].Name == "" {
			continue
		}
		simBlePool[i].ServiceUUID = uuid.NewSHA1(uuid.NameSpaceOID, []byte(simBlePool[i].Name)).String()
	}
}

// SimWiFiRadio synthesizes WiFi scan results from a fixed pool with
// per-scan membership and signal jitter.
type SimWiFiRadio struct {
	rng     *rand.Rand
	latency time.Duration
}

// NewSimWiFiRadio builds a simulated WiFi radio seeded for reproducible
// sequences.
func NewSimWiFiRadio(seed int64) *SimWiFiRadio {
	return &SimWiFiRadio{
		rng:     rand.New(rand.NewSource(seed)),
		latency: simScanLatency,
	}
}

// Scan implements scan.WiFiRadio.
func (r *SimWiFiRadio) Scan(ctx context.Context) ([]scan.WiFiResult, error) {
	if err := simSleep(ctx, r.latency); err != nil {
		return nil, err
	}

	var results []scan.WiFiResult
	for _, n := range simWifiPool {
		// Each network is visible most sweeps but not all, like a
		// real noisy environment.
		if r.rng.Intn(10) < 2 {
			continue
		}
		n.RSSI = -30 - r.rng.Intn(60)
		results = append(results, n)
	}
	return results, nil
}

// SimBLERadio synthesizes BLE advertisements, repeating some addresses
// within a window the way a real active scan does.
type SimBLERadio struct {
	rng *rand.Rand
}

// NewSimBLERadio builds a simulated BLE radio seeded for reproducible
// sequences.
func NewSimBLERadio(seed int64) *SimBLERadio {
	return &SimBLERadio{rng: rand.New(rand.NewSource(seed))}
}

// Scan implements scan.BLERadio. It blocks for the full window.
func (r *SimBLERadio) Scan(ctx context.Context, window time.Duration) ([]scan.BLEAdvertisement, error) {
	if err := simSleep(ctx, window); err != nil {
		return nil, err
	}

	var advs []scan.BLEAdvertisement
	for _, d := range simBlePool {
		if r.rng.Intn(10) < 3 {
			continue
		}
		// One to three advertisements per device per window.
		for n := 1 + r.rng.Intn(3); n > 0; n-- {
			d.RSSI = -25 - r.rng.Intn(70)
			advs = append(advs, d)
		}
	}
	return advs, nil
}

func simSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
