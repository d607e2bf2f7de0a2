package radio

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/mdlayher/wifi"
	"go.uber.org/zap"

	"github.com/mvantaa/pocketscan/internal/logging"
	"github.com/mvantaa/pocketscan/internal/scan"
)

// HostWiFiRadio scans through the machine's real wireless interface by
// shelling out to iwlist and parsing its cell dump. Interface discovery
// goes through the nl80211 client when no interface is configured.
type HostWiFiRadio struct {
	iface string

	runScan func(ctx context.Context, iface string) (string, error)
}

// NewHostWiFiRadio builds a host WiFi radio. An empty iface means the
// first wireless interface found on the system is used.
func NewHostWiFiRadio(iface string) *HostWiFiRadio {
	return &HostWiFiRadio{iface: iface, runScan: runIWList}
}

// Scan implements scan.WiFiRadio.
func (r *HostWiFiRadio) Scan(ctx context.Context) ([]scan.WiFiResult, error) {
	iface := r.iface
	if iface == "" {
		found, err := firstWirelessInterface()
		if err != nil {
			return nil, err
		}
		iface = found
	}

	out, err := r.runScan(ctx, iface)
	if err != nil {
		return nil, classifyIWListError(err, out)
	}

	results := parseIWListOutput(out)
	logging.Debug("iwlist scan complete",
		zap.String("interface", iface),
		zap.Int("cells", len(results)),
	)
	return results, nil
}

func firstWirelessInterface() (string, error) {
	client, err := wifi.New()
	if err != nil {
		return "", scan.NewRadioError(scan.RadioErrUnavailable, "wifi", err)
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return "", scan.NewRadioError(scan.RadioErrUnavailable, "wifi", err)
	}
	for _, iface := range ifaces {
		if iface.Name != "" {
			return iface.Name, nil
		}
	}
	return "", scan.NewRadioError(scan.RadioErrUnavailable, "wifi", errors.New("no wireless interface found"))
}

func runIWList(ctx context.Context, iface string) (string, error) {
	cmd := exec.CommandContext(ctx, "iwlist", iface, "scan")
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return errOut.String(), err
	}
	return out.String(), nil
}

func classifyIWListError(err error, stderr string) error {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return scan.NewRadioError(scan.RadioErrUnavailable, "wifi", err)
	case strings.Contains(stderr, "Operation not permitted"):
		return scan.NewRadioError(scan.RadioErrPermission, "wifi", err)
	default:
		return scan.NewRadioError(scan.RadioErrScan, "wifi", err)
	}
}

var (
	ssidRegex    = regexp.MustCompile(`ESSID:"(.*?)"`)
	addressRegex = regexp.MustCompile(`Address: ([0-9A-Fa-f:]+)`)
	channelRegex = regexp.MustCompile(`Channel[: ](\d+)`)
	signalRegex  = regexp.MustCompile(`Signal level=(-?\d+) dBm`)
	encKeyRegex  = regexp.MustCompile(`Encryption key:(on|off)`)
	wpa2Regex    = regexp.MustCompile(`IE: IEEE 802\.11i/WPA2 Version`)
	wpaRegex     = regexp.MustCompile(`IE: WPA Version 1`)
	eapRegex     = regexp.MustCompile(`Authentication Suites \(1\) : 802\.1x`)
)

// parseIWListOutput splits the iwlist dump on cell boundaries and pulls
// one result per cell that carries at least an address and an
// encryption line. The auth mode is reduced to the same codes the
// 802.11 beacon parser would report.
func parseIWListOutput(output string) []scan.WiFiResult {
	var results []scan.WiFiResult

	for _, cell := range strings.Split(output, "Cell ")[1:] {
		address := addressRegex.FindStringSubmatch(cell)
		encryption := encKeyRegex.FindStringSubmatch(cell)
		if len(address) < 2 || len(encryption) < 2 {
			continue
		}

		result := scan.WiFiResult{
			BSSID:    address[1],
			AuthMode: parseAuthMode(encryption[1] == "on", cell),
		}
		if ssid := ssidRegex.FindStringSubmatch(cell); len(ssid) > 1 {
			result.SSID = ssid[1]
		}
		if ch := channelRegex.FindStringSubmatch(cell); len(ch) > 1 {
			result.Channel, _ = strconv.Atoi(ch[1])
		}
		if sig := signalRegex.FindStringSubmatch(cell); len(sig) > 1 {
			result.RSSI, _ = strconv.Atoi(sig[1])
		}
		results = append(results, result)
	}

	return results
}

func parseAuthMode(encrypted bool, cell string) int {
	if !encrypted {
		return 0 // open
	}
	wpa2 := wpa2Regex.MatchString(cell)
	wpa := wpaRegex.MatchString(cell)
	switch {
	case wpa2 && eapRegex.MatchString(cell):
		return 5 // WPA2 enterprise
	case wpa2 && wpa:
		return 4 // mixed WPA/WPA2
	case wpa2:
		return 3
	case wpa:
		return 2
	default:
		return 1 // encryption on with no WPA IE: WEP
	}
}
