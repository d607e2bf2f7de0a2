package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvantaa/pocketscan/internal/app"
	"github.com/mvantaa/pocketscan/internal/config"
	"github.com/mvantaa/pocketscan/internal/display"
	"github.com/mvantaa/pocketscan/internal/input"
	"github.com/mvantaa/pocketscan/internal/monitor"
	"github.com/mvantaa/pocketscan/internal/nav"
	"github.com/mvantaa/pocketscan/internal/radio"
	"github.com/mvantaa/pocketscan/internal/scan"
	"github.com/mvantaa/pocketscan/internal/tui"
)

// Command flags
var (
	radioMode   string
	simSeed     int64
	monitorAddr string
	wifiIface   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&radioMode, "radios", "sim", "Radio backend: sim or host")
	rootCmd.PersistentFlags().Int64Var(&simSeed, "seed", 0, "Seed for the simulated radios (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&wifiIface, "interface", "", "Wireless interface for host mode (default: first found)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

// runCmd launches the interactive simulator (also the root default)
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the interactive scanner simulator",
	Long: `Launch the scanner with the terminal simulator as its display.

The arrow keys (or j/k), enter, and escape map onto the four hardware
buttons. With --radios host the sweeps use the machine's real WiFi and
BLE adapters; the default simulated radios need no hardware or
privileges.

With --monitor the rendered frames are also mirrored to WebSocket
clients on /frames, so the display can be watched from a browser or a
second terminal.`,
	Example: `  # Simulated radios, reproducible neighborhood
  pocketscan run --seed 42

  # Real adapters (needs iwlist and HCI access)
  sudo pocketscan run --radios host --interface wlan0

  # Mirror the display over WebSocket
  pocketscan run --monitor 127.0.0.1:8734`,
	RunE: runSimulator,
}

func init() {
	runCmd.Flags().StringVar(&monitorAddr, "monitor", "", "Listen address for the WebSocket frame mirror")
}

func runSimulator(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	wifiRadio, bleRadio := buildRadios(cfg)
	coord := scan.NewCoordinator(wifiRadio, bleRadio, cfg.Scanner.Capacity,
		cfg.Timing.ScanInterval(), cfg.Timing.BLEWindow())
	machine := nav.NewMachine(coord)

	pins := tui.NewVirtualPins()
	sampler := input.NewSampler(pins, cfg.Timing.Debounce())
	program := tui.NewProgram(pins)

	var sink display.Sink = program

	// Optional WebSocket mirror, flag overriding the config file
	mirrorAddr := cfg.Monitor.ListenAddr
	if monitorAddr != "" {
		mirrorAddr = monitorAddr
	}
	if mirrorAddr != "" {
		mirror := monitor.New(mirrorAddr)
		mirror.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = mirror.Shutdown(shutdownCtx)
		}()
		sink = display.Tee{program, mirror}
	}

	loop := app.New(sampler, machine, coord, sink, cfg.Timing.LoopDelay())

	// The firmware loop runs beside the TUI; quitting the TUI cancels it.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go func() {
		_ = loop.Run(ctx)
	}()

	if err := program.Run(); err != nil {
		return fmt.Errorf("simulator error: %w", err)
	}
	return nil
}

// scanCmd runs one-shot scans without the simulator
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a one-shot scan and print the results",
}

var scanWifiCmd = &cobra.Command{
	Use:   "wifi",
	Short: "Scan for WiFi networks",
	Long: `Run a single blocking WiFi sweep and print every network found,
up to the configured registry capacity.`,
	Example: `  # Simulated sweep
  pocketscan scan wifi

  # Real adapter
  sudo pocketscan scan wifi --radios host --interface wlan0`,
	RunE: runScanWifi,
}

var scanBleCmd = &cobra.Command{
	Use:   "ble",
	Short: "Scan for BLE devices",
	Long: `Run a single active BLE scan for the configured window and print
every distinct device seen. Duplicate advertisements from the same
address are collapsed to the first sighting.`,
	Example: `  # Simulated window
  pocketscan scan ble

  # Real adapter (needs HCI access)
  sudo pocketscan scan ble --radios host`,
	RunE: runScanBle,
}

func init() {
	scanCmd.AddCommand(scanWifiCmd)
	scanCmd.AddCommand(scanBleCmd)
}

func runScanWifi(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	wifiRadio, bleRadio := buildRadios(cfg)
	coord := scan.NewCoordinator(wifiRadio, bleRadio, cfg.Scanner.Capacity,
		cfg.Timing.ScanInterval(), cfg.Timing.BLEWindow())

	fmt.Println("Scanning for WiFi networks...")
	if err := coord.ScanWiFi(cmd.Context()); err != nil {
		return scanError(err)
	}

	wifi := coord.WiFi()
	if wifi.Len() == 0 {
		fmt.Println("No networks found.")
		return nil
	}

	fmt.Printf("Found %d network(s):\n\n", wifi.Len())
	for i := 0; i < wifi.Len(); i++ {
		fmt.Printf("%2d. %s\n", i+1, wifi.At(i))
	}
	return nil
}

func runScanBle(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	wifiRadio, bleRadio := buildRadios(cfg)
	coord := scan.NewCoordinator(wifiRadio, bleRadio, cfg.Scanner.Capacity,
		cfg.Timing.ScanInterval(), cfg.Timing.BLEWindow())

	fmt.Printf("Scanning for BLE devices (%s window)...\n", cfg.Timing.BLEWindow())
	if err := coord.ScanBLE(cmd.Context()); err != nil {
		return scanError(err)
	}

	ble := coord.BLE()
	if ble.Len() == 0 {
		fmt.Println("No devices found.")
		return nil
	}

	fmt.Printf("Found %d device(s):\n\n", ble.Len())
	for i := 0; i < ble.Len(); i++ {
		fmt.Printf("%2d. %s\n", i+1, ble.At(i))
	}
	return nil
}

// scanError adds a usage hint for the failures a first run typically hits.
func scanError(err error) error {
	var radioErr *scan.RadioError
	if errors.As(err, &radioErr) {
		switch radioErr.Kind {
		case scan.RadioErrPermission:
			return fmt.Errorf("%w\n\nHost radio access usually requires root; try again with sudo", err)
		case scan.RadioErrUnavailable:
			return fmt.Errorf("%w\n\nNo usable adapter found; check --interface or use --radios sim", err)
		}
	}
	return err
}

// configCmd manages the configuration file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if err := config.CreateDefaultConfig(); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
		fmt.Printf("Wrote default configuration to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// buildRadios constructs the scan backends for the selected mode. An
// unknown mode falls back to the simulated radios.
func buildRadios(cfg *config.Config) (scan.WiFiRadio, scan.BLERadio) {
	if radioMode == "host" {
		iface := wifiIface
		if iface == "" {
			iface = cfg.Scanner.WiFiInterface
		}
		return radio.NewHostWiFiRadio(iface), radio.NewHostBLERadio()
	}

	seed := simSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return radio.NewSimWiFiRadio(seed), radio.NewSimBLERadio(seed + 1)
}
