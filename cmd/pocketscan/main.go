// Pocketscan is a handheld-style WiFi and BLE network scanner.
//
// It reimplements the pocket scanner firmware loop — a 16x2 character
// display, four buttons, and blocking WiFi/BLE sweeps — on top of either
// simulated radios or the host machine's real adapters.
//
// Usage:
//
//	pocketscan [command] [flags]
//
// Running without arguments launches the interactive simulator.
// See 'pocketscan --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvantaa/pocketscan/internal/logging"
	"github.com/mvantaa/pocketscan/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pocketscan",
	Short: "Handheld WiFi/BLE scanner",
	Long: `A handheld-style network scanner with a simulated 16x2 display.

Navigate with the four buttons: a main menu, WiFi and BLE result lists,
and per-device detail pages. Scans block the loop exactly like the
hardware, and lists auto-refresh every 10 seconds.

If no command is specified, the interactive simulator launches.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the simulator when no subcommand
		// is provided
		return runSimulator(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pocketscan %s\n", version.Full())
	},
}
