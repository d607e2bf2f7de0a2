// Package radio provides the WiFi and BLE scan backends.
//
// Two families exist: simulated radios that synthesize plausible scan
// results for the simulator and for demos on machines without radio
// hardware, and host radios that drive the machine's real adapters
// (iwlist over the wireless interface, the HCI socket for BLE). Both
// satisfy the scan.WiFiRadio and scan.BLERadio interfaces.
package radio
