// Package monitor mirrors display frames to WebSocket clients.
//
// The server accepts connections on /frames and pushes every rendered
// frame as a JSON message, newest first on connect, so a browser or a
// second terminal can watch the 16x2 display remotely. It implements
// display.Sink and is wired behind the simulator or hardware sink with
// display.Tee.
package monitor
