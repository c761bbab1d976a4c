// Package mavlink implements the subset of the MAVLink v1 wire protocol
// needed to drive a PX4-class autopilot in offboard mode.
package mavlink

// The package covers framing (start byte, X25 checksum with per-message
// CRC extra) and the typed payloads for the recognized telemetry set plus
// the outgoing command and setpoint messages.
//
// Producer: flight controller autopilot
// Consumer: companion computer interface
