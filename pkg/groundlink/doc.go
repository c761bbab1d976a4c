// Package groundlink bridges the autopilot interface to a ground
// station over MQTT: it publishes periodic telemetry snapshots and
// accepts vehicle commands.
package groundlink
