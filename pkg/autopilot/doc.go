// Package autopilot drives a PX4-class flight controller over a
// point-to-point MAVLink link: it ingests telemetry into a shared cache,
// streams motion setpoints fast enough to hold off the autopilot's
// offboard failsafe, and runs the bounded-retry protocols for arming and
// offboard mode entry.
package autopilot
