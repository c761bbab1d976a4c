package autopilot

import "errors"

var (
	// ErrTransportNotOpen indicates the transport was not open at startup.
	ErrTransportNotOpen = errors.New("transport not open")
	// ErrOffboardDenied indicates the retry ceiling for entering offboard
	// control was exhausted without confirmation. Operating without
	// confirmed offboard engagement is unsafe, so this is fatal.
	ErrOffboardDenied = errors.New("offboard control not confirmed")
	// ErrArmDenied indicates the retry ceiling for arming was exhausted
	// without the vehicle reporting armed.
	ErrArmDenied = errors.New("arming not confirmed")
	// ErrNotStarted indicates an operation that requires running loops.
	ErrNotStarted = errors.New("interface not started")
)
