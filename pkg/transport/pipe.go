package transport

import (
	"net"
)

// Pipe returns two Transports connected back to back, in memory. One
// end plays the autopilot, the other the companion interface. Intended
// for tests.
func Pipe() (*Stream, *Stream) {
	a, b := net.Pipe()
	return NewStream(a), NewStream(b)
}
