package transport

import (
	"fmt"
	"net"
)

// Dial connects to an autopilot endpoint over TCP or UDP, typically a
// SITL simulator, and wraps the connection into a Transport.
func Dial(network, address string) (*Stream, error) {
	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", network, address, err)
	}
	return NewStream(conn), nil
}
