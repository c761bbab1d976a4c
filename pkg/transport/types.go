// Package transport carries framed MAVLink messages over a byte link.
package transport

import (
	"errors"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// Transport moves whole messages across a point-to-point link. Framing
// and checksum verification happen below this interface; callers only
// ever see complete, verified messages.
type Transport interface {
	// ReadMessage blocks until the next verified message arrives. A
	// non-nil error means this round produced no message; the link may
	// still be usable and the caller decides whether to retry.
	ReadMessage() (*mavlink.Message, error)
	// WriteMessage frames and sends a message, returning the number of
	// bytes put on the link. A non-positive count denotes a failed send.
	WriteMessage(*mavlink.Message) (int, error)
	// IsOpen reports whether the underlying link is open.
	IsOpen() bool
}

// ErrClosed is returned for operations on a closed transport.
var ErrClosed = errors.New("transport closed")
