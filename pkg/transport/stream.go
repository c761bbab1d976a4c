package transport

import (
	"io"
	"sync"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// Stream adapts any byte-oriented connection into a Transport using
// MAVLink v1 framing.
type Stream struct {
	conn io.ReadWriteCloser
	dec  *mavlink.Decoder
	enc  *mavlink.Encoder

	mu   sync.Mutex
	open bool
}

// NewStream wraps an open connection.
func NewStream(conn io.ReadWriteCloser) *Stream {
	return &Stream{
		conn: conn,
		dec:  mavlink.NewDecoder(conn),
		enc:  mavlink.NewEncoder(conn),
		open: true,
	}
}

// ReadMessage implements Transport.
func (s *Stream) ReadMessage() (*mavlink.Message, error) {
	if !s.IsOpen() {
		return nil, ErrClosed
	}
	return s.dec.Decode()
}

// WriteMessage implements Transport.
func (s *Stream) WriteMessage(m *mavlink.Message) (int, error) {
	if !s.IsOpen() {
		return 0, ErrClosed
	}
	return s.enc.EncodeMessage(m)
}

// IsOpen implements Transport.
func (s *Stream) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Close closes the underlying connection.
func (s *Stream) Close() error {
	s.mu.Lock()
	if !s.open {
		s.mu.Unlock()
		return nil
	}
	s.open = false
	s.mu.Unlock()
	return s.conn.Close()
}
