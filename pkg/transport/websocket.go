package transport

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
)

// wsLink is the slice of *websocket.Conn the adapter needs.
type wsLink interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// wsConn adapts a WebSocket connection to byte-level reads and writes.
// Binary messages are buffered and drained like a stream; other message
// types and empty frames are skipped, so Read never returns (0, nil).
type wsConn struct {
	conn wsLink
	buf  []byte
	off  int
}

func (w *wsConn) Read(p []byte) (int, error) {
	if w.off < len(w.buf) {
		n := copy(p, w.buf[w.off:])
		w.off += n
		return n, nil
	}
	for {
		messageType, data, err := w.conn.ReadMessage()
		if err != nil {
			return 0, err
		}
		if messageType != websocket.BinaryMessage || len(data) == 0 {
			continue
		}
		w.buf = data
		w.off = copy(p, w.buf)
		return w.off, nil
	}
}

func (w *wsConn) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (w *wsConn) Close() error {
	return w.conn.Close()
}

// DialWebSocket connects to a WebSocket bridge relaying the autopilot
// link (e.g. a telemetry gateway on the vehicle network).
func DialWebSocket(wsURL string) (*Stream, error) {
	u, err := url.Parse(wsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket dial %s: %w", wsURL, err)
	}
	return NewStream(&wsConn{conn: conn}), nil
}
