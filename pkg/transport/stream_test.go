package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

func TestPipeRoundTrip(t *testing.T) {
	fc, companion := Pipe()
	defer fc.Close()
	defer companion.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		m := &mavlink.Message{SysID: 1, CompID: 50}
		require.NoError(t, (&mavlink.Heartbeat{SystemStatus: mavlink.StateActive}).Pack(m))
		n, err := fc.WriteMessage(m)
		require.NoError(t, err)
		require.Positive(t, n)
	}()

	m, err := companion.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, mavlink.MsgIDHeartbeat, m.MsgID)
	require.Equal(t, uint8(1), m.SysID)

	var hb mavlink.Heartbeat
	require.NoError(t, hb.Unpack(m))
	require.Equal(t, mavlink.StateActive, hb.SystemStatus)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("writer did not finish")
	}
}

func TestClosedTransport(t *testing.T) {
	a, b := Pipe()
	require.True(t, a.IsOpen())
	require.NoError(t, a.Close())
	require.False(t, a.IsOpen())

	_, err := a.ReadMessage()
	require.ErrorIs(t, err, ErrClosed)

	m := &mavlink.Message{}
	require.NoError(t, (&mavlink.Heartbeat{}).Pack(m))
	n, err := a.WriteMessage(m)
	require.ErrorIs(t, err, ErrClosed)
	require.Zero(t, n)

	b.Close()
}
