package autopilot

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
	"github.com/stretchr/testify/require"
)

func TestCacheRecordReplacesWholesale(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(clock.Now)

	c.Record(mavlink.MsgIDHeartbeat, mavlink.Heartbeat{CustomMode: 1})
	hb, at1, ok := c.Heartbeat()
	require.True(t, ok)
	require.Equal(t, uint32(1), hb.CustomMode)

	clock.Sleep(context.Background(), time.Second)
	c.Record(mavlink.MsgIDHeartbeat, mavlink.Heartbeat{CustomMode: 2})
	hb, at2, ok := c.Heartbeat()
	require.True(t, ok)
	require.Equal(t, uint32(2), hb.CustomMode)
	require.True(t, at2.After(at1))
}

func TestCacheMissingEntry(t *testing.T) {
	c := NewCache(time.Now)

	_, _, ok := c.Heartbeat()
	require.False(t, ok)
	_, _, ok = c.Get(mavlink.MsgIDVfrHud)
	require.False(t, ok)
}

func TestCacheStampsMonotonic(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(clock.Now)

	var last time.Time
	for i := 0; i < 10; i++ {
		c.Record(mavlink.MsgIDAttitude, mavlink.Attitude{TimeBootMs: uint32(i)})
		_, at, ok := c.Get(mavlink.MsgIDAttitude)
		require.True(t, ok)
		require.False(t, at.Before(last))
		last = at
		clock.Sleep(context.Background(), 10*time.Millisecond)
	}
}

func TestCacheSnapshotIsCopy(t *testing.T) {
	c := NewCache(time.Now)
	c.Record(mavlink.MsgIDHeartbeat, mavlink.Heartbeat{CustomMode: 7})

	snap := c.Snapshot()
	require.Len(t, snap, 1)

	c.Record(mavlink.MsgIDAttitude, mavlink.Attitude{})
	require.Len(t, snap, 1, "snapshot must not track later writes")
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache(time.Now)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.Record(mavlink.MsgIDLocalPositionNED, mavlink.LocalPositionNED{X: float32(i)})
			c.SetSender(1, 50)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if pos, _, ok := c.LocalPosition(); ok {
				require.GreaterOrEqual(t, pos.X, float32(0))
			}
			c.Sender()
			c.Snapshot()
		}
	}()
	wg.Wait()
}

func TestCacheSender(t *testing.T) {
	c := NewCache(time.Now)

	sys, comp := c.Sender()
	require.Zero(t, sys)
	require.Zero(t, comp)

	c.SetSender(1, 50)
	sys, comp = c.Sender()
	require.Equal(t, uint8(1), sys)
	require.Equal(t, uint8(50), comp)
}
