package autopilot

import (
	"sync"
	"time"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// Entry is one cached telemetry value with its arrival time.
type Entry struct {
	Payload any
	At      time.Time
}

// Cache holds the most recently observed payload of each recognized
// message kind. It is written only by the ingest loop and read by the
// streaming loop, the mode protocols and external consumers. Payload
// and timestamp are always updated together under the lock, so readers
// never observe a partially-updated entry.
type Cache struct {
	now func() time.Time

	mu      sync.RWMutex
	sysID   uint8
	compID  uint8
	entries map[mavlink.MsgID]Entry
}

// NewCache creates a Cache stamping entries with the given time source.
func NewCache(now func() time.Time) *Cache {
	return &Cache{
		now:     now,
		entries: make(map[mavlink.MsgID]Entry),
	}
}

// Record stores the payload for kind and stamps it with the current time.
func (c *Cache) Record(kind mavlink.MsgID, payload any) {
	at := c.now()
	c.mu.Lock()
	c.entries[kind] = Entry{Payload: payload, At: at}
	c.mu.Unlock()
}

// Get returns the cached payload and timestamp for kind.
func (c *Cache) Get(kind mavlink.MsgID) (any, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[kind]
	return e.Payload, e.At, ok
}

// Snapshot returns a point-in-time copy of the full cache.
func (c *Cache) Snapshot() map[mavlink.MsgID]Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap := make(map[mavlink.MsgID]Entry, len(c.entries))
	for k, e := range c.entries {
		snap[k] = e
	}
	return snap
}

// SetSender records the identifiers of the most recent message sender.
func (c *Cache) SetSender(sysID, compID uint8) {
	c.mu.Lock()
	c.sysID, c.compID = sysID, compID
	c.mu.Unlock()
}

// Sender returns the identifiers of the most recent message sender.
// Zero values mean no message has been seen yet.
func (c *Cache) Sender() (sysID, compID uint8) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sysID, c.compID
}

// Heartbeat returns the latest cached heartbeat.
func (c *Cache) Heartbeat() (mavlink.Heartbeat, time.Time, bool) {
	pl, at, ok := c.Get(mavlink.MsgIDHeartbeat)
	if !ok {
		return mavlink.Heartbeat{}, at, false
	}
	hb, ok := pl.(mavlink.Heartbeat)
	return hb, at, ok
}

// LocalPosition returns the latest cached local NED position.
func (c *Cache) LocalPosition() (mavlink.LocalPositionNED, time.Time, bool) {
	pl, at, ok := c.Get(mavlink.MsgIDLocalPositionNED)
	if !ok {
		return mavlink.LocalPositionNED{}, at, false
	}
	pos, ok := pl.(mavlink.LocalPositionNED)
	return pos, at, ok
}

// Attitude returns the latest cached attitude.
func (c *Cache) Attitude() (mavlink.Attitude, time.Time, bool) {
	pl, at, ok := c.Get(mavlink.MsgIDAttitude)
	if !ok {
		return mavlink.Attitude{}, at, false
	}
	att, ok := pl.(mavlink.Attitude)
	return att, at, ok
}
