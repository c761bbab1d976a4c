package autopilot

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
	"github.com/magic428/px4-offboard-interface/pkg/transport"
)

// fakeClock advances virtual time instantly on every Sleep, so retry
// ceilings and streaming periods run without real delay.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  int
	onSleep func(n int)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.sleeps++
	n := c.sleeps
	hook := c.onSleep
	c.mu.Unlock()
	if hook != nil {
		hook(n)
	}
	return nil
}

// fakeTransport feeds canned messages to the ingest loop and records
// everything written, stamped with virtual time.
type fakeTransport struct {
	clock *fakeClock
	in    chan *mavlink.Message

	mu         sync.Mutex
	open       bool
	writes     []*mavlink.Message
	writeTimes []time.Time
	failWrites int
}

func newFakeTransport(clock *fakeClock) *fakeTransport {
	return &fakeTransport{
		clock: clock,
		in:    make(chan *mavlink.Message, 64),
		open:  true,
	}
}

func (f *fakeTransport) ReadMessage() (*mavlink.Message, error) {
	m, ok := <-f.in
	if !ok {
		return nil, io.EOF
	}
	return m, nil
}

func (f *fakeTransport) WriteMessage(m *mavlink.Message) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return 0, transport.ErrClosed
	}
	f.writeTimes = append(f.writeTimes, f.clock.Now())
	if f.failWrites > 0 {
		f.failWrites--
		return 0, nil
	}
	f.writes = append(f.writes, m)
	return 8 + len(m.Payload), nil
}

func (f *fakeTransport) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *fakeTransport) failNextWrites(n int) {
	f.mu.Lock()
	f.failWrites = n
	f.mu.Unlock()
}

func (f *fakeTransport) commands() []mavlink.CommandLong {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cmds []mavlink.CommandLong
	for _, m := range f.writes {
		if m.MsgID != mavlink.MsgIDCommandLong {
			continue
		}
		var c mavlink.CommandLong
		if c.Unpack(m) == nil {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

func (f *fakeTransport) setpoints() []mavlink.SetPositionTargetLocalNED {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sps []mavlink.SetPositionTargetLocalNED
	for _, m := range f.writes {
		if m.MsgID != mavlink.MsgIDSetPositionTargetLocalNED {
			continue
		}
		var sp mavlink.SetPositionTargetLocalNED
		if sp.Unpack(m) == nil {
			sps = append(sps, sp)
		}
	}
	return sps
}

func (f *fakeTransport) attemptTimes() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	times := make([]time.Time, len(f.writeTimes))
	copy(times, f.writeTimes)
	return times
}

func packed(sysID, compID uint8, pl mavlink.Payload) *mavlink.Message {
	m := &mavlink.Message{SysID: sysID, CompID: compID}
	if err := pl.Pack(m); err != nil {
		panic(err)
	}
	return m
}

func offboardHeartbeat() mavlink.Heartbeat {
	return mavlink.Heartbeat{
		CustomMode:   uint32(mavlink.MainModeOffboard) << 16,
		SystemStatus: mavlink.StateActive,
	}
}

func manualHeartbeat() mavlink.Heartbeat {
	return mavlink.Heartbeat{
		CustomMode:   uint32(mavlink.MainModeManual) << 16,
		SystemStatus: mavlink.StateStandby,
	}
}

// feeder pushes telemetry into the fake transport until stopped, so
// the ingest loop always has a message to observe cancellation after.
type feeder struct {
	tr   *fakeTransport
	stop chan struct{}
	done chan struct{}
}

func startFeeder(tr *fakeTransport, msgs ...*mavlink.Message) *feeder {
	f := &feeder{tr: tr, stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(f.done)
		for i := 0; ; i++ {
			m := msgs[i%len(msgs)]
			select {
			case tr.in <- m:
			case <-f.stop:
				return
			}
		}
	}()
	return f
}

func (f *feeder) halt() {
	close(f.stop)
	<-f.done
}
