package autopilot

import (
	"context"
	"testing"
	"time"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
	"github.com/stretchr/testify/require"
)

// telemetry returns one round of handshake traffic from system 1,
// autopilot component 50.
func telemetry() []*mavlink.Message {
	hb := offboardHeartbeat()
	return []*mavlink.Message{
		packed(1, 50, &hb),
		packed(1, 50, &mavlink.SysStatus{BatteryRemaining: 80}),
		packed(1, 50, &mavlink.LocalPositionNED{X: 1, Y: 2, Z: -3, Vx: 0.1}),
		packed(1, 50, &mavlink.Attitude{Yaw: 0.5, YawSpeed: 0.01}),
	}
}

func TestStartLearnsEndpointIdentifiers(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	f := startFeeder(tr, telemetry()...)
	defer f.halt()

	require.NoError(t, a.Start(context.Background()))

	sys, ap, local := a.Identifiers()
	require.Equal(t, uint8(1), sys, "system id learned from the first message")
	require.Equal(t, uint8(50), ap, "autopilot component learned from the first message")
	require.Equal(t, uint8(DefaultLocalComponentID), local)

	pose := a.InitialPose()
	require.Equal(t, float32(1), pose.X)
	require.Equal(t, float32(-3), pose.Z)
	require.Equal(t, float32(0.5), pose.Yaw)

	ingest, stream := a.LoopStates()
	require.Equal(t, LoopRunning, ingest)
	require.Equal(t, LoopRunning, stream)
	require.False(t, a.LastSend().IsZero(), "startup completes only after the first transmission")

	require.NoError(t, a.Stop())
	ingest, stream = a.LoopStates()
	require.Equal(t, LoopStopped, ingest, "stop joins the ingest loop")
	require.Equal(t, LoopStopped, stream, "stop joins the streaming loop")
}

func TestStartKeepsManualIdentifiers(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock, SystemID: 3, AutopilotID: 7})

	f := startFeeder(tr, telemetry()...)
	defer f.halt()

	require.NoError(t, a.Start(context.Background()))
	defer a.Stop()

	sys, ap, _ := a.Identifiers()
	require.Equal(t, uint8(3), sys, "manual override wins over learned ids")
	require.Equal(t, uint8(7), ap)
}

func TestStartRequiresOpenTransport(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	tr.open = false
	a := New(Config{Transport: tr, Clock: clock})

	require.ErrorIs(t, a.Start(context.Background()), ErrTransportNotOpen)
	require.ErrorIs(t, a.Stop(), ErrNotStarted)
}

func TestStopBeforeStart(t *testing.T) {
	a := New(Config{Transport: newFakeTransport(newFakeClock())})
	require.ErrorIs(t, a.Stop(), ErrNotStarted)
}

func TestStreamDefaultsToHold(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	f := startFeeder(tr, telemetry()...)
	defer f.halt()

	require.NoError(t, a.Start(context.Background()))
	require.Equal(t, HoldSetpoint(), a.Setpoint())
	require.NoError(t, a.Stop())

	sps := tr.setpoints()
	require.NotEmpty(t, sps)
	wantMask := mavlink.IgnoreAll &^ (mavlink.IgnoreVelocity | mavlink.IgnoreYawRate)
	for _, sp := range sps {
		require.Equal(t, wantMask, sp.TypeMask, "every transmission without a producer is the hold setpoint")
		require.Zero(t, sp.Vx)
		require.Zero(t, sp.Vy)
		require.Zero(t, sp.Vz)
		require.Zero(t, sp.YawRate)
		require.Equal(t, uint8(1), sp.TargetSystem)
		require.Equal(t, uint8(50), sp.TargetComponent)
		require.Equal(t, uint8(mavlink.FrameLocalNED), sp.CoordinateFrame)
	}
}

func TestStreamPicksUpUpdatedSetpoint(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	f := startFeeder(tr, telemetry()...)
	defer f.halt()

	require.NoError(t, a.Start(context.Background()))
	defer a.Stop()

	var sp Setpoint
	sp.SetPosition(10, 20, -5)
	a.UpdateSetpoint(sp)
	require.Equal(t, sp, a.Setpoint())

	require.Eventually(t, a.SetpointSent, time.Second, time.Millisecond,
		"the streaming loop must pick up the new setpoint on a following tick")

	sps := tr.setpoints()
	last := sps[len(sps)-1]
	require.Equal(t, mavlink.IgnoreAll&^mavlink.IgnorePosition, last.TypeMask)
	require.Equal(t, float32(10), last.X)
	require.Equal(t, float32(-5), last.Z)
}

func TestStreamPeriodHeldUnderWriteFailures(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock, StreamPeriod: 200 * time.Millisecond})

	tr.failNextWrites(3)

	f := startFeeder(tr, telemetry()...)
	defer f.halt()

	require.NoError(t, a.Start(context.Background()),
		"startup rides out transient write failures")
	require.Eventually(t, func() bool { return len(tr.attemptTimes()) >= 10 },
		time.Second, time.Millisecond)
	require.NoError(t, a.Stop())

	times := tr.attemptTimes()
	require.GreaterOrEqual(t, len(times), 10)
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		require.Less(t, gap, 300*time.Millisecond,
			"a failed attempt must not widen the transmission cadence")
	}
}

func TestStartAbortsOnCancel(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, a.Start(ctx), context.Canceled)
	ingest, stream := a.LoopStates()
	require.NotEqual(t, LoopRunning, ingest, "abort must not leave the ingest loop running")
	require.Equal(t, LoopNotStarted, stream)
}

func TestStopAfterFailedStartReturns(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, a.Start(ctx), context.Canceled)

	// The failed start already joined the loops; the fallback cleanup
	// must come back immediately instead of joining a second time.
	errCh := make(chan error, 1)
	go func() { errCh <- a.Stop() }()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, ErrNotStarted)
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

func TestStopTwice(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	f := startFeeder(tr, telemetry()...)
	defer f.halt()

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Stop())

	errCh := make(chan error, 1)
	go func() { errCh <- a.Stop() }()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, ErrNotStarted)
	case <-time.After(2 * time.Second):
		t.Fatal("second Stop blocked")
	}
}

func TestLoopStatesDuringHandshake(t *testing.T) {
	clock := newFakeClock()
	tr := newFakeTransport(clock)
	a := New(Config{Transport: tr, Clock: clock})

	// No traffic arrives, so Start stays in the handshake.
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- a.Start(ctx) }()

	require.Eventually(t, func() bool {
		ingest, _ := a.LoopStates()
		return ingest == LoopHandshaking
	}, time.Second, time.Millisecond)
	_, stream := a.LoopStates()
	require.Equal(t, LoopNotStarted, stream, "streaming starts only after the handshake")

	cancel()
	close(tr.in) // unblock the pending read
	require.ErrorIs(t, <-errCh, context.Canceled)
}
