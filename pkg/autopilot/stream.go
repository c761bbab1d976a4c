package autopilot

import (
	"context"

	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// runStream keeps the autopilot continuously supplied with setpoints.
// The period is a hard external constraint: falling silent for longer
// than the offboard failsafe timeout hands control back to the
// autopilot's own logic.
func (a *Interface) runStream(ctx context.Context) error {
	a.streamState.Store(int32(LoopHandshaking))
	defer a.streamState.Store(int32(LoopStopped))

	// Hold position until a producer supplies a real setpoint.
	a.store.install(HoldSetpoint())

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		a.writeSetpoint()
		if err := a.clock.Sleep(ctx, a.cfg.StreamPeriod); err != nil {
			return err
		}
	}
}

// writeSetpoint transmits the current setpoint, stamped with the
// current time and the learned endpoint identifiers. A failed send is
// tolerated; the next tick retries with fresh data.
func (a *Interface) writeSetpoint() {
	sysID, autopilotID, localComp := a.ids()
	sp := a.store.get()
	pl := sp.payload(timeBootMs(a.clock.Now()), sysID, autopilotID)

	m := &mavlink.Message{SysID: sysID, CompID: localComp}
	if err := pl.Pack(m); err != nil {
		glog.Warningf("pack setpoint: %v", err)
		return
	}

	a.writing.Store(true)
	n, err := a.tr.WriteMessage(m)
	a.writing.Store(false)
	if err != nil || n <= 0 {
		glog.Warningf("could not send setpoint (n=%d): %v", n, err)
		return
	}

	a.lastSend.Store(a.clock.Now().UnixNano())
	a.store.markSent()
	a.firstSendOnce.Do(func() { close(a.firstSend) })
}
