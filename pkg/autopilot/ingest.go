package autopilot

import (
	"context"

	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// runIngest drains the transport, decodes recognized message kinds and
// records them into the cache. Cancellation is observed at the top of
// each iteration, never mid-read.
func (a *Interface) runIngest(ctx context.Context) error {
	a.ingestState.Store(int32(LoopHandshaking))
	defer a.ingestState.Store(int32(LoopStopped))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		m, err := a.tr.ReadMessage()
		if err != nil {
			// A failed read is non-fatal; back off briefly and retry.
			glog.V(2).Infof("read failed: %v", err)
			if err := a.clock.Sleep(ctx, readRetryWait); err != nil {
				return err
			}
			continue
		}

		a.cache.SetSender(m.SysID, m.CompID)
		a.dispatch(m)
		a.firstMsgOnce.Do(func() { close(a.firstMsg) })

		// Yield while the streaming loop is writing, so the link is
		// not starved. Advisory only.
		if a.writing.Load() {
			if err := a.clock.Sleep(ctx, writeYield); err != nil {
				return err
			}
		}
	}
}

// dispatch decodes a message of a recognized kind into its typed
// payload and records it. Unrecognized kinds are silently dropped.
func (a *Interface) dispatch(m *mavlink.Message) {
	var (
		pl  any
		err error
	)
	switch m.MsgID {
	case mavlink.MsgIDHeartbeat:
		var v mavlink.Heartbeat
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDSysStatus:
		var v mavlink.SysStatus
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDBatteryStatus:
		var v mavlink.BatteryStatus
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDRadioStatus:
		var v mavlink.RadioStatus
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDLocalPositionNED:
		var v mavlink.LocalPositionNED
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDGlobalPositionInt:
		var v mavlink.GlobalPositionInt
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDPositionTargetLocalNED:
		var v mavlink.PositionTargetLocalNED
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDPositionTargetGlobalInt:
		var v mavlink.PositionTargetGlobalInt
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDHighresIMU:
		var v mavlink.HighresIMU
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDAttitude:
		var v mavlink.Attitude
		err = v.Unpack(m)
		pl = v
	case mavlink.MsgIDVfrHud:
		var v mavlink.VfrHud
		err = v.Unpack(m)
		pl = v
	default:
		glog.V(2).Infof("dropping unrecognized message id %d", m.MsgID)
		return
	}
	if err != nil {
		glog.Warningf("decode %s: %v", m, err)
		return
	}
	a.cache.Record(m.MsgID, pl)
}
