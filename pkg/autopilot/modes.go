package autopilot

import (
	"context"

	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// IsArmed reports whether the latest heartbeat shows the vehicle armed
// and active. Derived on demand, never stored.
func (a *Interface) IsArmed() bool {
	hb, _, ok := a.cache.Heartbeat()
	return ok && hb.SystemStatus == mavlink.StateActive
}

// InOffboardMode reports whether the latest heartbeat shows the
// autopilot accepting externally supplied setpoints.
func (a *Interface) InOffboardMode() bool {
	hb, _, ok := a.cache.Heartbeat()
	return ok && hb.MainMode() == mavlink.MainModeOffboard
}

// EnableOffboardControl drives the autopilot into offboard mode with
// bounded retries. It is a no-op when offboard mode is already engaged.
// Each attempt sends the enable command, waits one retry interval and
// re-checks the heartbeat, so a late confirmation is observed before a
// redundant command goes out. Exhausting the ceiling returns
// ErrOffboardDenied: operating without confirmed engagement is unsafe
// and the caller must treat it as fatal.
func (a *Interface) EnableOffboardControl(ctx context.Context) error {
	if a.InOffboardMode() {
		return nil
	}
	glog.Info("enabling offboard control")
	for i := 0; i < a.cfg.OffboardRetries; i++ {
		a.sendCommand(mavlink.CmdNavGuidedEnable, 1)
		if err := a.clock.Sleep(ctx, a.cfg.OffboardInterval); err != nil {
			return err
		}
		if a.InOffboardMode() {
			glog.Infof("offboard control confirmed after %d attempt(s)", i+1)
			return nil
		}
	}
	glog.Errorf("offboard control not confirmed after %d attempts", a.cfg.OffboardRetries)
	return ErrOffboardDenied
}

// DisableOffboardControl hands control back to the autopilot's native
// modes. That direction is always safe to request, so the disable
// command is sent once without waiting for confirmation. No-op when
// offboard mode is already disengaged.
func (a *Interface) DisableOffboardControl() {
	if !a.InOffboardMode() {
		return
	}
	glog.Info("disabling offboard control")
	a.sendCommand(mavlink.CmdNavGuidedEnable, 0)
}

// Arm drives the vehicle to the armed state with bounded retries. The
// armed predicate is checked before every send, so it is a no-op when
// the vehicle is already armed. Exhausting the ceiling returns
// ErrArmDenied.
func (a *Interface) Arm(ctx context.Context) error {
	glog.Info("arming vehicle")
	for i := 0; i < a.cfg.ArmRetries; i++ {
		if a.IsArmed() {
			glog.Info("vehicle armed")
			return nil
		}
		a.sendCommand(mavlink.CmdComponentArmDisarm, 1)
		if err := a.clock.Sleep(ctx, a.cfg.ArmInterval); err != nil {
			return err
		}
	}
	if a.IsArmed() {
		glog.Info("vehicle armed")
		return nil
	}
	glog.Errorf("vehicle did not arm after %d attempts", a.cfg.ArmRetries)
	return ErrArmDenied
}

// Disarm sends the disarm command once. Disarming is the safe default,
// so no confirmation retry is performed.
func (a *Interface) Disarm() {
	glog.Info("disarming vehicle")
	a.sendCommand(mavlink.CmdComponentArmDisarm, 0)
}
