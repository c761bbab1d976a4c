package autopilot

import (
	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// sendCommand transmits a fire-and-forget COMMAND_LONG. There is no
// synchronous acknowledgment; success is inferred later from telemetry.
// A failed send is logged and recovered locally.
func (a *Interface) sendCommand(command uint16, param float32) {
	sysID, autopilotID, localComp := a.ids()
	pl := &mavlink.CommandLong{
		Param1:          param,
		Command:         command,
		TargetSystem:    sysID,
		TargetComponent: autopilotID,
		Confirmation:    1,
	}
	m := &mavlink.Message{SysID: sysID, CompID: localComp}
	if err := pl.Pack(m); err != nil {
		glog.Warningf("pack command %d: %v", command, err)
		return
	}
	n, err := a.tr.WriteMessage(m)
	if err != nil || n <= 0 {
		glog.Warningf("could not send command %d (n=%d): %v", command, n, err)
	}
}

// Land commands an autonomous landing at the current position.
func (a *Interface) Land() {
	glog.Info("commanding land")
	a.sendCommand(mavlink.CmdNavLand, 1)
}

// ReturnToLaunch commands a return to the launch position.
func (a *Interface) ReturnToLaunch() {
	glog.Info("commanding return to launch")
	a.sendCommand(mavlink.CmdNavReturnToLaunch, 1)
}
