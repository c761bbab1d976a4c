package groundlink

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/autopilot"
	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// Topics relative to the queue's prefix.
const (
	TopicTelemetry = "telemetry"
	TopicCommands  = "commands"
)

// DefaultTelemetryInterval is how often telemetry is published.
const DefaultTelemetryInterval = time.Second

// Vehicle is the slice of the autopilot interface the bridge drives.
type Vehicle interface {
	Cache() *autopilot.Cache
	UpdateSetpoint(autopilot.Setpoint)
	Land()
	ReturnToLaunch()
	Disarm()
}

// Bridge publishes telemetry snapshots at a fixed interval and applies
// ground station commands to the vehicle. It runs as a Runnable inside
// the process runner.
type Bridge struct {
	VehicleID string
	Interval  time.Duration

	queue   *Queue
	vehicle Vehicle
}

// NewBridge creates a Bridge between a queue and a vehicle.
func NewBridge(queue *Queue, vehicle Vehicle, vehicleID string) *Bridge {
	return &Bridge{
		VehicleID: vehicleID,
		Interval:  DefaultTelemetryInterval,
		queue:     queue,
		vehicle:   vehicle,
	}
}

// Name implements run.Named.
func (b *Bridge) Name() string {
	return "groundlink"
}

// Run implements run.Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.queue.Sub(TopicCommands, b.handleCommand); err != nil {
		return err
	}

	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			b.publishTelemetry()
		}
	}
}

func (b *Bridge) publishTelemetry() {
	doc, err := json.Marshal(b.snapshot())
	if err != nil {
		glog.Warningf("marshal telemetry: %v", err)
		return
	}
	b.queue.Pub(TopicTelemetry, doc)
}

// snapshot assembles the telemetry document from whatever the cache
// holds; missing message kinds leave their sections out.
func (b *Bridge) snapshot() Telemetry {
	cache := b.vehicle.Cache()
	tm := Telemetry{VehicleID: b.VehicleID}

	if hb, _, ok := cache.Heartbeat(); ok {
		tm.Armed = hb.SystemStatus == mavlink.StateActive
		tm.FlightMode = hb.MainMode().String()
	}
	if pos, _, ok := cache.LocalPosition(); ok {
		tm.Position = &Position{X: pos.X, Y: pos.Y, Z: pos.Z}
		tm.Velocity = &Velocity{Vx: pos.Vx, Vy: pos.Vy, Vz: pos.Vz}
	}
	if att, _, ok := cache.Attitude(); ok {
		tm.Attitude = &Attitude{Roll: att.Roll, Pitch: att.Pitch, Yaw: att.Yaw}
	}
	if pl, _, ok := cache.Get(mavlink.MsgIDSysStatus); ok {
		if st, ok := pl.(mavlink.SysStatus); ok {
			tm.Battery = &Battery{
				VoltageMV: float32(st.VoltageBattery),
				Remaining: st.BatteryRemaining,
			}
		}
	}
	return tm
}

func (b *Bridge) handleCommand(_ string, payload []byte) {
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		glog.Warningf("bad command payload: %v", err)
		return
	}
	b.apply(cmd)
}

func (b *Bridge) apply(cmd Command) {
	glog.Infof("ground command: %s", cmd.Action)
	switch cmd.Action {
	case ActionSetpoint:
		var sp autopilot.Setpoint
		if cmd.Position != nil {
			sp.SetPosition(cmd.Position.X, cmd.Position.Y, cmd.Position.Z)
		}
		if cmd.Velocity != nil {
			sp.SetVelocity(cmd.Velocity.Vx, cmd.Velocity.Vy, cmd.Velocity.Vz)
		}
		if cmd.Yaw != nil {
			sp.SetYaw(*cmd.Yaw)
		}
		if cmd.YawRate != nil {
			sp.SetYawRate(*cmd.YawRate)
		}
		if sp.Mask == 0 {
			glog.Warning("setpoint command selects no field group, ignored")
			return
		}
		b.vehicle.UpdateSetpoint(sp)
	case ActionHold:
		b.vehicle.UpdateSetpoint(autopilot.HoldSetpoint())
	case ActionLand:
		b.vehicle.Land()
	case ActionRTL:
		b.vehicle.ReturnToLaunch()
	case ActionDisarm:
		b.vehicle.Disarm()
	default:
		glog.Warningf("unrecognized command action %q", cmd.Action)
	}
}
