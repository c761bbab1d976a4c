package autopilot

import (
	"sync"

	"github.com/magic428/px4-offboard-interface/pkg/mavlink"
)

// Mask selects which setpoint field groups are authoritative.
type Mask uint16

// Field-validity flags. Flags combine with bitwise OR.
const (
	UsePosition Mask = 1 << iota
	UseVelocity
	UseAcceleration
	UseYaw
	UseYawRate
	UseLand
)

// Setpoint is a target kinematic state in the local NED frame. Only the
// field groups selected by Mask are honored by the autopilot.
type Setpoint struct {
	Frame uint8
	Mask  Mask

	X, Y, Z    float32
	Vx, Vy, Vz float32
	Ax, Ay, Az float32
	Yaw        float32
	YawRate    float32
}

// SetPosition selects a target position, replacing the current mask.
func (sp *Setpoint) SetPosition(x, y, z float32) {
	sp.Mask = UsePosition
	sp.Frame = mavlink.FrameLocalNED
	sp.X, sp.Y, sp.Z = x, y, z
}

// SetVelocity adds a target velocity to the current mask.
func (sp *Setpoint) SetVelocity(vx, vy, vz float32) {
	sp.Mask |= UseVelocity
	sp.Frame = mavlink.FrameLocalNED
	sp.Vx, sp.Vy, sp.Vz = vx, vy, vz
}

// SetAcceleration adds a target acceleration to the current mask.
func (sp *Setpoint) SetAcceleration(ax, ay, az float32) {
	sp.Mask |= UseAcceleration
	sp.Frame = mavlink.FrameLocalNED
	sp.Ax, sp.Ay, sp.Az = ax, ay, az
}

// SetYaw adds a target yaw. Meaningful only after a position or
// velocity group has been set; it extends the same mask.
func (sp *Setpoint) SetYaw(yaw float32) {
	sp.Mask |= UseYaw
	sp.Yaw = yaw
}

// SetYawRate adds a target yaw rate, extending the current mask.
func (sp *Setpoint) SetYawRate(rate float32) {
	sp.Mask |= UseYawRate
	sp.YawRate = rate
}

// SetLand requests an autonomous landing through the setpoint stream.
func (sp *Setpoint) SetLand() {
	sp.Mask |= UseLand
}

// HoldSetpoint is the conservative default streamed before any producer
// has supplied a setpoint: hold position by commanding zero velocity
// and zero yaw rate.
func HoldSetpoint() Setpoint {
	var sp Setpoint
	sp.SetVelocity(0, 0, 0)
	sp.SetYawRate(0)
	return sp
}

// typeMask translates the validity mask into the wire-level ignore
// bits: start from all-ignored and clear the selected groups.
func (sp Setpoint) typeMask() uint16 {
	m := mavlink.IgnoreAll
	if sp.Mask&UsePosition != 0 {
		m &^= mavlink.IgnorePosition
	}
	if sp.Mask&UseVelocity != 0 {
		m &^= mavlink.IgnoreVelocity
	}
	if sp.Mask&UseAcceleration != 0 {
		m &^= mavlink.IgnoreAcceleration
	}
	if sp.Mask&UseYaw != 0 {
		m &^= mavlink.IgnoreYaw
	}
	if sp.Mask&UseYawRate != 0 {
		m &^= mavlink.IgnoreYawRate
	}
	if sp.Mask&UseLand != 0 {
		m |= mavlink.TypeMaskLand
	}
	return m
}

// payload stamps the setpoint with time and target identifiers and
// converts it to its wire form.
func (sp Setpoint) payload(timeBootMs uint32, targetSys, targetComp uint8) *mavlink.SetPositionTargetLocalNED {
	frame := sp.Frame
	if frame == 0 {
		frame = mavlink.FrameLocalNED
	}
	return &mavlink.SetPositionTargetLocalNED{
		TimeBootMs:      timeBootMs,
		X:               sp.X,
		Y:               sp.Y,
		Z:               sp.Z,
		Vx:              sp.Vx,
		Vy:              sp.Vy,
		Vz:              sp.Vz,
		Afx:             sp.Ax,
		Afy:             sp.Ay,
		Afz:             sp.Az,
		Yaw:             sp.Yaw,
		YawRate:         sp.YawRate,
		TypeMask:        sp.typeMask(),
		TargetSystem:    targetSys,
		TargetComponent: targetComp,
		CoordinateFrame: frame,
	}
}

// setpointStore holds exactly one pending setpoint. A new value always
// replaces the previous one wholesale; readers observe either the old
// or the new value in full.
type setpointStore struct {
	mu   sync.Mutex
	sp   Setpoint
	set  bool
	sent bool
}

func (s *setpointStore) put(sp Setpoint) {
	s.mu.Lock()
	s.sp = sp
	s.set = true
	s.sent = false
	s.mu.Unlock()
}

// install sets a default value only if no producer has supplied one.
func (s *setpointStore) install(sp Setpoint) {
	s.mu.Lock()
	if !s.set {
		s.sp = sp
		s.set = true
	}
	s.mu.Unlock()
}

func (s *setpointStore) get() Setpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sp
}

func (s *setpointStore) markSent() {
	s.mu.Lock()
	s.sent = true
	s.mu.Unlock()
}

func (s *setpointStore) wasSent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent
}
