package mavlink

// Commands issued through COMMAND_LONG.
const (
	CmdNavReturnToLaunch  uint16 = 20
	CmdNavLand            uint16 = 21
	CmdNavGuidedEnable    uint16 = 92
	CmdComponentArmDisarm uint16 = 400
)

// Coordinate frames for position targets.
const (
	FrameLocalNED uint8 = 1
)

// System status values carried in HEARTBEAT.system_status.
const (
	StateStandby uint8 = 3
	StateActive  uint8 = 4
)

// Type-mask bits of SET_POSITION_TARGET_LOCAL_NED. A set bit tells the
// autopilot to ignore the corresponding field group.
const (
	IgnorePX      uint16 = 1 << 0
	IgnorePY      uint16 = 1 << 1
	IgnorePZ      uint16 = 1 << 2
	IgnoreVX      uint16 = 1 << 3
	IgnoreVY      uint16 = 1 << 4
	IgnoreVZ      uint16 = 1 << 5
	IgnoreAX      uint16 = 1 << 6
	IgnoreAY      uint16 = 1 << 7
	IgnoreAZ      uint16 = 1 << 8
	IgnoreYaw     uint16 = 1 << 10
	IgnoreYawRate uint16 = 1 << 11

	IgnorePosition     = IgnorePX | IgnorePY | IgnorePZ
	IgnoreVelocity     = IgnoreVX | IgnoreVY | IgnoreVZ
	IgnoreAcceleration = IgnoreAX | IgnoreAY | IgnoreAZ

	// IgnoreAll masks out every field group this interface controls.
	IgnoreAll = IgnorePosition | IgnoreVelocity | IgnoreAcceleration | IgnoreYaw | IgnoreYawRate

	// TypeMaskLand requests an autonomous landing through the setpoint
	// stream instead of a command.
	TypeMaskLand uint16 = 0x2000
)

// MainMode is the PX4 main flight mode, extracted from the heartbeat's
// custom mode word.
type MainMode uint8

// PX4 main modes.
const (
	MainModeUnknown    MainMode = 0
	MainModeManual     MainMode = 1
	MainModeAltCtl     MainMode = 2
	MainModePosCtl     MainMode = 3
	MainModeAuto       MainMode = 4
	MainModeAcro       MainMode = 5
	MainModeOffboard   MainMode = 6
	MainModeStabilized MainMode = 7
	MainModeRattitude  MainMode = 8
)

// MainModeOf extracts the main mode from a heartbeat custom-mode word.
// The PX4 layout packs the main mode into the third byte.
func MainModeOf(customMode uint32) MainMode {
	return MainMode((customMode >> 16) & 0xff)
}

// MainMode reports the PX4 main mode encoded in the heartbeat.
func (m *Heartbeat) MainMode() MainMode {
	return MainModeOf(m.CustomMode)
}

func (m MainMode) String() string {
	switch m {
	case MainModeManual:
		return "manual"
	case MainModeAltCtl:
		return "altctl"
	case MainModePosCtl:
		return "posctl"
	case MainModeAuto:
		return "auto"
	case MainModeAcro:
		return "acro"
	case MainModeOffboard:
		return "offboard"
	case MainModeStabilized:
		return "stabilized"
	case MainModeRattitude:
		return "rattitude"
	}
	return "unknown"
}
