package mavlink

import (
	"encoding/binary"
	"math"
)

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// Heartbeat carries liveness, armed state and the encoded flight mode.
type Heartbeat struct {
	CustomMode     uint32
	Type           uint8
	Autopilot      uint8
	BaseMode       uint8
	SystemStatus   uint8
	MavlinkVersion uint8
}

// MsgID implements Payload.
func (m *Heartbeat) MsgID() MsgID { return MsgIDHeartbeat }

// Pack implements Payload.
func (m *Heartbeat) Pack(p *Message) error {
	payload := make([]byte, 9)
	binary.LittleEndian.PutUint32(payload[0:], m.CustomMode)
	payload[4] = m.Type
	payload[5] = m.Autopilot
	payload[6] = m.BaseMode
	payload[7] = m.SystemStatus
	payload[8] = m.MavlinkVersion
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *Heartbeat) Unpack(p *Message) error {
	if len(p.Payload) < 9 {
		return ErrPayloadSize
	}
	m.CustomMode = binary.LittleEndian.Uint32(p.Payload[0:])
	m.Type = p.Payload[4]
	m.Autopilot = p.Payload[5]
	m.BaseMode = p.Payload[6]
	m.SystemStatus = p.Payload[7]
	m.MavlinkVersion = p.Payload[8]
	return nil
}

// SysStatus reports the general system state of the autopilot.
type SysStatus struct {
	OnboardControlSensorsPresent uint32
	OnboardControlSensorsEnabled uint32
	OnboardControlSensorsHealth  uint32
	Load                         uint16
	VoltageBattery               uint16
	CurrentBattery               int16
	DropRateComm                 uint16
	ErrorsComm                   uint16
	ErrorsCount1                 uint16
	ErrorsCount2                 uint16
	ErrorsCount3                 uint16
	ErrorsCount4                 uint16
	BatteryRemaining             int8
}

// MsgID implements Payload.
func (m *SysStatus) MsgID() MsgID { return MsgIDSysStatus }

// Pack implements Payload.
func (m *SysStatus) Pack(p *Message) error {
	payload := make([]byte, 31)
	binary.LittleEndian.PutUint32(payload[0:], m.OnboardControlSensorsPresent)
	binary.LittleEndian.PutUint32(payload[4:], m.OnboardControlSensorsEnabled)
	binary.LittleEndian.PutUint32(payload[8:], m.OnboardControlSensorsHealth)
	binary.LittleEndian.PutUint16(payload[12:], m.Load)
	binary.LittleEndian.PutUint16(payload[14:], m.VoltageBattery)
	binary.LittleEndian.PutUint16(payload[16:], uint16(m.CurrentBattery))
	binary.LittleEndian.PutUint16(payload[18:], m.DropRateComm)
	binary.LittleEndian.PutUint16(payload[20:], m.ErrorsComm)
	binary.LittleEndian.PutUint16(payload[22:], m.ErrorsCount1)
	binary.LittleEndian.PutUint16(payload[24:], m.ErrorsCount2)
	binary.LittleEndian.PutUint16(payload[26:], m.ErrorsCount3)
	binary.LittleEndian.PutUint16(payload[28:], m.ErrorsCount4)
	payload[30] = byte(m.BatteryRemaining)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *SysStatus) Unpack(p *Message) error {
	if len(p.Payload) < 31 {
		return ErrPayloadSize
	}
	m.OnboardControlSensorsPresent = binary.LittleEndian.Uint32(p.Payload[0:])
	m.OnboardControlSensorsEnabled = binary.LittleEndian.Uint32(p.Payload[4:])
	m.OnboardControlSensorsHealth = binary.LittleEndian.Uint32(p.Payload[8:])
	m.Load = binary.LittleEndian.Uint16(p.Payload[12:])
	m.VoltageBattery = binary.LittleEndian.Uint16(p.Payload[14:])
	m.CurrentBattery = int16(binary.LittleEndian.Uint16(p.Payload[16:]))
	m.DropRateComm = binary.LittleEndian.Uint16(p.Payload[18:])
	m.ErrorsComm = binary.LittleEndian.Uint16(p.Payload[20:])
	m.ErrorsCount1 = binary.LittleEndian.Uint16(p.Payload[22:])
	m.ErrorsCount2 = binary.LittleEndian.Uint16(p.Payload[24:])
	m.ErrorsCount3 = binary.LittleEndian.Uint16(p.Payload[26:])
	m.ErrorsCount4 = binary.LittleEndian.Uint16(p.Payload[28:])
	m.BatteryRemaining = int8(p.Payload[30])
	return nil
}

// Attitude is the vehicle attitude in the aeronautical frame.
type Attitude struct {
	TimeBootMs uint32
	Roll       float32
	Pitch      float32
	Yaw        float32
	RollSpeed  float32
	PitchSpeed float32
	YawSpeed   float32
}

// MsgID implements Payload.
func (m *Attitude) MsgID() MsgID { return MsgIDAttitude }

// Pack implements Payload.
func (m *Attitude) Pack(p *Message) error {
	payload := make([]byte, 28)
	binary.LittleEndian.PutUint32(payload[0:], m.TimeBootMs)
	putF32(payload[4:], m.Roll)
	putF32(payload[8:], m.Pitch)
	putF32(payload[12:], m.Yaw)
	putF32(payload[16:], m.RollSpeed)
	putF32(payload[20:], m.PitchSpeed)
	putF32(payload[24:], m.YawSpeed)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *Attitude) Unpack(p *Message) error {
	if len(p.Payload) < 28 {
		return ErrPayloadSize
	}
	m.TimeBootMs = binary.LittleEndian.Uint32(p.Payload[0:])
	m.Roll = getF32(p.Payload[4:])
	m.Pitch = getF32(p.Payload[8:])
	m.Yaw = getF32(p.Payload[12:])
	m.RollSpeed = getF32(p.Payload[16:])
	m.PitchSpeed = getF32(p.Payload[20:])
	m.YawSpeed = getF32(p.Payload[24:])
	return nil
}

// LocalPositionNED is the filtered local position in the NED frame.
type LocalPositionNED struct {
	TimeBootMs uint32
	X          float32
	Y          float32
	Z          float32
	Vx         float32
	Vy         float32
	Vz         float32
}

// MsgID implements Payload.
func (m *LocalPositionNED) MsgID() MsgID { return MsgIDLocalPositionNED }

// Pack implements Payload.
func (m *LocalPositionNED) Pack(p *Message) error {
	payload := make([]byte, 28)
	binary.LittleEndian.PutUint32(payload[0:], m.TimeBootMs)
	putF32(payload[4:], m.X)
	putF32(payload[8:], m.Y)
	putF32(payload[12:], m.Z)
	putF32(payload[16:], m.Vx)
	putF32(payload[20:], m.Vy)
	putF32(payload[24:], m.Vz)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *LocalPositionNED) Unpack(p *Message) error {
	if len(p.Payload) < 28 {
		return ErrPayloadSize
	}
	m.TimeBootMs = binary.LittleEndian.Uint32(p.Payload[0:])
	m.X = getF32(p.Payload[4:])
	m.Y = getF32(p.Payload[8:])
	m.Z = getF32(p.Payload[12:])
	m.Vx = getF32(p.Payload[16:])
	m.Vy = getF32(p.Payload[20:])
	m.Vz = getF32(p.Payload[24:])
	return nil
}

// GlobalPositionInt is the filtered global position (WGS84) in scaled integers.
type GlobalPositionInt struct {
	TimeBootMs  uint32
	Lat         int32
	Lon         int32
	Alt         int32
	RelativeAlt int32
	Vx          int16
	Vy          int16
	Vz          int16
	Hdg         uint16
}

// MsgID implements Payload.
func (m *GlobalPositionInt) MsgID() MsgID { return MsgIDGlobalPositionInt }

// Pack implements Payload.
func (m *GlobalPositionInt) Pack(p *Message) error {
	payload := make([]byte, 28)
	binary.LittleEndian.PutUint32(payload[0:], m.TimeBootMs)
	binary.LittleEndian.PutUint32(payload[4:], uint32(m.Lat))
	binary.LittleEndian.PutUint32(payload[8:], uint32(m.Lon))
	binary.LittleEndian.PutUint32(payload[12:], uint32(m.Alt))
	binary.LittleEndian.PutUint32(payload[16:], uint32(m.RelativeAlt))
	binary.LittleEndian.PutUint16(payload[20:], uint16(m.Vx))
	binary.LittleEndian.PutUint16(payload[22:], uint16(m.Vy))
	binary.LittleEndian.PutUint16(payload[24:], uint16(m.Vz))
	binary.LittleEndian.PutUint16(payload[26:], m.Hdg)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *GlobalPositionInt) Unpack(p *Message) error {
	if len(p.Payload) < 28 {
		return ErrPayloadSize
	}
	m.TimeBootMs = binary.LittleEndian.Uint32(p.Payload[0:])
	m.Lat = int32(binary.LittleEndian.Uint32(p.Payload[4:]))
	m.Lon = int32(binary.LittleEndian.Uint32(p.Payload[8:]))
	m.Alt = int32(binary.LittleEndian.Uint32(p.Payload[12:]))
	m.RelativeAlt = int32(binary.LittleEndian.Uint32(p.Payload[16:]))
	m.Vx = int16(binary.LittleEndian.Uint16(p.Payload[20:]))
	m.Vy = int16(binary.LittleEndian.Uint16(p.Payload[22:]))
	m.Vz = int16(binary.LittleEndian.Uint16(p.Payload[24:]))
	m.Hdg = binary.LittleEndian.Uint16(p.Payload[26:])
	return nil
}

// VfrHud is the HUD summary typically shown on fixed-wing ground stations.
type VfrHud struct {
	Airspeed    float32
	Groundspeed float32
	Alt         float32
	Climb       float32
	Heading     int16
	Throttle    uint16
}

// MsgID implements Payload.
func (m *VfrHud) MsgID() MsgID { return MsgIDVfrHud }

// Pack implements Payload.
func (m *VfrHud) Pack(p *Message) error {
	payload := make([]byte, 20)
	putF32(payload[0:], m.Airspeed)
	putF32(payload[4:], m.Groundspeed)
	putF32(payload[8:], m.Alt)
	putF32(payload[12:], m.Climb)
	binary.LittleEndian.PutUint16(payload[16:], uint16(m.Heading))
	binary.LittleEndian.PutUint16(payload[18:], m.Throttle)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *VfrHud) Unpack(p *Message) error {
	if len(p.Payload) < 20 {
		return ErrPayloadSize
	}
	m.Airspeed = getF32(p.Payload[0:])
	m.Groundspeed = getF32(p.Payload[4:])
	m.Alt = getF32(p.Payload[8:])
	m.Climb = getF32(p.Payload[12:])
	m.Heading = int16(binary.LittleEndian.Uint16(p.Payload[16:]))
	m.Throttle = binary.LittleEndian.Uint16(p.Payload[18:])
	return nil
}

// CommandLong is a command with up to seven float parameters.
type CommandLong struct {
	Param1          float32
	Param2          float32
	Param3          float32
	Param4          float32
	Param5          float32
	Param6          float32
	Param7          float32
	Command         uint16
	TargetSystem    uint8
	TargetComponent uint8
	Confirmation    uint8
}

// MsgID implements Payload.
func (m *CommandLong) MsgID() MsgID { return MsgIDCommandLong }

// Pack implements Payload.
func (m *CommandLong) Pack(p *Message) error {
	payload := make([]byte, 33)
	putF32(payload[0:], m.Param1)
	putF32(payload[4:], m.Param2)
	putF32(payload[8:], m.Param3)
	putF32(payload[12:], m.Param4)
	putF32(payload[16:], m.Param5)
	putF32(payload[20:], m.Param6)
	putF32(payload[24:], m.Param7)
	binary.LittleEndian.PutUint16(payload[28:], m.Command)
	payload[30] = m.TargetSystem
	payload[31] = m.TargetComponent
	payload[32] = m.Confirmation
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *CommandLong) Unpack(p *Message) error {
	if len(p.Payload) < 33 {
		return ErrPayloadSize
	}
	m.Param1 = getF32(p.Payload[0:])
	m.Param2 = getF32(p.Payload[4:])
	m.Param3 = getF32(p.Payload[8:])
	m.Param4 = getF32(p.Payload[12:])
	m.Param5 = getF32(p.Payload[16:])
	m.Param6 = getF32(p.Payload[20:])
	m.Param7 = getF32(p.Payload[24:])
	m.Command = binary.LittleEndian.Uint16(p.Payload[28:])
	m.TargetSystem = p.Payload[30]
	m.TargetComponent = p.Payload[31]
	m.Confirmation = p.Payload[32]
	return nil
}

// SetPositionTargetLocalNED commands a kinematic setpoint in the local
// NED frame. TypeMask bits mark field groups the autopilot must ignore.
type SetPositionTargetLocalNED struct {
	TimeBootMs      uint32
	X               float32
	Y               float32
	Z               float32
	Vx              float32
	Vy              float32
	Vz              float32
	Afx             float32
	Afy             float32
	Afz             float32
	Yaw             float32
	YawRate         float32
	TypeMask        uint16
	TargetSystem    uint8
	TargetComponent uint8
	CoordinateFrame uint8
}

// MsgID implements Payload.
func (m *SetPositionTargetLocalNED) MsgID() MsgID { return MsgIDSetPositionTargetLocalNED }

// Pack implements Payload.
func (m *SetPositionTargetLocalNED) Pack(p *Message) error {
	payload := make([]byte, 53)
	binary.LittleEndian.PutUint32(payload[0:], m.TimeBootMs)
	putF32(payload[4:], m.X)
	putF32(payload[8:], m.Y)
	putF32(payload[12:], m.Z)
	putF32(payload[16:], m.Vx)
	putF32(payload[20:], m.Vy)
	putF32(payload[24:], m.Vz)
	putF32(payload[28:], m.Afx)
	putF32(payload[32:], m.Afy)
	putF32(payload[36:], m.Afz)
	putF32(payload[40:], m.Yaw)
	putF32(payload[44:], m.YawRate)
	binary.LittleEndian.PutUint16(payload[48:], m.TypeMask)
	payload[50] = m.TargetSystem
	payload[51] = m.TargetComponent
	payload[52] = m.CoordinateFrame
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *SetPositionTargetLocalNED) Unpack(p *Message) error {
	if len(p.Payload) < 53 {
		return ErrPayloadSize
	}
	m.TimeBootMs = binary.LittleEndian.Uint32(p.Payload[0:])
	m.X = getF32(p.Payload[4:])
	m.Y = getF32(p.Payload[8:])
	m.Z = getF32(p.Payload[12:])
	m.Vx = getF32(p.Payload[16:])
	m.Vy = getF32(p.Payload[20:])
	m.Vz = getF32(p.Payload[24:])
	m.Afx = getF32(p.Payload[28:])
	m.Afy = getF32(p.Payload[32:])
	m.Afz = getF32(p.Payload[36:])
	m.Yaw = getF32(p.Payload[40:])
	m.YawRate = getF32(p.Payload[44:])
	m.TypeMask = binary.LittleEndian.Uint16(p.Payload[48:])
	m.TargetSystem = p.Payload[50]
	m.TargetComponent = p.Payload[51]
	m.CoordinateFrame = p.Payload[52]
	return nil
}

// PositionTargetLocalNED echoes the setpoint currently tracked by the
// autopilot in the local NED frame.
type PositionTargetLocalNED struct {
	TimeBootMs      uint32
	X               float32
	Y               float32
	Z               float32
	Vx              float32
	Vy              float32
	Vz              float32
	Afx             float32
	Afy             float32
	Afz             float32
	Yaw             float32
	YawRate         float32
	TypeMask        uint16
	CoordinateFrame uint8
}

// MsgID implements Payload.
func (m *PositionTargetLocalNED) MsgID() MsgID { return MsgIDPositionTargetLocalNED }

// Pack implements Payload.
func (m *PositionTargetLocalNED) Pack(p *Message) error {
	payload := make([]byte, 51)
	binary.LittleEndian.PutUint32(payload[0:], m.TimeBootMs)
	putF32(payload[4:], m.X)
	putF32(payload[8:], m.Y)
	putF32(payload[12:], m.Z)
	putF32(payload[16:], m.Vx)
	putF32(payload[20:], m.Vy)
	putF32(payload[24:], m.Vz)
	putF32(payload[28:], m.Afx)
	putF32(payload[32:], m.Afy)
	putF32(payload[36:], m.Afz)
	putF32(payload[40:], m.Yaw)
	putF32(payload[44:], m.YawRate)
	binary.LittleEndian.PutUint16(payload[48:], m.TypeMask)
	payload[50] = m.CoordinateFrame
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *PositionTargetLocalNED) Unpack(p *Message) error {
	if len(p.Payload) < 51 {
		return ErrPayloadSize
	}
	m.TimeBootMs = binary.LittleEndian.Uint32(p.Payload[0:])
	m.X = getF32(p.Payload[4:])
	m.Y = getF32(p.Payload[8:])
	m.Z = getF32(p.Payload[12:])
	m.Vx = getF32(p.Payload[16:])
	m.Vy = getF32(p.Payload[20:])
	m.Vz = getF32(p.Payload[24:])
	m.Afx = getF32(p.Payload[28:])
	m.Afy = getF32(p.Payload[32:])
	m.Afz = getF32(p.Payload[36:])
	m.Yaw = getF32(p.Payload[40:])
	m.YawRate = getF32(p.Payload[44:])
	m.TypeMask = binary.LittleEndian.Uint16(p.Payload[48:])
	m.CoordinateFrame = p.Payload[50]
	return nil
}

// PositionTargetGlobalInt echoes the setpoint currently tracked by the
// autopilot in the global frame.
type PositionTargetGlobalInt struct {
	TimeBootMs      uint32
	LatInt          int32
	LonInt          int32
	Alt             float32
	Vx              float32
	Vy              float32
	Vz              float32
	Afx             float32
	Afy             float32
	Afz             float32
	Yaw             float32
	YawRate         float32
	TypeMask        uint16
	CoordinateFrame uint8
}

// MsgID implements Payload.
func (m *PositionTargetGlobalInt) MsgID() MsgID { return MsgIDPositionTargetGlobalInt }

// Pack implements Payload.
func (m *PositionTargetGlobalInt) Pack(p *Message) error {
	payload := make([]byte, 51)
	binary.LittleEndian.PutUint32(payload[0:], m.TimeBootMs)
	binary.LittleEndian.PutUint32(payload[4:], uint32(m.LatInt))
	binary.LittleEndian.PutUint32(payload[8:], uint32(m.LonInt))
	putF32(payload[12:], m.Alt)
	putF32(payload[16:], m.Vx)
	putF32(payload[20:], m.Vy)
	putF32(payload[24:], m.Vz)
	putF32(payload[28:], m.Afx)
	putF32(payload[32:], m.Afy)
	putF32(payload[36:], m.Afz)
	putF32(payload[40:], m.Yaw)
	putF32(payload[44:], m.YawRate)
	binary.LittleEndian.PutUint16(payload[48:], m.TypeMask)
	payload[50] = m.CoordinateFrame
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *PositionTargetGlobalInt) Unpack(p *Message) error {
	if len(p.Payload) < 51 {
		return ErrPayloadSize
	}
	m.TimeBootMs = binary.LittleEndian.Uint32(p.Payload[0:])
	m.LatInt = int32(binary.LittleEndian.Uint32(p.Payload[4:]))
	m.LonInt = int32(binary.LittleEndian.Uint32(p.Payload[8:]))
	m.Alt = getF32(p.Payload[12:])
	m.Vx = getF32(p.Payload[16:])
	m.Vy = getF32(p.Payload[20:])
	m.Vz = getF32(p.Payload[24:])
	m.Afx = getF32(p.Payload[28:])
	m.Afy = getF32(p.Payload[32:])
	m.Afz = getF32(p.Payload[36:])
	m.Yaw = getF32(p.Payload[40:])
	m.YawRate = getF32(p.Payload[44:])
	m.TypeMask = binary.LittleEndian.Uint16(p.Payload[48:])
	m.CoordinateFrame = p.Payload[50]
	return nil
}

// HighresIMU is the high-resolution IMU readout.
type HighresIMU struct {
	TimeUsec      uint64
	Xacc          float32
	Yacc          float32
	Zacc          float32
	Xgyro         float32
	Ygyro         float32
	Zgyro         float32
	Xmag          float32
	Ymag          float32
	Zmag          float32
	AbsPressure   float32
	DiffPressure  float32
	PressureAlt   float32
	Temperature   float32
	FieldsUpdated uint16
}

// MsgID implements Payload.
func (m *HighresIMU) MsgID() MsgID { return MsgIDHighresIMU }

// Pack implements Payload.
func (m *HighresIMU) Pack(p *Message) error {
	payload := make([]byte, 62)
	binary.LittleEndian.PutUint64(payload[0:], m.TimeUsec)
	putF32(payload[8:], m.Xacc)
	putF32(payload[12:], m.Yacc)
	putF32(payload[16:], m.Zacc)
	putF32(payload[20:], m.Xgyro)
	putF32(payload[24:], m.Ygyro)
	putF32(payload[28:], m.Zgyro)
	putF32(payload[32:], m.Xmag)
	putF32(payload[36:], m.Ymag)
	putF32(payload[40:], m.Zmag)
	putF32(payload[44:], m.AbsPressure)
	putF32(payload[48:], m.DiffPressure)
	putF32(payload[52:], m.PressureAlt)
	putF32(payload[56:], m.Temperature)
	binary.LittleEndian.PutUint16(payload[60:], m.FieldsUpdated)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *HighresIMU) Unpack(p *Message) error {
	if len(p.Payload) < 62 {
		return ErrPayloadSize
	}
	m.TimeUsec = binary.LittleEndian.Uint64(p.Payload[0:])
	m.Xacc = getF32(p.Payload[8:])
	m.Yacc = getF32(p.Payload[12:])
	m.Zacc = getF32(p.Payload[16:])
	m.Xgyro = getF32(p.Payload[20:])
	m.Ygyro = getF32(p.Payload[24:])
	m.Zgyro = getF32(p.Payload[28:])
	m.Xmag = getF32(p.Payload[32:])
	m.Ymag = getF32(p.Payload[36:])
	m.Zmag = getF32(p.Payload[40:])
	m.AbsPressure = getF32(p.Payload[44:])
	m.DiffPressure = getF32(p.Payload[48:])
	m.PressureAlt = getF32(p.Payload[52:])
	m.Temperature = getF32(p.Payload[56:])
	m.FieldsUpdated = binary.LittleEndian.Uint16(p.Payload[60:])
	return nil
}

// RadioStatus reports the health of the telemetry radio link.
type RadioStatus struct {
	RxErrors uint16
	Fixed    uint16
	Rssi     uint8
	RemRssi  uint8
	TxBuf    uint8
	Noise    uint8
	RemNoise uint8
}

// MsgID implements Payload.
func (m *RadioStatus) MsgID() MsgID { return MsgIDRadioStatus }

// Pack implements Payload.
func (m *RadioStatus) Pack(p *Message) error {
	payload := make([]byte, 9)
	binary.LittleEndian.PutUint16(payload[0:], m.RxErrors)
	binary.LittleEndian.PutUint16(payload[2:], m.Fixed)
	payload[4] = m.Rssi
	payload[5] = m.RemRssi
	payload[6] = m.TxBuf
	payload[7] = m.Noise
	payload[8] = m.RemNoise
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *RadioStatus) Unpack(p *Message) error {
	if len(p.Payload) < 9 {
		return ErrPayloadSize
	}
	m.RxErrors = binary.LittleEndian.Uint16(p.Payload[0:])
	m.Fixed = binary.LittleEndian.Uint16(p.Payload[2:])
	m.Rssi = p.Payload[4]
	m.RemRssi = p.Payload[5]
	m.TxBuf = p.Payload[6]
	m.Noise = p.Payload[7]
	m.RemNoise = p.Payload[8]
	return nil
}

// BatteryStatus reports per-cell voltages and consumption.
type BatteryStatus struct {
	CurrentConsumed  int32
	EnergyConsumed   int32
	Temperature      int16
	Voltages         [10]uint16
	CurrentBattery   int16
	ID               uint8
	BatteryFunction  uint8
	Type             uint8
	BatteryRemaining int8
}

// MsgID implements Payload.
func (m *BatteryStatus) MsgID() MsgID { return MsgIDBatteryStatus }

// Pack implements Payload.
func (m *BatteryStatus) Pack(p *Message) error {
	payload := make([]byte, 36)
	binary.LittleEndian.PutUint32(payload[0:], uint32(m.CurrentConsumed))
	binary.LittleEndian.PutUint32(payload[4:], uint32(m.EnergyConsumed))
	binary.LittleEndian.PutUint16(payload[8:], uint16(m.Temperature))
	for i, v := range m.Voltages {
		binary.LittleEndian.PutUint16(payload[10+i*2:], v)
	}
	binary.LittleEndian.PutUint16(payload[30:], uint16(m.CurrentBattery))
	payload[32] = m.ID
	payload[33] = m.BatteryFunction
	payload[34] = m.Type
	payload[35] = byte(m.BatteryRemaining)
	p.MsgID = m.MsgID()
	p.Payload = payload
	return nil
}

// Unpack implements Payload.
func (m *BatteryStatus) Unpack(p *Message) error {
	if len(p.Payload) < 36 {
		return ErrPayloadSize
	}
	m.CurrentConsumed = int32(binary.LittleEndian.Uint32(p.Payload[0:]))
	m.EnergyConsumed = int32(binary.LittleEndian.Uint32(p.Payload[4:]))
	m.Temperature = int16(binary.LittleEndian.Uint16(p.Payload[8:]))
	for i := range m.Voltages {
		m.Voltages[i] = binary.LittleEndian.Uint16(p.Payload[10+i*2:])
	}
	m.CurrentBattery = int16(binary.LittleEndian.Uint16(p.Payload[30:]))
	m.ID = p.Payload[32]
	m.BatteryFunction = p.Payload[33]
	m.Type = p.Payload[34]
	m.BatteryRemaining = int8(p.Payload[35])
	return nil
}
