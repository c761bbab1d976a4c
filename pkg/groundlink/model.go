package groundlink

// Telemetry is the JSON document published to the ground station.
type Telemetry struct {
	VehicleID  string    `json:"vehicleID"`
	Armed      bool      `json:"armed"`
	FlightMode string    `json:"flightMode,omitempty"`
	Position   *Position `json:"position,omitempty"`
	Velocity   *Velocity `json:"velocity,omitempty"`
	Attitude   *Attitude `json:"attitude,omitempty"`
	Battery    *Battery  `json:"battery,omitempty"`
}

// Position is the local NED position in meters.
type Position struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Velocity is the local NED velocity in m/s.
type Velocity struct {
	Vx float32 `json:"vx"`
	Vy float32 `json:"vy"`
	Vz float32 `json:"vz"`
}

// Attitude is the vehicle attitude in radians.
type Attitude struct {
	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

// Battery is the autopilot-reported battery state.
type Battery struct {
	VoltageMV float32 `json:"voltageMV"`
	Remaining int8    `json:"remaining"`
}

// Command is a vehicle command received from the ground station.
type Command struct {
	Action   string    `json:"action"`
	Position *Position `json:"position,omitempty"`
	Velocity *Velocity `json:"velocity,omitempty"`
	Yaw      *float32  `json:"yaw,omitempty"`
	YawRate  *float32  `json:"yawRate,omitempty"`
}

// Command actions.
const (
	ActionSetpoint = "setpoint"
	ActionHold     = "hold"
	ActionLand     = "land"
	ActionRTL      = "rtl"
	ActionDisarm   = "disarm"
)
