package mavlink

import (
	"errors"
	"fmt"
)

// MsgID identifies a MAVLink message type.
type MsgID uint8

// Message IDs handled by this package.
const (
	MsgIDHeartbeat                 MsgID = 0
	MsgIDSysStatus                 MsgID = 1
	MsgIDAttitude                  MsgID = 30
	MsgIDLocalPositionNED          MsgID = 32
	MsgIDGlobalPositionInt         MsgID = 33
	MsgIDVfrHud                    MsgID = 74
	MsgIDCommandLong               MsgID = 76
	MsgIDSetPositionTargetLocalNED MsgID = 84
	MsgIDPositionTargetLocalNED    MsgID = 85
	MsgIDPositionTargetGlobalInt   MsgID = 87
	MsgIDHighresIMU                MsgID = 105
	MsgIDRadioStatus               MsgID = 109
	MsgIDBatteryStatus             MsgID = 147
)

// ErrUnknownMsgID indicates a frame carried a message ID this package
// has no schema for. The checksum of such a frame cannot be verified.
var ErrUnknownMsgID = errors.New("unknown message id")

// ErrPayloadSize indicates a payload of unexpected length.
var ErrPayloadSize = errors.New("unexpected payload size")

// ErrBadChecksum indicates a frame failed checksum verification.
var ErrBadChecksum = errors.New("bad checksum")

// Message is a decoded MAVLink frame: sender identifiers, message ID and
// the raw (unparsed) payload bytes.
type Message struct {
	SysID   uint8
	CompID  uint8
	MsgID   MsgID
	Payload []byte
}

func (m *Message) String() string {
	return fmt.Sprintf("msg %d from (%d,%d) len %d", m.MsgID, m.SysID, m.CompID, len(m.Payload))
}

// Payload is implemented by all typed message payloads.
type Payload interface {
	// MsgID returns the message ID of this payload type.
	MsgID() MsgID
	// Pack encodes the payload into m and sets its message ID.
	Pack(m *Message) error
	// Unpack decodes the payload from m.
	Unpack(m *Message) error
}

// crcExtra is the per-message seed byte appended to the X25 checksum,
// derived from each message's field signature.
var crcExtra = map[MsgID]byte{
	MsgIDHeartbeat:                 50,
	MsgIDSysStatus:                 124,
	MsgIDAttitude:                  39,
	MsgIDLocalPositionNED:          185,
	MsgIDGlobalPositionInt:         104,
	MsgIDVfrHud:                    20,
	MsgIDCommandLong:               152,
	MsgIDSetPositionTargetLocalNED: 143,
	MsgIDPositionTargetLocalNED:    140,
	MsgIDPositionTargetGlobalInt:   150,
	MsgIDHighresIMU:                93,
	MsgIDRadioStatus:               185,
	MsgIDBatteryStatus:             154,
}

// Known reports whether id has a schema in this package.
func Known(id MsgID) bool {
	_, ok := crcExtra[id]
	return ok
}
