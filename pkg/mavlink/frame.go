package mavlink

import (
	"bufio"
	"io"
	"sync"
)

// frameStart is the MAVLink v1 start-of-frame marker.
const frameStart = 0xfe

// maxPayloadLen bounds a v1 frame payload.
const maxPayloadLen = 255

// Encoder writes framed messages to an underlying stream, maintaining
// the outgoing sequence counter. Safe for concurrent use.
type Encoder struct {
	w   io.Writer
	seq uint8
	mu  sync.Mutex
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode packs the payload from the given sender identifiers, frames it
// and writes it out. It returns the number of bytes written.
func (e *Encoder) Encode(sysID, compID uint8, pl Payload) (int, error) {
	m := &Message{SysID: sysID, CompID: compID}
	if err := pl.Pack(m); err != nil {
		return 0, err
	}
	return e.EncodeMessage(m)
}

// EncodeMessage frames an already-packed message and writes it out.
func (e *Encoder) EncodeMessage(m *Message) (int, error) {
	extra, ok := crcExtra[m.MsgID]
	if !ok {
		return 0, ErrUnknownMsgID
	}
	if len(m.Payload) > maxPayloadLen {
		return 0, ErrPayloadSize
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	frame := make([]byte, 0, len(m.Payload)+8)
	frame = append(frame, frameStart, byte(len(m.Payload)), e.seq, m.SysID, m.CompID, byte(m.MsgID))
	frame = append(frame, m.Payload...)

	crc := newX25()
	crc.addBytes(frame[1:])
	crc.add(extra)
	sum := crc.sum()
	frame = append(frame, byte(sum&0xff), byte(sum>>8))

	n, err := e.w.Write(frame)
	if err == nil {
		e.seq++
	}
	return n, err
}

// Decoder reads framed messages from an underlying stream. It scans for
// the start marker, so it resynchronizes after garbage or partial frames.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next well-formed frame and returns its message.
// Frames with unverifiable or wrong checksums yield an error; the caller
// is expected to skip them and call Decode again.
func (d *Decoder) Decode() (*Message, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b != frameStart {
			continue
		}

		header := make([]byte, 5)
		if _, err := io.ReadFull(d.r, header); err != nil {
			return nil, err
		}
		plen := int(header[0])
		body := make([]byte, plen+2)
		if _, err := io.ReadFull(d.r, body); err != nil {
			return nil, err
		}

		m := &Message{
			SysID:   header[2],
			CompID:  header[3],
			MsgID:   MsgID(header[4]),
			Payload: body[:plen],
		}
		extra, ok := crcExtra[m.MsgID]
		if !ok {
			return nil, ErrUnknownMsgID
		}
		crc := newX25()
		crc.addBytes(header)
		crc.addBytes(body[:plen])
		crc.add(extra)
		want := uint16(body[plen]) | uint16(body[plen+1])<<8
		if crc.sum() != want {
			return nil, ErrBadChecksum
		}
		return m, nil
	}
}
