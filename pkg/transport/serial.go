package transport

import (
	"fmt"

	"go.bug.st/serial"
)

// OpenSerial opens a serial link to the flight controller, 8N1 at the
// given baud rate, and wraps it into a Transport.
func OpenSerial(portName string, baudRate int) (*Stream, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", portName, err)
	}
	return NewStream(port), nil
}
