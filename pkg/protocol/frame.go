package protocol

import (
	"errors"
	"io"
)

// Frame constants.
const (
	// FrameHeaderSize is the size of the frame header in bytes.
	FrameHeaderSize = 4

	// MaxPayloadSize is the maximum payload size (2^16 - 1 bytes).
	MaxPayloadSize = 65535
)

// FrameType identifies the type of frame.
type FrameType uint8

const (
	FrameEvent   FrameType = 0x01 // Client to server events
	FramePatches FrameType = 0x02 // Server to client patches
	FrameControl FrameType = 0x03 // Control messages (ping, etc.)
	FrameError   FrameType = 0x04 // Error message
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FrameControl:
		return "Control"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame payload too large")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
)

// Frame is a protocol frame with header and payload.
//
// Wire format: type byte, reserved flags byte, payload length as
// big-endian uint16, then the payload.
type Frame struct {
	Type    FrameType
	Payload []byte
}

// EncodeFrame serializes a frame to bytes.
func EncodeFrame(t FrameType, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, ErrFrameTooLarge
	}
	buf := make([]byte, 0, FrameHeaderSize+len(payload))
	buf = append(buf, byte(t), 0x00, byte(len(payload)>>8), byte(len(payload)))
	buf = append(buf, payload...)
	return buf, nil
}

// ReadFrame reads a single frame from r.
func ReadFrame(r io.Reader) (Frame, error) {
	var header [FrameHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Frame{}, err
	}

	t := FrameType(header[0])
	switch t {
	case FrameEvent, FramePatches, FrameControl, FrameError:
	default:
		return Frame{}, ErrInvalidFrameType
	}

	length := int(header[2])<<8 | int(header[3])
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Frame{}, err
	}
	return Frame{Type: t, Payload: payload}, nil
}

// DecodeFrame parses a frame from a complete message buffer, as
// delivered by message-oriented transports.
func DecodeFrame(buf []byte) (Frame, error) {
	if len(buf) < FrameHeaderSize {
		return Frame{}, io.ErrUnexpectedEOF
	}
	t := FrameType(buf[0])
	switch t {
	case FrameEvent, FramePatches, FrameControl, FrameError:
	default:
		return Frame{}, ErrInvalidFrameType
	}
	length := int(buf[2])<<8 | int(buf[3])
	if len(buf) < FrameHeaderSize+length {
		return Frame{}, io.ErrUnexpectedEOF
	}
	return Frame{Type: t, Payload: buf[FrameHeaderSize : FrameHeaderSize+length]}, nil
}
