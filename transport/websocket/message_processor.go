package websocket

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

const (
	opContinuation byte = 0x0
	opText         byte = 0x1
	opBinary       byte = 0x2
	opClose        byte = 0x8
	opPing         byte = 0x9
	opPong         byte = 0xA
)

const (
	maxControlPayload = 125
	maxMessageSize    = 64 << 10
)

const closeNormal = 1000

var (
	ErrProtocol        = errors.New("websocket protocol error")
	ErrMessageTooLarge = errors.New("websocket message too large")
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	payload []byte
}

func (that frame) isControl() bool {
	return that.opCode&0x8 != 0
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is both the request and the response body of every action.
type Payload struct {
	Player   *entity.Player `json:"player,omitempty"`
	Game     *entity.Game   `json:"game,omitempty"`
	Cell     *int           `json:"cell,omitempty"`
	Accepted *bool          `json:"accepted,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func (that *Server) sendMessage(bufrw *bufio.ReadWriter, action string, payload Payload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	responseBytes, err := json.Marshal(Message{Action: action, Payload: payloadBytes})
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	return writeFrame(bufrw.Writer, frame{isFin: true, opCode: opText, payload: responseBytes})
}

// writeFrame - writes an unmasked server frame and flushes it.
func writeFrame(writer *bufio.Writer, frameData frame) error {
	header := []byte{frameData.opCode, 0}
	if frameData.isFin {
		header[0] |= 0x80
	}

	length := len(frameData.payload)

	switch {
	case length < 126:
		header[1] = byte(length)
	case length < 1<<16:
		header[1] = 126
		header = binary.BigEndian.AppendUint16(header, uint16(length))
	default:
		header[1] = 127
		header = binary.BigEndian.AppendUint64(header, uint64(length))
	}

	if _, err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}

	if _, err := writer.Write(frameData.payload); err != nil {
		return fmt.Errorf("failed to write frame payload: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readFrame - reads one frame and unmasks its payload.
func readFrame(reader io.Reader) (frame, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(reader, header); err != nil {
		return frame{}, fmt.Errorf("failed to read header: %w", err)
	}

	result := frame{
		isFin:  header[0]&0x80 != 0,
		opCode: header[0] & 0x0f,
	}

	if header[0]&0x70 != 0 {
		return frame{}, fmt.Errorf("%w: reserved bits set", ErrProtocol)
	}

	masked := header[1]&0x80 != 0

	size, err := readPayloadLength(reader, header[1]&0x7f)
	if err != nil {
		return frame{}, err
	}

	if result.isControl() && (size > maxControlPayload || !result.isFin) {
		return frame{}, fmt.Errorf("%w: invalid control frame", ErrProtocol)
	}

	if size > maxMessageSize {
		return frame{}, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	var mask [4]byte
	if masked {
		if _, err = io.ReadFull(reader, mask[:]); err != nil {
			return frame{}, fmt.Errorf("failed to read mask: %w", err)
		}
	}

	result.payload = make([]byte, size)
	if _, err = io.ReadFull(reader, result.payload); err != nil {
		return frame{}, fmt.Errorf("failed to read payload: %w", err)
	}

	if masked {
		for i := range result.payload {
			result.payload[i] ^= mask[i%4]
		}
	}

	return result, nil
}

func readPayloadLength(reader io.Reader, payloadLen byte) (uint64, error) {
	switch payloadLen {
	case 126:
		length := make([]byte, 2)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return uint64(binary.BigEndian.Uint16(length)), nil
	case 127:
		length := make([]byte, 8)
		if _, err := io.ReadFull(reader, length); err != nil {
			return 0, fmt.Errorf("failed to read payload length: %w", err)
		}

		return binary.BigEndian.Uint64(length), nil
	default:
		return uint64(payloadLen), nil
	}
}

// messageReader joins fragmented data frames. Control frames may arrive
// between fragments and are returned as they come.
type messageReader struct {
	reader  io.Reader
	opCode  byte
	partial []byte
	pending bool
}

func newMessageReader(reader io.Reader) *messageReader {
	return &messageReader{reader: reader}
}

// next - returns the next control frame or complete data message.
func (that *messageReader) next() (byte, []byte, error) {
	for {
		current, err := readFrame(that.reader)
		if err != nil {
			return 0, nil, err
		}

		if current.isControl() {
			return current.opCode, current.payload, nil
		}

		switch {
		case current.opCode == opContinuation && !that.pending:
			return 0, nil, fmt.Errorf("%w: continuation without a message", ErrProtocol)
		case current.opCode != opContinuation && that.pending:
			return 0, nil, fmt.Errorf("%w: new message inside a fragmented one", ErrProtocol)
		case current.opCode != opContinuation:
			that.opCode = current.opCode
			that.partial = that.partial[:0]
		}

		if len(that.partial)+len(current.payload) > maxMessageSize {
			return 0, nil, ErrMessageTooLarge
		}

		that.partial = append(that.partial, current.payload...)
		that.pending = !current.isFin

		if current.isFin {
			message := make([]byte, len(that.partial))
			copy(message, that.partial)

			return that.opCode, message, nil
		}
	}
}

// closePayload - builds the close reply, echoing the peer's status code.
func closePayload(received []byte) []byte {
	if len(received) >= 2 {
		return received[:2]
	}

	return binary.BigEndian.AppendUint16(nil, closeNormal)
}
