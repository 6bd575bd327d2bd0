// Package nativemsg speaks the WebExtension native messaging protocol over
// stdin/stdout: each message is a 32-bit length in native (little-endian)
// byte order followed by that many bytes of UTF-8 JSON.
package nativemsg

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	// MaxOutgoingSize is the browser's limit for a single host message.
	MaxOutgoingSize = 1 << 20
	// MaxIncomingSize guards against a corrupt length prefix.
	MaxIncomingSize = 64 << 20
)

// Message kinds with a fixed meaning on the wire.
const (
	TypeResponse = "response"
)

var (
	ErrMessageTooLarge = errors.New("native message too large")
	ErrEmptyMessage    = errors.New("native message is empty")
)

// Envelope is the JSON frame exchanged in both directions.
// Requests carry a RequestID; the peer answers with TypeResponse and the same ID.
// Events carry neither.
type Envelope struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// ReadFrame reads one length-prefixed frame.
func ReadFrame(r io.Reader) ([]byte, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, ErrEmptyMessage
	}
	if size > MaxIncomingSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return buf, nil
}

// WriteFrame writes one length-prefixed frame.
func WriteFrame(w io.Writer, data []byte) error {
	if len(data) > MaxOutgoingSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(data))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadEnvelope reads and decodes one frame.
func ReadEnvelope(r io.Reader) (Envelope, error) {
	data, err := ReadFrame(r)
	if err != nil {
		return Envelope{}, err
	}
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode native message: %w", err)
	}
	return env, nil
}

// WriteEnvelope encodes and writes one frame.
func WriteEnvelope(w io.Writer, env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode native message: %w", err)
	}
	return WriteFrame(w, data)
}

// NewEnvelope builds an envelope with a JSON-encoded payload.
func NewEnvelope(msgType, requestID string, payload any) (Envelope, error) {
	env := Envelope{Type: msgType, RequestID: requestID}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Envelope{}, fmt.Errorf("encode %s payload: %w", msgType, err)
		}
		env.Payload = raw
	}
	return env, nil
}
