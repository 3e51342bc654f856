package network

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

// MaxFrameSize bounds a single envelope body; anything larger is a
// protocol-level parse failure, not a memory grab.
const MaxFrameSize = 1 << 20

// Request is the typed envelope a client sends: a 4-byte little-endian
// length prefix followed by that many bytes of UTF-8 JSON. Field names
// decode case-insensitively, which encoding/json gives us for free.
type Request[T any] struct {
	AccountID uint32 `json:"accountId"`
	Data      *T     `json:"data"`
}

// Response wraps a workflow output or failure for the wire.
type Response[T any] struct {
	Success      bool   `json:"success"`
	ErrorCode    int    `json:"errorCode"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Data         *T     `json:"data,omitempty"`
}

// OK builds a success response.
func OK[T any](data *T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Fail builds an error response carrying a stable code.
func Fail[T any](code int, message string) Response[T] {
	return Response[T]{Success: false, ErrorCode: code, ErrorMessage: message}
}

// ReadFrame reads one length-prefixed body from the stream.
func ReadFrame(r io.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("network: read frame length: %w", err)
	}
	if length > MaxFrameSize {
		return nil, fmt.Errorf("network: frame of %d bytes exceeds limit", length)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("network: read frame body: %w", err)
	}
	return body, nil
}

// WriteFrame writes one length-prefixed body to the stream.
func WriteFrame(w io.Writer, body []byte) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(body))); err != nil {
		return fmt.Errorf("network: write frame length: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("network: write frame body: %w", err)
	}
	return nil
}

// DecodeRequest parses a frame body into a typed request.
func DecodeRequest[T any](body []byte) (Request[T], error) {
	var req Request[T]
	if err := json.Unmarshal(body, &req); err != nil {
		return Request[T]{}, fmt.Errorf("network: decode request: %w", err)
	}
	return req, nil
}

// EncodeResponse frames a typed response onto the stream.
func EncodeResponse[T any](w io.Writer, resp Response[T]) error {
	body, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("network: encode response: %w", err)
	}
	return WriteFrame(w, body)
}
