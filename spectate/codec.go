package spectate

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/neon-pong/core"
)

// Format selects the frame encoding for a spectator
type Format uint8

const (
	FormatMsgpack Format = iota
	FormatJSON

	formatCount
)

func (f Format) String() string {
	switch f {
	case FormatMsgpack:
		return "msgpack"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseFormat maps the ?format= query value; empty selects msgpack
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "msgpack":
		return FormatMsgpack, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// MessageType is the websocket frame type carrying this format
func (f Format) MessageType() int {
	if f == FormatJSON {
		return websocket.TextMessage
	}
	return websocket.BinaryMessage
}

// Encode serializes a snapshot
func Encode(m *core.Match, f Format) ([]byte, error) {
	switch f {
	case FormatMsgpack:
		return msgpack.Marshal(m)
	case FormatJSON:
		return json.Marshal(m)
	}
	return nil, fmt.Errorf("encode: unknown format %d", f)
}

// Decode is the inverse of Encode
func Decode(data []byte, f Format, m *core.Match) error {
	switch f {
	case FormatMsgpack:
		return msgpack.Unmarshal(data, m)
	case FormatJSON:
		return json.Unmarshal(data, m)
	}
	return fmt.Errorf("decode: unknown format %d", f)
}
