package encoding

import (
	"encoding/hex"
	"fmt"

	"github.com/birdayz/b64/pkg/codec"
)

var (
	_ = Encoder(Base64Serde{})
	_ = Decoder(Base64Serde{})
	_ = Encoder(HexSerde{})
	_ = Decoder(HexSerde{})
	_ = Encoder(BypassSerde{})
	_ = Decoder(BypassSerde{})
)

// Encoder reads a user-provided text string, and turns it into the wire format.
type Encoder interface {
	Encode([]byte) ([]byte, error)
}

// Decoder reads the wire-format, and turns it into a human readable text format.
type Decoder interface {
	Decode([]byte) ([]byte, error)
}

// Base64Serde converts base64 text to raw bytes and back with one engine.
// A zero value uses codec.Std.
type Base64Serde struct {
	Engine *codec.Engine
}

func (s Base64Serde) engine() *codec.Engine {
	if s.Engine == nil {
		return codec.Std
	}
	return s.Engine
}

// Encode decodes base64 text into wire bytes. The DecodeError is kept in
// the chain.
func (s Base64Serde) Encode(text []byte) ([]byte, error) {
	raw, err := s.engine().DecodeBytes(text)
	if err != nil {
		return nil, fmt.Errorf("input is not valid base64: %w", err)
	}
	return raw, nil
}

// Decode renders wire bytes as base64 text.
func (s Base64Serde) Decode(raw []byte) ([]byte, error) {
	return s.engine().AppendEncode(make([]byte, 0, s.engine().EncodedLen(len(raw))), raw), nil
}

// HexSerde converts hex text to raw bytes and back.
type HexSerde struct{}

func (HexSerde) Encode(text []byte) ([]byte, error) {
	dst := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(dst, text); err != nil {
		return nil, fmt.Errorf("input is not valid hex: %w", err)
	}
	return dst, nil
}

func (HexSerde) Decode(raw []byte) ([]byte, error) {
	return []byte(hex.EncodeToString(raw)), nil
}

// BypassSerde is a no-op implementation of Encoder and Decoder
type BypassSerde struct{}

func (BypassSerde) Encode(in []byte) ([]byte, error) {
	return in, nil
}

func (BypassSerde) Decode(in []byte) ([]byte, error) {
	return in, nil
}
