// Package payload embeds binary data as base64 text inside JSON, YAML and
// msgpack documents.
package payload

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/birdayz/b64/pkg/codec"
)

var (
	_ msgpack.CustomEncoder = Bytes(nil)
	_ msgpack.CustomDecoder = (*Bytes)(nil)
	_ msgpack.CustomEncoder = URLBytes(nil)
	_ msgpack.CustomDecoder = (*URLBytes)(nil)
)

// Bytes is marshaled as padded standard base64 text.
type Bytes []byte

func (b Bytes) MarshalText() ([]byte, error) {
	return marshal(codec.Std, b), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	return unmarshal(codec.Std, (*[]byte)(b), text)
}

func (b Bytes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(codec.Std.Encode(b))
}

func (b *Bytes) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpack(codec.Std, (*[]byte)(b), dec)
}

// URLBytes is marshaled as unpadded URL-safe base64 text, the form used in
// tokens and query strings.
type URLBytes []byte

func (b URLBytes) MarshalText() ([]byte, error) {
	return marshal(codec.RawURL, b), nil
}

func (b *URLBytes) UnmarshalText(text []byte) error {
	return unmarshal(codec.RawURL, (*[]byte)(b), text)
}

func (b URLBytes) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(codec.RawURL.Encode(b))
}

func (b *URLBytes) DecodeMsgpack(dec *msgpack.Decoder) error {
	return decodeMsgpack(codec.RawURL, (*[]byte)(b), dec)
}

func marshal(e *codec.Engine, b []byte) []byte {
	return e.AppendEncode(make([]byte, 0, e.EncodedLen(len(b))), b)
}

func unmarshal(e *codec.Engine, dst *[]byte, text []byte) error {
	raw, err := e.DecodeBytes(text)
	if err != nil {
		return fmt.Errorf("payload: %w", err)
	}
	*dst = raw
	return nil
}

func decodeMsgpack(e *codec.Engine, dst *[]byte, dec *msgpack.Decoder) error {
	text, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return unmarshal(e, dst, []byte(text))
}
