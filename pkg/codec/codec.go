// Package codec converts bytes to base64 text and back.
//
// An Engine pairs an alphabet with two policies that are fixed when the
// engine is built:
//
//   - Padding: Padded engines end short groups with padding symbols and only
//     accept input whose length is a multiple of four. Unpadded engines never
//     emit padding and reject it on input.
//   - FillerBits: Strict engines reject text whose final symbol carries
//     non-zero filler bits. Lenient engines drop those bits.
//
// Engines hold no mutable state and are safe for concurrent use.
package codec

import "github.com/birdayz/b64/pkg/alphabet"

// Padding selects whether encoded text is padded to a multiple of four
// symbols.
type Padding int

const (
	// Padded pads the final group to four symbols.
	Padded Padding = iota
	// Unpadded never writes padding and rejects it on input.
	Unpadded
)

func (p Padding) String() string {
	if p == Unpadded {
		return "unpadded"
	}
	return "padded"
}

// FillerBits selects how the decoder treats non-zero filler bits in the
// last symbol of a short final group.
type FillerBits int

const (
	// Strict rejects non-zero filler bits.
	Strict FillerBits = iota
	// Lenient ignores filler bits.
	Lenient
)

func (f FillerBits) String() string {
	if f == Lenient {
		return "lenient"
	}
	return "strict"
}

var (
	// Std uses the standard alphabet with padding.
	Std = New(alphabet.Standard)
	// URL uses the URL-safe alphabet with padding.
	URL = New(alphabet.URLSafe)
	// RawStd uses the standard alphabet without padding.
	RawStd = New(alphabet.Standard, WithPadding(Unpadded))
	// RawURL uses the URL-safe alphabet without padding.
	RawURL = New(alphabet.URLSafe, WithPadding(Unpadded))
)

// Engine encodes and decodes with one alphabet and one fixed set of
// policies.
type Engine struct {
	alphabet *alphabet.Alphabet
	padding  Padding
	filler   FillerBits
}

// Option configures an Engine.
type Option func(*Engine)

// WithPadding sets the padding policy. The default is Padded.
func WithPadding(p Padding) Option {
	return func(e *Engine) {
		e.padding = p
	}
}

// WithFillerBits sets the filler bit policy. The default is Strict.
func WithFillerBits(f FillerBits) Option {
	return func(e *Engine) {
		e.filler = f
	}
}

// New returns an engine for the given alphabet.
func New(a *alphabet.Alphabet, opts ...Option) *Engine {
	e := &Engine{alphabet: a}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() *alphabet.Alphabet { return e.alphabet }

// Padding returns the engine's padding policy.
func (e *Engine) Padding() Padding { return e.padding }

// FillerBits returns the engine's filler bit policy.
func (e *Engine) FillerBits() FillerBits { return e.filler }

// EncodedLen returns the length of the text produced for n input bytes.
func (e *Engine) EncodedLen(n int) int {
	if e.padding == Unpadded {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes decoded from n symbols.
func (e *Engine) DecodedLen(n int) int {
	if e.padding == Unpadded {
		return n * 6 / 8
	}
	return n / 4 * 3
}

// Encode encodes src with the standard padded engine.
func Encode(src []byte) string {
	return Std.Encode(src)
}

// Decode decodes text with the standard padded engine.
func Decode(text string) ([]byte, error) {
	return Std.Decode(text)
}
