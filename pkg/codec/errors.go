package codec

import (
	"errors"
	"fmt"
)

// Kind classifies a decode failure.
type Kind int

const (
	// InvalidCharacter: a byte that is neither a data symbol nor padding.
	InvalidCharacter Kind = iota + 1
	// MisplacedPadding: padding anywhere but a trailing run of one or two
	// symbols, or any padding for an unpadded engine.
	MisplacedPadding
	// InvalidLength: the text cannot be split into whole groups.
	InvalidLength
	// NonZeroPadding: the filler bits of the final symbol are not zero.
	NonZeroPadding
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrMisplacedPadding = errors.New("misplaced padding")
	ErrInvalidLength    = errors.New("invalid length")
	ErrNonZeroPadding   = errors.New("non-zero filler bits")
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case MisplacedPadding:
		return "MisplacedPadding"
	case InvalidLength:
		return "InvalidLength"
	case NonZeroPadding:
		return "NonZeroPadding"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidCharacter:
		return ErrInvalidCharacter
	case MisplacedPadding:
		return ErrMisplacedPadding
	case InvalidLength:
		return ErrInvalidLength
	case NonZeroPadding:
		return ErrNonZeroPadding
	}
	return nil
}

// DecodeError reports why and where decoding failed. Position is a byte
// offset into the decoded text.
type DecodeError struct {
	Kind     Kind
	Position int
}

func (err DecodeError) Error() string {
	reason := err.Kind.String()
	if s := err.Kind.sentinel(); s != nil {
		reason = s.Error()
	}
	return fmt.Sprintf("codec: %s at offset %d", reason, err.Position)
}

// Unwrap lets errors.Is match the Err* sentinels.
func (err DecodeError) Unwrap() error {
	return err.Kind.sentinel()
}

func newDecodeError(kind Kind, pos int) error {
	return DecodeError{Kind: kind, Position: pos}
}
