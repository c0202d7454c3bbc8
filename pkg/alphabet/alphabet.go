// Package alphabet holds the symbol tables shared by the encoder and the
// decoder: 64 data symbols indexed 0..63 and one padding symbol.
package alphabet

import (
	"errors"
	"fmt"
)

// Size is the number of data symbols in an alphabet.
const Size = 64

// StdPadding is the padding symbol used by the predefined alphabets.
const StdPadding byte = '='

// ErrInvalidSymbol is returned by IndexOf for any byte that is not one of
// the 64 data symbols, the padding symbol included.
var ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

var (
	// Standard is the classic A-Z a-z 0-9 + / table.
	Standard = Must("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", StdPadding)
	// URLSafe replaces + and / with - and _ so encoded text survives URLs and
	// file names unescaped.
	URLSafe = Must("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", StdPadding)
)

// Alphabet is an immutable pair of lookup tables. It is safe to share
// between goroutines.
type Alphabet struct {
	encode [Size]byte
	decode [256]int8
	pad    byte
}

// New builds an alphabet from exactly 64 distinct printable ASCII symbols
// and a padding symbol that is not one of them.
func New(symbols string, pad byte) (*Alphabet, error) {
	if len(symbols) != Size {
		return nil, fmt.Errorf("alphabet must be %d bytes long, got %d", Size, len(symbols))
	}
	if !printable(pad) {
		return nil, fmt.Errorf("padding symbol %q is not printable ASCII", pad)
	}

	a := &Alphabet{pad: pad}
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < Size; i++ {
		c := symbols[i]
		switch {
		case !printable(c):
			return nil, fmt.Errorf("symbol %q at index %d is not printable ASCII", c, i)
		case c == pad:
			return nil, fmt.Errorf("padding symbol %q is also a data symbol (index %d)", c, i)
		case a.decode[c] != -1:
			return nil, fmt.Errorf("symbol %q appears at index %d and %d", c, a.decode[c], i)
		}
		a.encode[i] = c
		a.decode[c] = int8(i)
	}
	return a, nil
}

// Must is like New but panics on error. Use it for package-level tables.
func Must(symbols string, pad byte) *Alphabet {
	a, err := New(symbols, pad)
	if err != nil {
		panic(err)
	}
	return a
}

// SymbolAt returns the symbol for a 6-bit value. Only the low six bits of
// index are used.
func (a *Alphabet) SymbolAt(index byte) byte {
	return a.encode[index&0x3F]
}

// IndexOf returns the 6-bit value of a data symbol.
func (a *Alphabet) IndexOf(symbol byte) (byte, error) {
	v := a.decode[symbol]
	if v < 0 {
		return 0, ErrInvalidSymbol
	}
	return byte(v), nil
}

// IsPadding reports whether symbol is the padding symbol.
func (a *Alphabet) IsPadding(symbol byte) bool {
	return symbol == a.pad
}

// Padding returns the padding symbol.
func (a *Alphabet) Padding() byte {
	return a.pad
}

// Symbols returns the 64 data symbols in index order.
func (a *Alphabet) Symbols() string {
	return string(a.encode[:])
}

// Equal reports whether both alphabets map every value to the same symbol
// and share the padding symbol.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.encode == b.encode && a.pad == b.pad
}

func printable(c byte) bool {
	return c > ' ' && c < 0x7F
}
