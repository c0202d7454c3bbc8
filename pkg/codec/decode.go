package codec

// scanState tracks where the decoder is in the text. A scan starts in
// scanData, moves to scanPad on the first padding symbol and ends either
// with the count of data symbols (done) or a DecodeError (failed).
type scanState int

const (
	// scanData expects a data symbol or the start of the padding run.
	scanData scanState = iota
	// scanPad expects more padding or the end of the text.
	scanPad
)

// maxPadRun is the longest padding run a single short group can need.
const maxPadRun = 2

// Decode returns the bytes encoded in text. Failures are reported as a
// DecodeError. The first failing check wins, in this order: invalid
// characters, misplaced padding, length, filler bits.
func (e *Engine) Decode(text string) ([]byte, error) {
	n, err := e.scan(text)
	if err != nil {
		return nil, err
	}
	return e.decodeSymbols(make([]byte, 0, n*6/8), text[:n])
}

// DecodeBytes is Decode for text held in a byte slice.
func (e *Engine) DecodeBytes(src []byte) ([]byte, error) {
	return e.Decode(string(src))
}

// scan validates every byte of text and returns the number of data symbols
// before the padding run.
func (e *Engine) scan(text string) (int, error) {
	a := e.alphabet

	state := scanData
	dataLen := len(text)
	misplaced := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if a.IsPadding(c) {
			if state == scanData {
				state = scanPad
				dataLen = i
				if e.padding == Unpadded && misplaced < 0 {
					misplaced = i
				}
			}
			continue
		}
		if _, err := a.IndexOf(c); err != nil {
			return 0, newDecodeError(InvalidCharacter, i)
		}
		// Data after padding. Keep scanning, an invalid character later
		// in the text takes precedence.
		if state == scanPad && misplaced < 0 {
			misplaced = dataLen
		}
	}

	if misplaced >= 0 {
		return 0, newDecodeError(MisplacedPadding, misplaced)
	}
	if state == scanPad && len(text)-dataLen > maxPadRun {
		return 0, newDecodeError(MisplacedPadding, dataLen)
	}

	if e.padding == Padded {
		if rem := len(text) % 4; rem != 0 {
			return 0, newDecodeError(InvalidLength, len(text)-rem)
		}
	} else if dataLen%4 == 1 {
		// Six bits cannot complete a byte.
		return 0, newDecodeError(InvalidLength, dataLen-1)
	}
	return dataLen, nil
}

// decodeSymbols appends the bytes for a run of data symbols that scan has
// already validated.
func (e *Engine) decodeSymbols(dst []byte, symbols string) ([]byte, error) {
	full := len(symbols) / 4 * 4
	for i := 0; i < full; i += 4 {
		v := e.value(symbols[i])<<18 | e.value(symbols[i+1])<<12 | e.value(symbols[i+2])<<6 | e.value(symbols[i+3])
		dst = append(dst, byte(v>>16), byte(v>>8), byte(v))
	}

	switch len(symbols) - full {
	case 2:
		last := e.value(symbols[full+1])
		if e.filler == Strict && last&0x0F != 0 {
			return nil, newDecodeError(NonZeroPadding, full+1)
		}
		v := e.value(symbols[full])<<18 | last<<12
		dst = append(dst, byte(v>>16))
	case 3:
		last := e.value(symbols[full+2])
		if e.filler == Strict && last&0x03 != 0 {
			return nil, newDecodeError(NonZeroPadding, full+2)
		}
		v := e.value(symbols[full])<<18 | e.value(symbols[full+1])<<12 | last<<6
		dst = append(dst, byte(v>>16), byte(v>>8))
	}
	return dst, nil
}

func (e *Engine) value(c byte) uint32 {
	v, _ := e.alphabet.IndexOf(c)
	return uint32(v)
}
