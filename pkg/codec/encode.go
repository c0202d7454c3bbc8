package codec

// Encode returns the text for src. It never fails; empty input yields "".
func (e *Engine) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return string(e.AppendEncode(make([]byte, 0, e.EncodedLen(len(src))), src))
}

// AppendEncode appends the text for src to dst and returns the extended
// slice.
func (e *Engine) AppendEncode(dst, src []byte) []byte {
	a := e.alphabet

	full := len(src) / 3 * 3
	for i := 0; i < full; i += 3 {
		v := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		dst = append(dst,
			a.SymbolAt(byte(v>>18)),
			a.SymbolAt(byte(v>>12)),
			a.SymbolAt(byte(v>>6)),
			a.SymbolAt(byte(v)),
		)
	}

	// Missing low bytes stay zero, which makes the filler bits zero.
	switch len(src) - full {
	case 1:
		v := uint32(src[full]) << 16
		dst = append(dst, a.SymbolAt(byte(v>>18)), a.SymbolAt(byte(v>>12)))
		if e.padding == Padded {
			dst = append(dst, a.Padding(), a.Padding())
		}
	case 2:
		v := uint32(src[full])<<16 | uint32(src[full+1])<<8
		dst = append(dst, a.SymbolAt(byte(v>>18)), a.SymbolAt(byte(v>>12)), a.SymbolAt(byte(v>>6)))
		if e.padding == Padded {
			dst = append(dst, a.Padding())
		}
	}
	return dst
}
