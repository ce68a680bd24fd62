package keyboard

// Encode appends the set 2 bytes for a key transition to dst.
//
// Hosts without a PS/2 device use it to feed the same decoder path as the
// UART. Keys without a scancode append nothing.
func Encode(dst []byte, c Code, pressed bool) []byte {
	if c == CodeUnknown || c >= numCodes {
		return dst
	}
	sc := reverse[c]
	if sc.b == 0 {
		return dst
	}
	if sc.extended {
		dst = append(dst, prefixExtended)
	}
	if !pressed {
		dst = append(dst, prefixBreak)
	}
	return append(dst, sc.b)
}

var asciiCodes = map[byte]Code{
	' ':  CodeSpace,
	'\r': CodeEnter,
	'\n': CodeEnter,
	0x7F: CodeBackspace,
	0x08: CodeBackspace,
	0x1B: CodeEscape,
	'\t': CodeTab,
	',':  CodeComma,
	'.':  CodePeriod,
	'/':  CodeSlash,
	';':  CodeSemicolon,
	'\'': CodeQuote,
	'-':  CodeMinus,
	'=':  CodeEquals,
	'+':  CodeKPPlus,
	'*':  CodeKPMultiply,
}

// CodeForASCII returns the physical key that types ch, ignoring shift state.
func CodeForASCII(ch byte) Code {
	switch {
	case ch >= 'a' && ch <= 'z':
		return CodeA + Code(ch-'a')
	case ch >= 'A' && ch <= 'Z':
		return CodeA + Code(ch-'A')
	case ch >= '0' && ch <= '9':
		return Code0 + Code(ch-'0')
	}
	if c, ok := asciiCodes[ch]; ok {
		return c
	}
	return CodeUnknown
}

// EncodeASCII appends a make followed by a break sequence for ch. Upper case
// letters are wrapped in a left shift press and release.
func EncodeASCII(dst []byte, ch byte) []byte {
	c := CodeForASCII(ch)
	if c == CodeUnknown {
		return dst
	}
	shift := ch >= 'A' && ch <= 'Z'
	if shift {
		dst = Encode(dst, CodeLeftShift, true)
	}
	dst = Encode(dst, c, true)
	dst = Encode(dst, c, false)
	if shift {
		dst = Encode(dst, CodeLeftShift, false)
	}
	return dst
}
