// Package keyboard decodes PS/2 scan code set 2 byte streams into physical
// key transitions and maps those onto keys of the emulated machine.
package keyboard

import "strconv"

// Code identifies a physical key on a 104-key PC keyboard.
type Code uint8

const (
	CodeUnknown Code = iota

	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeEnter
	CodeSpace
	CodeBackspace
	CodeTab
	CodeEscape
	CodeCapsLock
	CodeLeftShift
	CodeRightShift
	CodeLeftCtrl
	CodeRightCtrl
	CodeLeftAlt
	CodeRightAlt
	CodeLeftGUI
	CodeRightGUI
	CodeMenu

	CodeBacktick
	CodeMinus
	CodeEquals
	CodeLeftBracket
	CodeRightBracket
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeComma
	CodePeriod
	CodeSlash

	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeInsert
	CodeDelete
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodePrintScreen
	CodeScrollLock

	CodeNumLock
	CodeKP0
	CodeKP1
	CodeKP2
	CodeKP3
	CodeKP4
	CodeKP5
	CodeKP6
	CodeKP7
	CodeKP8
	CodeKP9
	CodeKPPeriod
	CodeKPPlus
	CodeKPMinus
	CodeKPMultiply
	CodeKPDivide
	CodeKPEnter

	numCodes
)

// set2 maps single-byte make codes.
var set2 = map[byte]Code{
	0x01: CodeF9,
	0x03: CodeF5,
	0x04: CodeF3,
	0x05: CodeF1,
	0x06: CodeF2,
	0x07: CodeF12,
	0x09: CodeF10,
	0x0A: CodeF8,
	0x0B: CodeF6,
	0x0C: CodeF4,
	0x0D: CodeTab,
	0x0E: CodeBacktick,
	0x11: CodeLeftAlt,
	0x12: CodeLeftShift,
	0x14: CodeLeftCtrl,
	0x15: CodeQ,
	0x16: Code1,
	0x1A: CodeZ,
	0x1B: CodeS,
	0x1C: CodeA,
	0x1D: CodeW,
	0x1E: Code2,
	0x21: CodeC,
	0x22: CodeX,
	0x23: CodeD,
	0x24: CodeE,
	0x25: Code4,
	0x26: Code3,
	0x29: CodeSpace,
	0x2A: CodeV,
	0x2B: CodeF,
	0x2C: CodeT,
	0x2D: CodeR,
	0x2E: Code5,
	0x31: CodeN,
	0x32: CodeB,
	0x33: CodeH,
	0x34: CodeG,
	0x35: CodeY,
	0x36: Code6,
	0x3A: CodeM,
	0x3B: CodeJ,
	0x3C: CodeU,
	0x3D: Code7,
	0x3E: Code8,
	0x41: CodeComma,
	0x42: CodeK,
	0x43: CodeI,
	0x44: CodeO,
	0x45: Code0,
	0x46: Code9,
	0x49: CodePeriod,
	0x4A: CodeSlash,
	0x4B: CodeL,
	0x4C: CodeSemicolon,
	0x4D: CodeP,
	0x4E: CodeMinus,
	0x52: CodeQuote,
	0x54: CodeLeftBracket,
	0x55: CodeEquals,
	0x58: CodeCapsLock,
	0x59: CodeRightShift,
	0x5A: CodeEnter,
	0x5B: CodeRightBracket,
	0x5D: CodeBackslash,
	0x66: CodeBackspace,
	0x69: CodeKP1,
	0x6B: CodeKP4,
	0x6C: CodeKP7,
	0x70: CodeKP0,
	0x71: CodeKPPeriod,
	0x72: CodeKP2,
	0x73: CodeKP5,
	0x74: CodeKP6,
	0x75: CodeKP8,
	0x76: CodeEscape,
	0x77: CodeNumLock,
	0x78: CodeF11,
	0x79: CodeKPPlus,
	0x7A: CodeKP3,
	0x7B: CodeKPMinus,
	0x7C: CodeKPMultiply,
	0x7D: CodeKP9,
	0x7E: CodeScrollLock,
	0x83: CodeF7,
}

// set2Extended maps make codes that follow an 0xE0 prefix.
var set2Extended = map[byte]Code{
	0x11: CodeRightAlt,
	0x14: CodeRightCtrl,
	0x1F: CodeLeftGUI,
	0x27: CodeRightGUI,
	0x2F: CodeMenu,
	0x4A: CodeKPDivide,
	0x5A: CodeKPEnter,
	0x69: CodeEnd,
	0x6B: CodeLeft,
	0x6C: CodeHome,
	0x70: CodeInsert,
	0x71: CodeDelete,
	0x72: CodeDown,
	0x74: CodeRight,
	0x75: CodeUp,
	0x7A: CodePageDown,
	0x7C: CodePrintScreen,
	0x7D: CodePageUp,
}

// scancode is the inverse of set2 and set2Extended, used by Encode.
type scancode struct {
	b        byte
	extended bool
}

var reverse = buildReverse()

func buildReverse() [numCodes]scancode {
	var r [numCodes]scancode
	for b, c := range set2 {
		r[c] = scancode{b: b}
	}
	for b, c := range set2Extended {
		r[c] = scancode{b: b, extended: true}
	}
	return r
}

var codeNames = map[Code]string{
	CodeEnter:      "Enter",
	CodeSpace:      "Space",
	CodeBackspace:  "Backspace",
	CodeTab:        "Tab",
	CodeEscape:     "Escape",
	CodeLeftShift:  "LeftShift",
	CodeRightShift: "RightShift",
	CodeLeftCtrl:   "LeftCtrl",
	CodeRightCtrl:  "RightCtrl",
	CodeUp:         "Up",
	CodeDown:       "Down",
	CodeLeft:       "Left",
	CodeRight:      "Right",
}

func (c Code) String() string {
	switch {
	case c >= CodeA && c <= CodeZ:
		return string(rune('A' + c - CodeA))
	case c >= Code0 && c <= Code9:
		return string(rune('0' + c - Code0))
	}
	if s, ok := codeNames[c]; ok {
		return s
	}
	if c == CodeUnknown {
		return "Unknown"
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}
