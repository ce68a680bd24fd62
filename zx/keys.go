package zx

// Key is one of the 40 keys of the 48K keyboard matrix.
//
// Keys are numbered in half-row order, five per row, starting from the
// least significant data bit: Key/5 is the half-row and Key%5 the bit.
type Key uint8

const (
	KeyCapsShift Key = iota
	KeyZ
	KeyX
	KeyC
	KeyV

	KeyA
	KeyS
	KeyD
	KeyF
	KeyG

	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT

	Key1
	Key2
	Key3
	Key4
	Key5

	Key0
	Key9
	Key8
	Key7
	Key6

	KeyP
	KeyO
	KeyI
	KeyU
	KeyY

	KeyEnter
	KeyL
	KeyK
	KeyJ
	KeyH

	KeySpace
	KeySymShift
	KeyM
	KeyN
	KeyB
)

// NumKeys is the number of keys in the matrix.
const NumKeys = 40

// HalfRows is the number of matrix half-rows.
const HalfRows = 8

// HalfRow returns the matrix row, selected by address line A8+row.
func (k Key) HalfRow() int { return int(k) / 5 }

// Bit returns the data bit the key pulls low when pressed.
func (k Key) Bit() uint8 { return 1 << (uint8(k) % 5) }

var keyNames = [NumKeys]string{
	"CAPS SHIFT", "Z", "X", "C", "V",
	"A", "S", "D", "F", "G",
	"Q", "W", "E", "R", "T",
	"1", "2", "3", "4", "5",
	"0", "9", "8", "7", "6",
	"P", "O", "I", "U", "Y",
	"ENTER", "L", "K", "J", "H",
	"SPACE", "SYMBOL SHIFT", "M", "N", "B",
}

func (k Key) String() string {
	if int(k) >= NumKeys {
		return "invalid"
	}
	return keyNames[k]
}

// KeyEventKind classifies a KeyEvent.
type KeyEventKind uint8

const (
	NoEvent KeyEventKind = iota
	// SingleKey carries one logical key.
	SingleKey
	// KeyWithModifier carries a base key plus a synthetic modifier key.
	KeyWithModifier
)

// KeyEvent is the logical result of one physical key transition.
type KeyEvent struct {
	Kind     KeyEventKind
	Key      Key
	Modifier Key
	Pressed  bool
}

// Single returns an event for one logical key.
func Single(k Key, pressed bool) KeyEvent {
	return KeyEvent{Kind: SingleKey, Key: k, Pressed: pressed}
}

// Pair returns an event for a base key plus a modifier sharing one state.
func Pair(base, modifier Key, pressed bool) KeyEvent {
	return KeyEvent{Kind: KeyWithModifier, Key: base, Modifier: modifier, Pressed: pressed}
}
