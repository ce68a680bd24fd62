package keyboard

import "zxhost/zx"

var direct = map[Code]zx.Key{
	CodeA: zx.KeyA, CodeB: zx.KeyB, CodeC: zx.KeyC, CodeD: zx.KeyD,
	CodeE: zx.KeyE, CodeF: zx.KeyF, CodeG: zx.KeyG, CodeH: zx.KeyH,
	CodeI: zx.KeyI, CodeJ: zx.KeyJ, CodeK: zx.KeyK, CodeL: zx.KeyL,
	CodeM: zx.KeyM, CodeN: zx.KeyN, CodeO: zx.KeyO, CodeP: zx.KeyP,
	CodeQ: zx.KeyQ, CodeR: zx.KeyR, CodeS: zx.KeyS, CodeT: zx.KeyT,
	CodeU: zx.KeyU, CodeV: zx.KeyV, CodeW: zx.KeyW, CodeX: zx.KeyX,
	CodeY: zx.KeyY, CodeZ: zx.KeyZ,

	Code0: zx.Key0, Code1: zx.Key1, Code2: zx.Key2, Code3: zx.Key3,
	Code4: zx.Key4, Code5: zx.Key5, Code6: zx.Key6, Code7: zx.Key7,
	Code8: zx.Key8, Code9: zx.Key9,

	CodeKP0: zx.Key0, CodeKP1: zx.Key1, CodeKP2: zx.Key2, CodeKP3: zx.Key3,
	CodeKP4: zx.Key4, CodeKP5: zx.Key5, CodeKP6: zx.Key6, CodeKP7: zx.Key7,
	CodeKP8: zx.Key8, CodeKP9: zx.Key9,

	CodeEnter:      zx.KeyEnter,
	CodeKPEnter:    zx.KeyEnter,
	CodeSpace:      zx.KeySpace,
	CodeLeftShift:  zx.KeyCapsShift,
	CodeRightShift: zx.KeyCapsShift,
	CodeLeftCtrl:   zx.KeySymShift,
	CodeRightCtrl:  zx.KeySymShift,
}

type combo struct {
	base, modifier zx.Key
}

// modified lists PC keys the 48K keyboard only reaches with a shift held.
var modified = map[Code]combo{
	CodeBackspace: {zx.Key0, zx.KeyCapsShift},
	CodeDelete:    {zx.Key0, zx.KeyCapsShift},
	CodeLeft:      {zx.Key5, zx.KeyCapsShift},
	CodeDown:      {zx.Key6, zx.KeyCapsShift},
	CodeUp:        {zx.Key7, zx.KeyCapsShift},
	CodeRight:     {zx.Key8, zx.KeyCapsShift},
	CodeEscape:    {zx.KeySpace, zx.KeyCapsShift},
	CodeCapsLock:  {zx.Key2, zx.KeyCapsShift},

	CodeComma:      {zx.KeyN, zx.KeySymShift},
	CodePeriod:     {zx.KeyM, zx.KeySymShift},
	CodeSlash:      {zx.KeyV, zx.KeySymShift},
	CodeKPDivide:   {zx.KeyV, zx.KeySymShift},
	CodeSemicolon:  {zx.KeyO, zx.KeySymShift},
	CodeQuote:      {zx.Key7, zx.KeySymShift},
	CodeMinus:      {zx.KeyJ, zx.KeySymShift},
	CodeKPMinus:    {zx.KeyJ, zx.KeySymShift},
	CodeEquals:     {zx.KeyL, zx.KeySymShift},
	CodeKPPlus:     {zx.KeyK, zx.KeySymShift},
	CodeKPMultiply: {zx.KeyB, zx.KeySymShift},

	// Extended mode.
	CodeTab: {zx.KeySymShift, zx.KeyCapsShift},
}

// DirectKey returns the matrix key printed the same as the PC key.
func DirectKey(c Code) (zx.Key, bool) {
	k, ok := direct[c]
	return k, ok
}

// ModifiedKey returns the base and modifier keys that produce c.
func ModifiedKey(c Code) (base, modifier zx.Key, ok bool) {
	m, ok := modified[c]
	return m.base, m.modifier, ok
}

// Map translates a physical key transition into a logical key event.
func Map(c Code, pressed bool) zx.KeyEvent {
	if k, ok := DirectKey(c); ok {
		return zx.Single(k, pressed)
	}
	if base, mod, ok := ModifiedKey(c); ok {
		return zx.Pair(base, mod, pressed)
	}
	return zx.KeyEvent{Kind: zx.NoEvent, Pressed: pressed}
}
