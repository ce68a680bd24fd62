//go:build !tinygo && cgo

package hal

import (
	"zxhost/keyboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var hostKeys = []struct {
	key  ebiten.Key
	code keyboard.Code
}{
	{ebiten.KeyA, keyboard.CodeA}, {ebiten.KeyB, keyboard.CodeB}, {ebiten.KeyC, keyboard.CodeC},
	{ebiten.KeyD, keyboard.CodeD}, {ebiten.KeyE, keyboard.CodeE}, {ebiten.KeyF, keyboard.CodeF},
	{ebiten.KeyG, keyboard.CodeG}, {ebiten.KeyH, keyboard.CodeH}, {ebiten.KeyI, keyboard.CodeI},
	{ebiten.KeyJ, keyboard.CodeJ}, {ebiten.KeyK, keyboard.CodeK}, {ebiten.KeyL, keyboard.CodeL},
	{ebiten.KeyM, keyboard.CodeM}, {ebiten.KeyN, keyboard.CodeN}, {ebiten.KeyO, keyboard.CodeO},
	{ebiten.KeyP, keyboard.CodeP}, {ebiten.KeyQ, keyboard.CodeQ}, {ebiten.KeyR, keyboard.CodeR},
	{ebiten.KeyS, keyboard.CodeS}, {ebiten.KeyT, keyboard.CodeT}, {ebiten.KeyU, keyboard.CodeU},
	{ebiten.KeyV, keyboard.CodeV}, {ebiten.KeyW, keyboard.CodeW}, {ebiten.KeyX, keyboard.CodeX},
	{ebiten.KeyY, keyboard.CodeY}, {ebiten.KeyZ, keyboard.CodeZ},

	{ebiten.KeyDigit0, keyboard.Code0}, {ebiten.KeyDigit1, keyboard.Code1},
	{ebiten.KeyDigit2, keyboard.Code2}, {ebiten.KeyDigit3, keyboard.Code3},
	{ebiten.KeyDigit4, keyboard.Code4}, {ebiten.KeyDigit5, keyboard.Code5},
	{ebiten.KeyDigit6, keyboard.Code6}, {ebiten.KeyDigit7, keyboard.Code7},
	{ebiten.KeyDigit8, keyboard.Code8}, {ebiten.KeyDigit9, keyboard.Code9},

	{ebiten.KeyEnter, keyboard.CodeEnter},
	{ebiten.KeySpace, keyboard.CodeSpace},
	{ebiten.KeyBackspace, keyboard.CodeBackspace},
	{ebiten.KeyTab, keyboard.CodeTab},
	{ebiten.KeyEscape, keyboard.CodeEscape},
	{ebiten.KeyCapsLock, keyboard.CodeCapsLock},
	{ebiten.KeyShiftLeft, keyboard.CodeLeftShift},
	{ebiten.KeyShiftRight, keyboard.CodeRightShift},
	{ebiten.KeyControlLeft, keyboard.CodeLeftCtrl},
	{ebiten.KeyControlRight, keyboard.CodeRightCtrl},
	{ebiten.KeyAltLeft, keyboard.CodeLeftAlt},
	{ebiten.KeyAltRight, keyboard.CodeRightAlt},

	{ebiten.KeyMinus, keyboard.CodeMinus},
	{ebiten.KeyEqual, keyboard.CodeEquals},
	{ebiten.KeySemicolon, keyboard.CodeSemicolon},
	{ebiten.KeyQuote, keyboard.CodeQuote},
	{ebiten.KeyComma, keyboard.CodeComma},
	{ebiten.KeyPeriod, keyboard.CodePeriod},
	{ebiten.KeySlash, keyboard.CodeSlash},

	{ebiten.KeyArrowUp, keyboard.CodeUp},
	{ebiten.KeyArrowDown, keyboard.CodeDown},
	{ebiten.KeyArrowLeft, keyboard.CodeLeft},
	{ebiten.KeyArrowRight, keyboard.CodeRight},
	{ebiten.KeyDelete, keyboard.CodeDelete},

	{ebiten.KeyNumpad0, keyboard.CodeKP0}, {ebiten.KeyNumpad1, keyboard.CodeKP1},
	{ebiten.KeyNumpad2, keyboard.CodeKP2}, {ebiten.KeyNumpad3, keyboard.CodeKP3},
	{ebiten.KeyNumpad4, keyboard.CodeKP4}, {ebiten.KeyNumpad5, keyboard.CodeKP5},
	{ebiten.KeyNumpad6, keyboard.CodeKP6}, {ebiten.KeyNumpad7, keyboard.CodeKP7},
	{ebiten.KeyNumpad8, keyboard.CodeKP8}, {ebiten.KeyNumpad9, keyboard.CodeKP9},
	{ebiten.KeyNumpadEnter, keyboard.CodeKPEnter},
	{ebiten.KeyNumpadAdd, keyboard.CodeKPPlus},
	{ebiten.KeyNumpadSubtract, keyboard.CodeKPMinus},
	{ebiten.KeyNumpadMultiply, keyboard.CodeKPMultiply},
	{ebiten.KeyNumpadDivide, keyboard.CodeKPDivide},
}

// pollKeyboard encodes this tick's key transitions as set 2 bytes so the
// window feeds the same decoder a PS/2 keyboard would.
func pollKeyboard(q *scanQueue) {
	var buf [8]byte
	for _, k := range hostKeys {
		switch {
		case inpututil.IsKeyJustPressed(k.key):
			q.push(keyboard.Encode(buf[:0], k.code, true)...)
		case inpututil.IsKeyJustReleased(k.key):
			q.push(keyboard.Encode(buf[:0], k.code, false)...)
		}
	}
}
