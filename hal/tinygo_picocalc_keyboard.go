//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"

	"zxhost/keyboard"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyAlt       byte = 0xA1
	picoCalcKeyShiftL    byte = 0xA2
	picoCalcKeyShiftR    byte = 0xA3
	picoCalcKeyCtrl      byte = 0xA5
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyTab       byte = 0x09
	picoCalcKeyCapsLock  byte = 0xC1
	picoCalcKeyDel       byte = 0xD4
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
	picoCalcKeyRight     byte = 0xB7
)

// I2C keyboard event states.
const (
	picoCalcPressed  = 0x01
	picoCalcHeld     = 0x02
	picoCalcReleased = 0x03
)

var picoCalcSpecial = map[byte]keyboard.Code{
	picoCalcKeyAlt:       keyboard.CodeLeftAlt,
	picoCalcKeyShiftL:    keyboard.CodeLeftShift,
	picoCalcKeyShiftR:    keyboard.CodeRightShift,
	picoCalcKeyCtrl:      keyboard.CodeLeftCtrl,
	picoCalcKeyBackspace: keyboard.CodeBackspace,
	picoCalcKeyTab:       keyboard.CodeTab,
	picoCalcKeyCapsLock:  keyboard.CodeCapsLock,
	picoCalcKeyDel:       keyboard.CodeDelete,
	picoCalcKeyEsc:       keyboard.CodeEscape,
	picoCalcKeyLeft:      keyboard.CodeLeft,
	picoCalcKeyUp:        keyboard.CodeUp,
	picoCalcKeyDown:      keyboard.CodeDown,
	picoCalcKeyRight:     keyboard.CodeRight,
}

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (original PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to answer after power-up.
			const probeTries = 50
			for i := 0; i < probeTries; i++ {
				if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}

	return nil, fmt.Errorf("keyboard: I2C unavailable")
}

// readEvent polls the keyboard MCU for one press or release.
func (k *i2cKeyboard) readEvent() (keyboard.Code, bool, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return keyboard.CodeUnknown, false, false
	}
	state, key := k.read[0], k.read[1]
	if state == 0 && key == 0 {
		return keyboard.CodeUnknown, false, false
	}

	var pressed bool
	switch state {
	case picoCalcPressed:
		pressed = true
	case picoCalcReleased:
		pressed = false
	default:
		// Held keys repeat in the emulated ROM, not here.
		_ = picoCalcHeld
		return keyboard.CodeUnknown, false, false
	}

	c := translatePicoCalcKey(key)
	if c == keyboard.CodeUnknown {
		return c, false, false
	}
	return c, pressed, true
}

func translatePicoCalcKey(key byte) keyboard.Code {
	if c, ok := picoCalcSpecial[key]; ok {
		return c
	}
	return keyboard.CodeForASCII(key)
}

// newPicoCalcKeyboard starts polling the I2C keyboard and returns its events
// re-encoded as set 2 bytes.
func newPicoCalcKeyboard() (*scanQueue, error) {
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	q := newScanQueue(64)
	go func() {
		var buf [8]byte
		for {
			if c, pressed, ok := kbd.readEvent(); ok {
				q.push(keyboard.Encode(buf[:0], c, pressed)...)
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return q, nil
}
