package keyboard

import (
	"errors"
	"fmt"
)

// ErrUnknownScancode is returned for bytes that do not complete a known key.
var ErrUnknownScancode = errors.New("keyboard: unknown scancode")

// Prefix and reply bytes of scan code set 2.
const (
	prefixExtended byte = 0xE0
	prefixPause    byte = 0xE1
	prefixBreak    byte = 0xF0

	replyOverrun0 byte = 0x00
	replyBATOK    byte = 0xAA
	replyEcho     byte = 0xEE
	replyAck      byte = 0xFA
	replyResend   byte = 0xFE
	replyOverrun  byte = 0xFF

	fakeShiftLeft  byte = 0x12
	fakeShiftRight byte = 0x59

	// Pause sends E1 14 77 E1 F0 14 F0 77 with no break sequence.
	pauseLen = 8
)

// Event is one physical key transition.
type Event struct {
	Code    Code
	Pressed bool
}

type decodeState uint8

const (
	stateIdle decodeState = iota
	stateBreak
	stateExtended
	stateExtendedBreak
	statePause
)

// Decoder assembles set 2 scan code sequences one byte at a time.
//
// The zero value is ready to use.
type Decoder struct {
	state decodeState
	skip  int
}

// Reset drops any partially received sequence.
func (d *Decoder) Reset() {
	d.state = stateIdle
	d.skip = 0
}

// AddByte consumes one byte. It reports ok once a key transition is
// complete; prefix and controller reply bytes yield no event and no error.
// The Pause key is reported once as ErrUnknownScancode and the rest of its
// sequence is dropped.
func (d *Decoder) AddByte(b byte) (ev Event, ok bool, err error) {
	switch d.state {
	case stateIdle:
		switch b {
		case prefixExtended:
			d.state = stateExtended
			return Event{}, false, nil
		case prefixBreak:
			d.state = stateBreak
			return Event{}, false, nil
		case prefixPause:
			d.state = statePause
			d.skip = pauseLen - 1
			return Event{}, false, fmt.Errorf("%w: pause sequence %#02x", ErrUnknownScancode, b)
		case replyOverrun0, replyBATOK, replyEcho, replyAck, replyResend, replyOverrun:
			return Event{}, false, nil
		}
		return d.finish(set2, b, true)

	case stateBreak:
		return d.finish(set2, b, false)

	case stateExtended:
		switch b {
		case prefixBreak:
			d.state = stateExtendedBreak
			return Event{}, false, nil
		case fakeShiftLeft, fakeShiftRight:
			d.state = stateIdle
			return Event{}, false, nil
		}
		return d.finish(set2Extended, b, true)

	case statePause:
		d.skip--
		if d.skip <= 0 {
			d.state = stateIdle
		}
		return Event{}, false, nil

	case stateExtendedBreak:
		if b == fakeShiftLeft || b == fakeShiftRight {
			d.state = stateIdle
			return Event{}, false, nil
		}
		return d.finish(set2Extended, b, false)
	}

	d.state = stateIdle
	return Event{}, false, fmt.Errorf("keyboard: invalid decoder state %d", d.state)
}

func (d *Decoder) finish(table map[byte]Code, b byte, pressed bool) (Event, bool, error) {
	extended := d.state == stateExtended || d.state == stateExtendedBreak
	d.state = stateIdle
	c, ok := table[b]
	if !ok {
		if extended {
			return Event{}, false, fmt.Errorf("%w: e0 %#02x", ErrUnknownScancode, b)
		}
		return Event{}, false, fmt.Errorf("%w: %#02x", ErrUnknownScancode, b)
	}
	return Event{Code: c, Pressed: pressed}, true, nil
}
