package keyboard

import (
	"errors"
	"testing"

	"zxhost/zx"
)

func feed(t *testing.T, d *Decoder, bytes ...byte) []Event {
	t.Helper()
	var out []Event
	for _, b := range bytes {
		ev, ok, err := d.AddByte(b)
		if err != nil {
			t.Fatalf("AddByte(%#02x) error = %v", b, err)
		}
		if ok {
			out = append(out, ev)
		}
	}
	return out
}

func TestDecoderMakeBreak(t *testing.T) {
	var d Decoder
	got := feed(t, &d, 0x1C, 0xF0, 0x1C)
	want := []Event{{CodeA, true}, {CodeA, false}}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoderExtended(t *testing.T) {
	var d Decoder
	got := feed(t, &d, 0xE0, 0x75, 0xE0, 0xF0, 0x75)
	if len(got) != 2 || got[0] != (Event{CodeUp, true}) || got[1] != (Event{CodeUp, false}) {
		t.Fatalf("events = %v, want Up press and release", got)
	}
}

func TestDecoderSwallowsFakeShiftAndReplies(t *testing.T) {
	var d Decoder
	// Print Screen as sent by most keyboards: fake shift then E0 7C.
	got := feed(t, &d, 0xAA, 0xFA, 0xE0, 0x12, 0xE0, 0x7C, 0xE0, 0xF0, 0x7C, 0xE0, 0xF0, 0x12)
	if len(got) != 2 || got[0].Code != CodePrintScreen || got[1].Pressed {
		t.Fatalf("events = %v, want PrintScreen press and release", got)
	}
}

func TestDecoderUnknownResets(t *testing.T) {
	var d Decoder
	for _, seq := range [][]byte{{0x02}, {0xE0, 0x01}, {0xF0, 0x02}} {
		var err error
		for _, b := range seq {
			_, _, err = d.AddByte(b)
		}
		if !errors.Is(err, ErrUnknownScancode) {
			t.Fatalf("AddByte(% x) error = %v, want ErrUnknownScancode", seq, err)
		}
		if got := feed(t, &d, 0x29); len(got) != 1 || got[0] != (Event{CodeSpace, true}) {
			t.Fatalf("after % x: events = %v, want Space press", seq, got)
		}
	}
}

func TestDecoderDropsPauseSequence(t *testing.T) {
	var d Decoder
	if _, _, err := d.AddByte(0xE1); !errors.Is(err, ErrUnknownScancode) {
		t.Fatalf("AddByte(0xe1) error = %v, want ErrUnknownScancode", err)
	}
	if got := feed(t, &d, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77); len(got) != 0 {
		t.Fatalf("pause tail events = %v, want none", got)
	}
	if got := feed(t, &d, 0x14); len(got) != 1 || got[0] != (Event{CodeLeftCtrl, true}) {
		t.Fatalf("after pause: events = %v, want LeftCtrl press", got)
	}

	d.AddByte(0xE1)
	d.Reset()
	if got := feed(t, &d, 0x29); len(got) != 1 || got[0] != (Event{CodeSpace, true}) {
		t.Fatalf("after Reset: events = %v, want Space press", got)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	var d Decoder
	for c := CodeA; c < numCodes; c++ {
		for _, pressed := range []bool{true, false} {
			raw := Encode(nil, c, pressed)
			if len(raw) == 0 {
				continue
			}
			got := feed(t, &d, raw...)
			if len(got) != 1 || got[0] != (Event{c, pressed}) {
				t.Fatalf("decode(Encode(%v, %v)) = %v", c, pressed, got)
			}
		}
	}
	if got := Encode(nil, CodeUnknown, true); len(got) != 0 {
		t.Fatalf("Encode(CodeUnknown) = % x, want nothing", got)
	}
}

func TestEncodeASCII(t *testing.T) {
	var d Decoder
	got := feed(t, &d, EncodeASCII(nil, 'Q')...)
	want := []Event{{CodeLeftShift, true}, {CodeQ, true}, {CodeQ, false}, {CodeLeftShift, false}}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if got := EncodeASCII(nil, '~'); len(got) != 0 {
		t.Fatalf("EncodeASCII('~') = % x, want nothing", got)
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		code    Code
		pressed bool
		want    zx.KeyEvent
	}{
		{CodeA, true, zx.Single(zx.KeyA, true)},
		{CodeKP7, false, zx.Single(zx.Key7, false)},
		{CodeRightShift, true, zx.Single(zx.KeyCapsShift, true)},
		{CodeLeftCtrl, true, zx.Single(zx.KeySymShift, true)},
		{CodeBackspace, true, zx.Pair(zx.Key0, zx.KeyCapsShift, true)},
		{CodeLeft, false, zx.Pair(zx.Key5, zx.KeyCapsShift, false)},
		{CodeComma, true, zx.Pair(zx.KeyN, zx.KeySymShift, true)},
		{CodeTab, true, zx.Pair(zx.KeySymShift, zx.KeyCapsShift, true)},
		{CodeF1, true, zx.KeyEvent{Kind: zx.NoEvent, Pressed: true}},
	}
	for _, tt := range tests {
		if got := Map(tt.code, tt.pressed); got != tt.want {
			t.Fatalf("Map(%v, %v) = %+v, want %+v", tt.code, tt.pressed, got, tt.want)
		}
	}
}

func TestDirectTakesPrecedence(t *testing.T) {
	for c := range direct {
		if _, _, ok := ModifiedKey(c); ok {
			t.Fatalf("%v is both direct and modified", c)
		}
	}
}
