package spectrum

import (
	"errors"
	"fmt"

	"zxhost/asset"
	"zxhost/tape"
	"zxhost/zx"
)

// ErrTapeAborted wraps the cause of a load that stopped before the end of
// the tape.
var ErrTapeAborted = errors.New("spectrum: tape load aborted")

// exhausted classifies the asset reader's end-of-data error as the end of
// the tape.
func exhausted(err error) bool {
	return errors.Is(err, asset.ErrReadExhausted)
}

type memory interface {
	Poke(addr uint16, v byte)
}

type loader struct {
	r       *tape.Reader
	pending *tape.Header
	blocks  int
}

// LoadTape attaches a TAP image. With fast loading every block is applied
// before LoadTape returns; otherwise one block is consumed per frame.
//
// The asset is read front to back once and never seeked.
func (m *Machine[FB]) LoadTape(a zx.TapeAsset) error {
	l := &loader{r: tape.NewReader(a, exhausted)}
	if !m.settings.TapeFastload {
		m.loader = l
		return nil
	}
	for {
		done, err := l.step(m)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step applies the next block and reports whether the tape is finished.
func (l *loader) step(m memory) (bool, error) {
	b, err := l.r.Next()
	if tape.IsEnd(err) {
		return true, nil
	}
	if err != nil {
		return true, fmt.Errorf("%w after %d blocks: %w", ErrTapeAborted, l.blocks, err)
	}
	l.blocks++

	if b.IsHeader() {
		h, err := tape.ParseHeader(b.Payload)
		if err != nil {
			return true, fmt.Errorf("%w: %w", ErrTapeAborted, err)
		}
		l.pending = &h
		return false, nil
	}

	h := l.pending
	l.pending = nil
	if h == nil || h.Type != tape.TypeCode || b.Flag != tape.FlagData {
		// Headerless data and BASIC programs need a CPU to use.
		return false, nil
	}
	n := len(b.Payload)
	if int(h.Length) < n {
		n = int(h.Length)
	}
	addr := h.Param1
	for i := 0; i < n; i++ {
		m.Poke(addr, b.Payload[i])
		addr++
		if addr == 0 {
			break
		}
	}
	return false, nil
}
