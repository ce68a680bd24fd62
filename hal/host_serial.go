//go:build !tinygo

package hal

import (
	"context"
	"os"

	"zxhost/keyboard"

	"golang.org/x/term"
)

const ctrlC = 0x03

// pumpStdin feeds q from standard input until it closes. A terminal is put
// in raw mode and typed characters become key presses; Ctrl-C calls cancel.
// Any other stdin is taken to carry raw set 2 bytes.
func pumpStdin(ctx context.Context, cancel context.CancelFunc, q *scanQueue) (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		go feedRaw(ctx, os.Stdin, q)
		return func() {}, nil
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	go readInto(ctx, os.Stdin, func(b []byte) { typeASCII(q, b, cancel) })
	return func() { _ = term.Restore(fd, old) }, nil
}

func typeASCII(q *scanQueue, b []byte, cancel context.CancelFunc) {
	var buf [16]byte
	for _, c := range b {
		if c == ctrlC {
			cancel()
			return
		}
		q.push(keyboard.EncodeASCII(buf[:0], c)...)
	}
}
