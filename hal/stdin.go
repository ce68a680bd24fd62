//go:build !tinygo || !baremetal

package hal

import (
	"context"
	"io"
)

// feedRaw copies set 2 bytes from r into q until r fails or ctx ends.
func feedRaw(ctx context.Context, r io.Reader, q *scanQueue) {
	readInto(ctx, r, func(b []byte) { q.push(b...) })
}

func readInto(ctx context.Context, r io.Reader, sink func([]byte)) {
	buf := make([]byte, 64)
	for ctx.Err() == nil {
		n, err := r.Read(buf)
		if n > 0 {
			sink(buf[:n])
		}
		if err != nil {
			return
		}
	}
}
