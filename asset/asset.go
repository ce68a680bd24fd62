// Package asset exposes an immutable, fully resident byte blob as a
// forward-only tape asset.
package asset

import (
	_ "embed"
	"errors"
)

var (
	// ErrReadExhausted is returned by Read once every byte has been consumed.
	ErrReadExhausted = errors.New("asset: read exhausted")
	// ErrSeekNotSupported is returned by every Seek call.
	ErrSeekNotSupported = errors.New("asset: seek not supported")
)

// Demo is the tape image built into the firmware.
//
//go:embed data/demo.tap
var Demo []byte

// Reader reads an in-memory blob front to back.
type Reader struct {
	data []byte
	pos  int
}

// New returns a Reader positioned at the start of data.
func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Read copies up to len(p) bytes and advances the cursor.
//
// Once the cursor reaches the end every call fails with ErrReadExhausted,
// whatever the size of p.
func (r *Reader) Read(p []byte) (int, error) {
	remaining := len(r.data) - r.pos
	if remaining == 0 {
		return 0, ErrReadExhausted
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Seek is not available on this asset.
func (r *Reader) Seek(int64, int) (int64, error) {
	return int64(r.pos), ErrSeekNotSupported
}

// Len is the size of the blob.
func (r *Reader) Len() int { return len(r.data) }

// Remaining is the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }
