package tape

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// EndOfSource reports whether err means the underlying source has no more
// bytes. Sources signal this with io.EOF or with their own sentinel.
type EndOfSource func(err error) bool

// Reader decodes blocks from a byte source.
type Reader struct {
	r     io.Reader
	isEnd EndOfSource
	buf   []byte
}

// NewReader returns a Reader over r. isEnd classifies the errors r returns
// when it is drained; io.EOF is always treated as the end.
func NewReader(r io.Reader, isEnd EndOfSource) *Reader {
	return &Reader{r: r, isEnd: isEnd}
}

func (r *Reader) end(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	return r.isEnd != nil && r.isEnd(err)
}

// readFull fills p, returning the number of bytes read before the source
// ran out.
func (r *Reader) readFull(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := r.r.Read(p[n:])
		n += m
		if err != nil {
			if r.end(err) {
				return n, ErrEnd
			}
			return n, err
		}
		if m == 0 {
			return n, io.ErrNoProgress
		}
	}
	return n, nil
}

// Next decodes the next block.
//
// It returns ErrEnd when the source is drained exactly at a block boundary
// and ErrTruncated when it runs out inside a block. The returned payload is
// only valid until the next call.
func (r *Reader) Next() (Block, error) {
	var lenBuf [2]byte
	n, err := r.readFull(lenBuf[:])
	if err != nil {
		if errors.Is(err, ErrEnd) && n == 0 {
			return Block{}, ErrEnd
		}
		if errors.Is(err, ErrEnd) {
			return Block{}, ErrTruncated
		}
		return Block{}, fmt.Errorf("tape: block length: %w", err)
	}

	size := int(binary.LittleEndian.Uint16(lenBuf[:]))
	if size < 2 {
		return Block{}, fmt.Errorf("tape: block length %d too short", size)
	}
	if cap(r.buf) < size {
		r.buf = make([]byte, size)
	}
	raw := r.buf[:size]
	if _, err := r.readFull(raw); err != nil {
		if errors.Is(err, ErrEnd) {
			return Block{}, ErrTruncated
		}
		return Block{}, fmt.Errorf("tape: block data: %w", err)
	}

	flag := raw[0]
	payload := raw[1 : size-1]
	if Checksum(flag, payload) != raw[size-1] {
		return Block{}, ErrChecksum
	}
	return Block{Flag: flag, Payload: payload}, nil
}
