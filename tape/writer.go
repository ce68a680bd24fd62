package tape

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer encodes blocks to w.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteBlock writes one block with its length prefix and checksum.
func (w *Writer) WriteBlock(flag byte, payload []byte) error {
	size := len(payload) + 2
	if size > 0xFFFF {
		return fmt.Errorf("tape: payload of %d bytes does not fit a block", len(payload))
	}
	var head [3]byte
	binary.LittleEndian.PutUint16(head[0:2], uint16(size))
	head[2] = flag
	if _, err := w.w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.w.Write(payload); err != nil {
		return err
	}
	_, err := w.w.Write([]byte{Checksum(flag, payload)})
	return err
}

// WriteCode writes a CODE header followed by its data block.
func (w *Writer) WriteCode(name string, start uint16, data []byte) error {
	if len(data) > 0xFFFF-2 {
		return fmt.Errorf("tape: code block of %d bytes too large", len(data))
	}
	h := NewCodeHeader(name, start, uint16(len(data)))
	if err := w.WriteBlock(FlagHeader, h.Bytes()); err != nil {
		return fmt.Errorf("tape: header: %w", err)
	}
	if err := w.WriteBlock(FlagData, data); err != nil {
		return fmt.Errorf("tape: data: %w", err)
	}
	return nil
}
