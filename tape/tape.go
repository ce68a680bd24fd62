// Package tape reads and writes TAP images: a sequence of blocks, each
// stored as a little-endian length, a flag byte, the payload and an XOR
// checksum.
package tape

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Block flags.
const (
	FlagHeader = 0x00
	FlagData   = 0xFF
)

// Header block types.
const (
	TypeProgram   = 0
	TypeNumArray  = 1
	TypeCharArray = 2
	TypeCode      = 3
)

// HeaderLen is the payload size of a header block.
const HeaderLen = 17

// ScreenStart and ScreenLen describe a SCREEN$ CODE block.
const (
	ScreenStart = 0x4000
	ScreenLen   = 6912
)

var (
	ErrChecksum  = errors.New("tape: checksum mismatch")
	ErrTruncated = errors.New("tape: truncated block")
	ErrEnd       = errors.New("tape: end of tape")
)

// Header is the 17-byte descriptor that precedes a data block.
type Header struct {
	Type   uint8
	Name   [10]byte
	Length uint16
	Param1 uint16
	Param2 uint16
}

// ParseHeader decodes a header payload (without flag and checksum).
func ParseHeader(data []byte) (Header, error) {
	if len(data) != HeaderLen {
		return Header{}, fmt.Errorf("tape: header length %d, want %d", len(data), HeaderLen)
	}
	var h Header
	h.Type = data[0]
	copy(h.Name[:], data[1:11])
	h.Length = binary.LittleEndian.Uint16(data[11:13])
	h.Param1 = binary.LittleEndian.Uint16(data[13:15])
	h.Param2 = binary.LittleEndian.Uint16(data[15:17])
	if h.Type > TypeCode {
		return Header{}, fmt.Errorf("tape: unknown header type %d", h.Type)
	}
	return h, nil
}

// Bytes encodes the header payload.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderLen)
	b[0] = h.Type
	copy(b[1:11], h.Name[:])
	binary.LittleEndian.PutUint16(b[11:13], h.Length)
	binary.LittleEndian.PutUint16(b[13:15], h.Param1)
	binary.LittleEndian.PutUint16(b[15:17], h.Param2)
	return b
}

// Filename returns the name with trailing padding removed.
func (h Header) Filename() string {
	n := len(h.Name)
	for n > 0 && (h.Name[n-1] == ' ' || h.Name[n-1] == 0) {
		n--
	}
	return string(h.Name[:n])
}

// NewCodeHeader builds a CODE header for length bytes loaded at start.
func NewCodeHeader(name string, start, length uint16) Header {
	h := Header{Type: TypeCode, Length: length, Param1: start, Param2: 0x8000}
	for i := range h.Name {
		h.Name[i] = ' '
	}
	copy(h.Name[:], name)
	return h
}

// Block is one decoded tape block.
type Block struct {
	Flag    byte
	Payload []byte
}

// IsHeader reports whether the block carries a 17-byte header.
func (b Block) IsHeader() bool {
	return b.Flag == FlagHeader && len(b.Payload) == HeaderLen
}

// Checksum is the XOR of the flag and every payload byte.
func Checksum(flag byte, payload []byte) byte {
	sum := flag
	for _, v := range payload {
		sum ^= v
	}
	return sum
}

// IsEnd reports whether err marks the source running out at a block
// boundary.
func IsEnd(err error) bool {
	return errors.Is(err, ErrEnd)
}
