package bytecode

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when an instruction runs past the end of its
// buffer.
var ErrUnexpectedEOF = errors.New("unexpected end of bytecode")

// Reader is a forward-only cursor over an instruction buffer.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Pos returns the offset of the next unread byte.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// AtEOF reports whether every byte has been consumed.
func (r *Reader) AtEOF() bool { return r.pos >= len(r.buf) }

// Byte reads one byte.
func (r *Reader) Byte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, fmt.Errorf("%w: reading byte at offset %d", ErrUnexpectedEOF, r.pos)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Uint16 reads a little-endian 16-bit value.
func (r *Reader) Uint16() (uint16, error) {
	if r.pos+2 > len(r.buf) {
		return 0, fmt.Errorf("%w: reading uint16 at offset %d", ErrUnexpectedEOF, r.pos)
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}
