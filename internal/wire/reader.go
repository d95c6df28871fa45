package wire

import (
	"encoding/binary"
	"math"
)

// Reader is a bounds-checked cursor over a wire buffer. Every read reports
// ok=false instead of running past the end, and a failed read does not move
// the cursor.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the number of bytes consumed.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// U8 reads a single byte.
func (r *Reader) U8() (uint8, bool) {
	if r.Remaining() < 1 {
		return 0, false
	}
	v := r.data[r.pos]
	r.pos++
	return v, true
}

// F32 reads a little-endian IEEE-754 float32.
func (r *Reader) F32() (float32, bool) {
	if r.Remaining() < 4 {
		return 0, false
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, true
}

// Bytes reads the next n bytes. The returned slice aliases the buffer.
func (r *Reader) Bytes(n int) ([]byte, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// Str reads a one-byte length prefix followed by that many bytes and returns
// at most max of them. The whole declared length is always consumed so the
// cursor stays aligned with the next field.
func (r *Reader) Str(max int) (string, bool) {
	start := r.pos
	n, ok := r.U8()
	if !ok {
		return "", false
	}
	b, ok := r.Bytes(int(n))
	if !ok {
		r.pos = start
		return "", false
	}
	if max >= 0 && len(b) > max {
		b = b[:max]
	}
	return string(b), true
}
