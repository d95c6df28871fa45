// Package state moves parameter values in and out of a registry as a flat
// sequence of little-endian float32 values in parameter order. There is no
// header and no validation: loaded values are applied as-is.
package state

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"hwui/internal/core"
)

// ValueSize is the encoded size of one parameter value.
const ValueSize = 4

// Dump writes min(reg.Len(), len(buf)/4) values into buf and returns the
// number of bytes written.
func Dump(reg *core.Registry, buf []byte) int {
	params := reg.Params()
	count := len(params)
	if count*ValueSize > len(buf) {
		count = len(buf) / ValueSize
	}
	for i := 0; i < count; i++ {
		binary.LittleEndian.PutUint32(buf[i*ValueSize:], math.Float32bits(params[i].Value))
	}
	return count * ValueSize
}

// Load applies min(len(buf)/4, reg.Len()) values from buf and returns how many
// were applied. Trailing partial values are ignored.
func Load(reg *core.Registry, buf []byte) int {
	count := len(buf) / ValueSize
	if count > reg.Len() {
		count = reg.Len()
	}
	for i := 0; i < count; i++ {
		reg.SetValue(i, math.Float32frombits(binary.LittleEndian.Uint32(buf[i*ValueSize:])))
	}
	return count
}

// Save writes every parameter value of reg to w.
func Save(w io.Writer, reg *core.Registry) error {
	if err := binary.Write(w, binary.LittleEndian, reg.Values()); err != nil {
		return fmt.Errorf("write parameter values: %w", err)
	}
	return nil
}

// Restore reads values previously written by Save and applies them to reg.
// It returns the number of values applied.
func Restore(r io.Reader, reg *core.Registry) (int, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(reg.Len()*ValueSize)))
	if err != nil {
		return 0, fmt.Errorf("read parameter values: %w", err)
	}
	return Load(reg, buf), nil
}
