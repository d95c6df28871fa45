package font

import "strconv"

const hexDigits = "0123456789ABCDEF"

// Int formats v in decimal.
func Int(v int) string { return strconv.Itoa(v) }

// Float formats v with a fixed number of decimals.
func Float(v float32, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(float64(v), 'f', decimals, 32)
}

// Hex2 formats the low byte of v as two uppercase hex digits.
func Hex2(v int) string {
	return string([]byte{hexDigits[(v>>4)&0xF], hexDigits[v&0xF]})
}

// Hex4 formats the low 16 bits of v as four uppercase hex digits.
func Hex4(v int) string {
	return string([]byte{
		hexDigits[(v>>12)&0xF],
		hexDigits[(v>>8)&0xF],
		hexDigits[(v>>4)&0xF],
		hexDigits[v&0xF],
	})
}
