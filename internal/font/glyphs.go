package font

// glyphs holds ASCII 32..127. Each row is a nibble with 0x8 as the leftmost
// pixel.
var glyphs = [96][H]uint8{
	{0x0, 0x0, 0x0, 0x0, 0x0, 0x0}, // ' '
	{0x4, 0x4, 0x4, 0x0, 0x4, 0x0}, // '!'
	{0xA, 0xA, 0x0, 0x0, 0x0, 0x0}, // '"'
	{0xA, 0xF, 0xA, 0xF, 0xA, 0x0}, // '#'
	{0x4, 0xE, 0x5, 0xE, 0xA, 0x4}, // '$'
	{0x9, 0x2, 0x4, 0x8, 0x9, 0x0}, // '%'
	{0x4, 0xA, 0x4, 0xA, 0x5, 0x0}, // '&'
	{0x4, 0x4, 0x0, 0x0, 0x0, 0x0}, // "'"
	{0x2, 0x4, 0x4, 0x4, 0x2, 0x0}, // '('
	{0x4, 0x2, 0x2, 0x2, 0x4, 0x0}, // ')'
	{0x0, 0xA, 0x4, 0xA, 0x0, 0x0}, // '*'
	{0x0, 0x4, 0xE, 0x4, 0x0, 0x0}, // '+'
	{0x0, 0x0, 0x0, 0x4, 0x4, 0x8}, // ','
	{0x0, 0x0, 0xE, 0x0, 0x0, 0x0}, // '-'
	{0x0, 0x0, 0x0, 0x0, 0x4, 0x0}, // '.'
	{0x1, 0x2, 0x4, 0x8, 0x0, 0x0}, // '/'
	{0x6, 0x9, 0x9, 0x9, 0x6, 0x0}, // '0'
	{0x4, 0xC, 0x4, 0x4, 0xE, 0x0}, // '1'
	{0x6, 0x9, 0x2, 0x4, 0xF, 0x0}, // '2'
	{0xE, 0x1, 0x6, 0x1, 0xE, 0x0}, // '3'
	{0x2, 0x6, 0xA, 0xF, 0x2, 0x0}, // '4'
	{0xF, 0x8, 0xE, 0x1, 0xE, 0x0}, // '5'
	{0x6, 0x8, 0xE, 0x9, 0x6, 0x0}, // '6'
	{0xF, 0x1, 0x2, 0x4, 0x4, 0x0}, // '7'
	{0x6, 0x9, 0x6, 0x9, 0x6, 0x0}, // '8'
	{0x6, 0x9, 0x7, 0x1, 0x6, 0x0}, // '9'
	{0x0, 0x4, 0x0, 0x4, 0x0, 0x0}, // ':'
	{0x0, 0x4, 0x0, 0x4, 0x8, 0x0}, // ';'
	{0x1, 0x2, 0x4, 0x2, 0x1, 0x0}, // '<'
	{0x0, 0xE, 0x0, 0xE, 0x0, 0x0}, // '='
	{0x8, 0x4, 0x2, 0x4, 0x8, 0x0}, // '>'
	{0x6, 0x9, 0x2, 0x0, 0x2, 0x0}, // '?'
	{0x6, 0x9, 0xB, 0x8, 0x6, 0x0}, // '@'
	{0x6, 0x9, 0xF, 0x9, 0x9, 0x0}, // 'A'
	{0xE, 0x9, 0xE, 0x9, 0xE, 0x0}, // 'B'
	{0x6, 0x9, 0x8, 0x9, 0x6, 0x0}, // 'C'
	{0xE, 0x9, 0x9, 0x9, 0xE, 0x0}, // 'D'
	{0xF, 0x8, 0xE, 0x8, 0xF, 0x0}, // 'E'
	{0xF, 0x8, 0xE, 0x8, 0x8, 0x0}, // 'F'
	{0x6, 0x8, 0xB, 0x9, 0x6, 0x0}, // 'G'
	{0x9, 0x9, 0xF, 0x9, 0x9, 0x0}, // 'H'
	{0xE, 0x4, 0x4, 0x4, 0xE, 0x0}, // 'I'
	{0x1, 0x1, 0x1, 0x9, 0x6, 0x0}, // 'J'
	{0x9, 0xA, 0xC, 0xA, 0x9, 0x0}, // 'K'
	{0x8, 0x8, 0x8, 0x8, 0xF, 0x0}, // 'L'
	{0x9, 0xF, 0xF, 0x9, 0x9, 0x0}, // 'M'
	{0x9, 0xD, 0xF, 0xB, 0x9, 0x0}, // 'N'
	{0x6, 0x9, 0x9, 0x9, 0x6, 0x0}, // 'O'
	{0xE, 0x9, 0xE, 0x8, 0x8, 0x0}, // 'P'
	{0x6, 0x9, 0x9, 0xA, 0x5, 0x0}, // 'Q'
	{0xE, 0x9, 0xE, 0xA, 0x9, 0x0}, // 'R'
	{0x7, 0x8, 0x6, 0x1, 0xE, 0x0}, // 'S'
	{0xE, 0x4, 0x4, 0x4, 0x4, 0x0}, // 'T'
	{0x9, 0x9, 0x9, 0x9, 0x6, 0x0}, // 'U'
	{0x9, 0x9, 0x9, 0x6, 0x6, 0x0}, // 'V'
	{0x9, 0x9, 0xF, 0xF, 0x9, 0x0}, // 'W'
	{0x9, 0x6, 0x6, 0x6, 0x9, 0x0}, // 'X'
	{0xA, 0xA, 0x4, 0x4, 0x4, 0x0}, // 'Y'
	{0xF, 0x2, 0x4, 0x8, 0xF, 0x0}, // 'Z'
	{0x6, 0x4, 0x4, 0x4, 0x6, 0x0}, // '['
	{0x8, 0x4, 0x2, 0x1, 0x0, 0x0}, // '\\'
	{0x6, 0x2, 0x2, 0x2, 0x6, 0x0}, // ']'
	{0x4, 0xA, 0x0, 0x0, 0x0, 0x0}, // '^'
	{0x0, 0x0, 0x0, 0x0, 0xF, 0x0}, // '_'
	{0x4, 0x2, 0x0, 0x0, 0x0, 0x0}, // '`'
	{0x0, 0x6, 0xB, 0x9, 0x7, 0x0}, // 'a'
	{0x8, 0xE, 0x9, 0x9, 0xE, 0x0}, // 'b'
	{0x0, 0x7, 0x8, 0x8, 0x7, 0x0}, // 'c'
	{0x1, 0x7, 0x9, 0x9, 0x7, 0x0}, // 'd'
	{0x0, 0x6, 0xF, 0x8, 0x6, 0x0}, // 'e'
	{0x3, 0x4, 0xE, 0x4, 0x4, 0x0}, // 'f'
	{0x0, 0x7, 0x9, 0x7, 0x1, 0x6}, // 'g'
	{0x8, 0xE, 0x9, 0x9, 0x9, 0x0}, // 'h'
	{0x4, 0x0, 0x4, 0x4, 0x4, 0x0}, // 'i'
	{0x2, 0x0, 0x2, 0x2, 0xA, 0x4}, // 'j'
	{0x8, 0xA, 0xC, 0xA, 0x9, 0x0}, // 'k'
	{0xC, 0x4, 0x4, 0x4, 0xE, 0x0}, // 'l'
	{0x0, 0xF, 0xF, 0x9, 0x9, 0x0}, // 'm'
	{0x0, 0xE, 0x9, 0x9, 0x9, 0x0}, // 'n'
	{0x0, 0x6, 0x9, 0x9, 0x6, 0x0}, // 'o'
	{0x0, 0xE, 0x9, 0xE, 0x8, 0x8}, // 'p'
	{0x0, 0x7, 0x9, 0x7, 0x1, 0x1}, // 'q'
	{0x0, 0xB, 0xC, 0x8, 0x8, 0x0}, // 'r'
	{0x0, 0x7, 0xC, 0x3, 0xE, 0x0}, // 's'
	{0x4, 0xE, 0x4, 0x4, 0x3, 0x0}, // 't'
	{0x0, 0x9, 0x9, 0x9, 0x7, 0x0}, // 'u'
	{0x0, 0x9, 0x9, 0x6, 0x6, 0x0}, // 'v'
	{0x0, 0x9, 0xF, 0xF, 0x6, 0x0}, // 'w'
	{0x0, 0x9, 0x6, 0x6, 0x9, 0x0}, // 'x'
	{0x0, 0x9, 0x9, 0x7, 0x1, 0x6}, // 'y'
	{0x0, 0xF, 0x2, 0x4, 0xF, 0x0}, // 'z'
	{0x2, 0x4, 0xC, 0x4, 0x2, 0x0}, // '{'
	{0x4, 0x4, 0x4, 0x4, 0x4, 0x0}, // '|'
	{0x4, 0x2, 0x3, 0x2, 0x4, 0x0}, // '}'
	{0x0, 0x5, 0xA, 0x0, 0x0, 0x0}, // '~'
	{0xF, 0xF, 0xF, 0xF, 0xF, 0x0}, // DEL
}
