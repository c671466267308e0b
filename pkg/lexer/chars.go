package lexer

import "unicode"

func isIdentStart(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		return true
	case c < 0x80:
		return false
	}
	return unicode.IsLetter(c) || unicode.In(c, unicode.Nl, unicode.Sc, unicode.Pc)
}

func isIdentPart(c rune) bool {
	if isIdentStart(c) || (c >= '0' && c <= '9') {
		return true
	}
	if c < 0x80 {
		return false
	}
	return unicode.In(c, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Cf)
}

// isSpecial reports whether c can appear in an operator.
func isSpecial(c rune) bool {
	switch c {
	case '!', '%', '&', '*', '?', '+', '-', ':', '<', '=', '>', '^', '|', '~', '@', '/':
		return true
	}
	return false
}

func isSeparator(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '{', '}', ';', ',':
		return true
	}
	return false
}

func isEOL(c rune) bool {
	return c == '\n' || c == '\r'
}

// digit returns the value of c in radix, or -1.
func digit(c rune, radix int) int {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'z':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if d >= radix {
		return -1
	}
	return d
}

func isOctal(c rune) bool {
	return c >= '0' && c <= '7'
}
