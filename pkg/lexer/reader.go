package lexer

// eoi is the current character once the cursor has passed the last rune.
const eoi rune = -1

// reader is a cursor over a fully decoded character buffer plus a scratch
// buffer for the text of the literal being scanned.
type reader struct {
	buf  []rune
	bp   int  // index of ch
	ch   rune // current character, eoi past the end
	sbuf []rune
}

func (r *reader) init(buf []rune) {
	r.buf = buf
	r.bp = -1
	r.sbuf = r.sbuf[:0]
	r.scanChar()
}

// scanChar advances to the next character.
func (r *reader) scanChar() {
	if r.bp < len(r.buf) {
		r.bp++
	}
	if r.bp < len(r.buf) {
		r.ch = r.buf[r.bp]
	} else {
		r.ch = eoi
	}
}

// peek returns the character after ch without advancing.
func (r *reader) peek() rune {
	return r.peekAt(1)
}

// peekAt returns the character n positions after ch.
func (r *reader) peekAt(n int) rune {
	if i := r.bp + n; i < len(r.buf) {
		return r.buf[i]
	}
	return eoi
}

func (r *reader) atEOI() bool {
	return r.bp >= len(r.buf)
}

// putChar appends c to the scratch buffer.
func (r *reader) putChar(c rune) {
	r.sbuf = append(r.sbuf, c)
}

// putAndScan appends ch to the scratch buffer and advances.
func (r *reader) putAndScan() {
	r.putChar(r.ch)
	r.scanChar()
}

func (r *reader) resetScratch() {
	r.sbuf = r.sbuf[:0]
}

func (r *reader) text(start, end int) string {
	return string(r.buf[start:end])
}
