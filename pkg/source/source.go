// Package source turns raw file bytes into the rune buffer the lexer
// scans, honoring the configured character set.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCharset is used when no charset is configured.
const DefaultCharset = "utf-8"

// ErrUnknownCharset is wrapped by Decode when the charset name is not
// recognized.
var ErrUnknownCharset = errors.New("unknown charset")

// DecodeError reports the first byte sequence that could not be mapped
// to a character.
type DecodeError struct {
	Path    string
	Charset string
	// Offset is the index of the first replacement character in the
	// decoded rune buffer.
	Offset int
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: unmappable input for charset %s at character %d", e.Path, e.Charset, e.Offset)
	}
	return fmt.Sprintf("unmappable input for charset %s at character %d", e.Charset, e.Offset)
}

// Encoding resolves a charset name such as "utf-8", "latin1" or
// "windows-1252".
func Encoding(charset string) (encoding.Encoding, error) {
	if strings.TrimSpace(charset) == "" {
		charset = DefaultCharset
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownCharset, charset)
	}
	return enc, nil
}

// Decode converts b from charset into runes. A leading byte order mark
// selects UTF-8 or UTF-16 regardless of charset and is not part of the
// result. Bytes that cannot be decoded become U+FFFD; unless ignoreErrors
// is set the first of them is also reported as a *DecodeError alongside
// the decoded runes.
func Decode(b []byte, charset string, ignoreErrors bool) ([]rune, error) {
	enc, err := Encoding(charset)
	if err != nil {
		return nil, err
	}
	name, _ := htmlindex.Name(enc)
	if name == "" {
		name = charset
	}

	if bomless, ok := bytes.CutPrefix(b, utf8BOM); ok {
		return decodeUTF8(bomless, "utf-8", ignoreErrors)
	}
	if name == DefaultCharset && !hasUTF16BOM(b) {
		return decodeUTF8(b, name, ignoreErrors)
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	runes := bytes.Runes(out)
	if !ignoreErrors {
		for i, r := range runes {
			if r == utf8.RuneError {
				return runes, &DecodeError{Charset: name, Offset: i}
			}
		}
	}
	return runes, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func hasUTF16BOM(b []byte) bool {
	return len(b) >= 2 && (b[0] == 0xFE && b[1] == 0xFF || b[0] == 0xFF && b[1] == 0xFE)
}

// decodeUTF8 walks the raw bytes so that a literal U+FFFD in valid input
// is not mistaken for a decoding failure.
func decodeUTF8(b []byte, name string, ignoreErrors bool) ([]rune, error) {
	runes := make([]rune, 0, utf8.RuneCount(b))
	var derr *DecodeError
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 && derr == nil && !ignoreErrors {
			derr = &DecodeError{Charset: name, Offset: len(runes)}
		}
		runes = append(runes, r)
		b = b[size:]
	}
	if derr != nil {
		return runes, derr
	}
	return runes, nil
}

// File is a source file on disk together with its charset.
type File struct {
	Path         string
	Charset      string
	IgnoreErrors bool
}

// Read loads and decodes the file. On a *DecodeError the partially
// replaced content is still returned.
func (f File) Read() ([]rune, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	runes, err := Decode(b, f.Charset, f.IgnoreErrors)
	var derr *DecodeError
	if errors.As(err, &derr) {
		derr.Path = f.Path
		return runes, derr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return runes, nil
}

// ReadFile reads path in the given charset, failing on undecodable input.
func ReadFile(path, charset string) ([]rune, error) {
	return File{Path: path, Charset: charset}.Read()
}
