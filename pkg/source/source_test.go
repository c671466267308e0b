package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapjc/pkg/source"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		charset string
		want    string
	}{
		{"default charset", []byte("int x;"), "", "int x;"},
		{"utf-8", []byte("größe"), "utf-8", "größe"},
		{"utf-8 bom stripped", []byte("\xEF\xBB\xBFclass"), "utf-8", "class"},
		{"utf-8 bom overrides latin1", []byte("\xEF\xBB\xBFé"), "latin1", "é"},
		{"latin1", []byte{'c', 0xE9}, "iso-8859-1", "cé"},
		{"windows-1252 euro", []byte{0x80}, "windows-1252", "€"},
		{"utf-16le with bom", []byte{0xFF, 0xFE, 'a', 0, 'b', 0}, "utf-16le", "ab"},
		{"utf-16 bom under utf-8", []byte{0xFE, 0xFF, 0, 'a'}, "utf-8", "a"},
		{"literal replacement char is valid", []byte("�"), "utf-8", "�"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.Decode(tt.input, tt.charset, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	input := []byte{'a', 'b', 0xFF, 'c'}

	got, err := source.Decode(input, "utf-8", false)
	var derr *source.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2, derr.Offset)
	assert.Equal(t, "utf-8", derr.Charset)
	assert.Equal(t, "ab�c", string(got), "content is still returned")

	got, err = source.Decode(input, "utf-8", true)
	require.NoError(t, err)
	assert.Equal(t, "ab�c", string(got))
}

func TestDecodeUnknownCharset(t *testing.T) {
	_, err := source.Decode([]byte("x"), "klingon-8", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrUnknownCharset)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	require.NoError(t, os.WriteFile(path, []byte("class A {}\n"), 0o644))

	got, err := source.ReadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, "class A {}\n", string(got))
}

func TestReadFileDecodeErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Bad.java")
	require.NoError(t, os.WriteFile(path, []byte{'x', 0xC3}, 0o644))

	_, err := source.ReadFile(path, "utf-8")
	var derr *source.DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, path, derr.Path)
	assert.Contains(t, err.Error(), "Bad.java")

	got, err := source.File{Path: path, IgnoreErrors: true}.Read()
	require.NoError(t, err)
	assert.Equal(t, []rune{'x', '�'}, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := source.ReadFile(filepath.Join(t.TempDir(), "nope.java"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
