package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corpus = "ខ្ញុំ ស្រឡាញ់\n\n  ភាសាខ្មែរ  \nsalut ក្រ្ត\n"

func writeCompressed(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	var buf bytes.Buffer
	switch filepath.Ext(name) {
	case ".zst":
		enc, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = io.WriteString(enc, corpus)
		require.NoError(t, err)
		require.NoError(t, enc.Close())
	case ".gz":
		zw := gzip.NewWriter(&buf)
		_, err := io.WriteString(zw, corpus)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	default:
		buf.WriteString(corpus)
	}
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestOpenInputFormats(t *testing.T) {
	for _, name := range []string{"corpus.txt", "corpus.txt.zst", "corpus.txt.gz"} {
		t.Run(name, func(t *testing.T) {
			r, err := openInput(writeCompressed(t, name))
			require.NoError(t, err)
			defer r.Close()

			lines, err := readLines(r, 0, lineFilter{})
			require.NoError(t, err)
			assert.Equal(t, []string{"ខ្ញុំ ស្រឡាញ់", "ភាសាខ្មែរ", "salut ក្រ្ត"}, lines)
		})
	}
}

func TestOpenInputMissing(t *testing.T) {
	_, err := openInput(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenInputBadStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))
	_, err := openInput(path)
	assert.Error(t, err)
}

func TestReadLinesLimitAndClean(t *testing.T) {
	lines, err := readLines(strings.NewReader(corpus), 2, lineFilter{clean: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"ខ្ញុំ ស្រឡាញ់", "ភាសាខ្មែរ"}, lines)

	lines, err = readLines(strings.NewReader("abc\nក\n"), 0, lineFilter{clean: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"ក"}, lines)
}

func TestReadLinesNFC(t *testing.T) {
	// e + combining acute composes to U+00E9
	lines, err := readLines(strings.NewReader("e\u0301 ក\n"), 0, lineFilter{nfc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"\u00e9 ក"}, lines)
}
