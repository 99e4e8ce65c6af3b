package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/khmer-syllable/pkg/khmer"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/unicode/norm"
)

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// multiCloser closes a decompressor and the file below it.
type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInput opens path for reading. Files ending in .zst or .gz are
// decompressed on the fly.
func openInput(path string) (io.ReadCloser, error) {
	if path == pipeName {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input file not found: %w", err)
	}
	return decompress(file, filepath.Ext(path))
}

func decompress(file io.ReadCloser, ext string) (io.ReadCloser, error) {
	switch strings.ToLower(ext) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("could not open zstd stream: %w", err)
		}
		return &multiCloser{Reader: dec, closers: []func() error{
			func() error { dec.Close(); return nil },
			file.Close,
		}}, nil
	case ".gz":
		zr, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("could not open gzip stream: %w", err)
		}
		return &multiCloser{Reader: zr, closers: []func() error{zr.Close, file.Close}}, nil
	}
	return file, nil
}

// lineFilter prepares corpus lines before they reach the sorter.
type lineFilter struct {
	clean bool
	nfc   bool
}

func (f lineFilter) apply(line string) string {
	if f.nfc {
		line = norm.NFC.String(line)
	}
	if f.clean {
		line = strings.TrimSpace(khmer.Clean(line))
	}
	return line
}

// readLines reads trimmed, non-empty lines from r, up to limit lines when
// limit is positive.
func readLines(r io.Reader, limit int, filter lineFilter) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines
	const maxCapacity = 1024 * 1024 // 1MB
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)
	skipped := 0
	for scanner.Scan() {
		line := filter.apply(strings.TrimSpace(scanner.Text()))
		if line == "" {
			skipped++
			continue
		}
		lines = append(lines, line)
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read input: %w", err)
	}
	if skipped > 0 {
		tracer().Debugf("skipped %d empty lines", skipped)
	}
	return lines, nil
}
