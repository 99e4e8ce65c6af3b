package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// builders recycles the per-worker JSON buffers.
var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

func getBuilder() *strings.Builder { return builders.Get().(*strings.Builder) }

func putBuilder(sb *strings.Builder) {
	sb.Reset()
	builders.Put(sb)
}

// record is the result of sorting one input line.
type record struct {
	ID    int
	Input string
	Text  string
	Units []string
}

// buildJSON writes rec as one JSON object without going through reflection.
// Format: {"id":N,"input":"...","text":"...","units":["...","..."]}
// The units key is left out when rec has no units.
func buildJSON(sb *strings.Builder, rec record) {
	sb.Reset()
	sb.Grow(len(rec.Input)*3 + len(rec.Units)*4 + 64)

	var num [20]byte
	sb.WriteString(`{"id":`)
	sb.Write(strconv.AppendInt(num[:0], int64(rec.ID), 10))
	sb.WriteString(`,"input":"`)
	writeEscapedJSON(sb, strings.ToValidUTF8(rec.Input, "\uFFFD"))
	sb.WriteString(`","text":"`)
	writeEscapedJSON(sb, rec.Text)
	sb.WriteByte('"')

	if rec.Units != nil {
		sb.WriteString(`,"units":[`)
		for i, unit := range rec.Units {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			writeEscapedJSON(sb, unit)
			sb.WriteByte('"')
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')
}

const hexDigits = "0123456789abcdef"

// writeEscapedJSON writes s as the body of a JSON string. Runs that need no
// escaping, which is all Khmer text, are copied in one write.
func writeEscapedJSON(sb *strings.Builder, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		sb.WriteString(s[start:i])
		start = i + 1
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xf])
		}
	}
	sb.WriteString(s[start:])
}

// nopWriteCloser keeps stdout open when the output is written there.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func createOutput(path string) (io.WriteCloser, error) {
	if path == pipeName {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create output file: %w", err)
	}
	return f, nil
}

// writeLines writes one line per entry to w through a 256KB buffer.
func writeLines(w io.Writer, lines []string) error {
	writer := bufio.NewWriterSize(w, 256*1024)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return writer.Flush()
}
