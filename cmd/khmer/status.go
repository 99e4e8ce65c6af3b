package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// messageType selects the colour of a status line.
type messageType int

const (
	defaultMessage messageType = iota
	successMessage
	errorMessage
	statusMessage
)

// Colors used across the CLI application.
const (
	defaultColor = "\x1b[0m"
	statusColor  = "\x1b[36m"
	successColor = "\x1b[32m"
	errorColor   = "\x1b[31m"
)

// decorateText shows the message types in different colors.
func decorateText(s string, msgType messageType) string {
	switch msgType {
	case defaultMessage:
		s = defaultColor + s
	case statusMessage:
		s = statusColor + s
	case successMessage:
		s = successColor + s
	case errorMessage:
		s = errorColor + s
	default:
		return s
	}
	return s + defaultColor
}

// reporter prints progress lines, coloured only on a terminal.
type reporter struct {
	w     io.Writer
	color bool
}

func newReporter(f *os.File) *reporter {
	return &reporter{w: f, color: term.IsTerminal(int(f.Fd()))}
}

func (r *reporter) printf(msgType messageType, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if r.color {
		msg = decorateText(msg, msgType)
	}
	fmt.Fprintln(r.w, msg)
}

// formatTime formats d as a human readable value.
func formatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), math.Mod(d.Seconds(), 60))
	}
	return fmt.Sprintf("%dh %dm %.2fs",
		int64(d.Hours()), int64(math.Mod(d.Minutes(), 60)), math.Mod(d.Seconds(), 60))
}
