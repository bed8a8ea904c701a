package logger

import (
	"errors"
	"strings"

	"go.trai.ch/tabicons/internal/ui/style"
)

// messager describes an error that can report its own message without the
// chain, as zerr errors do.
type messager interface {
	Message() string
}

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message string
}

// collectErrorEntries walks the chain of err. zerr links contribute their
// own message and links without one are skipped. A joined error contributes
// the entries of each of its errors in order. The first foreign error
// contributes its full text and ends the walk.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	for current := err; current != nil; {
		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			break
		}
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}
		if msg := m.Message(); msg != "" {
			entries = append(entries, ErrorEntry{Message: msg})
		}
		current = errors.Unwrap(current)
	}
	return entries
}

// formatErrorEntries renders entries as a main error followed by an indented
// "Caused by" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string
	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}
		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}
	return strings.Join(lines, "\n")
}
