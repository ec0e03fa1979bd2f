package domain

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Record is a single formatted StatsD line, terminated by exactly one newline.
// The zero value is the empty record, which collectors ignore.
type Record struct {
	line string
}

// Format builds the record "<name>:<value>|<suffix>\n".
// Whitespace runs in name collapse to a single '-'. The value is written
// verbatim; no numeric validation is performed.
func Format(name, value string, kind Kind) Record {
	var b strings.Builder
	b.Grow(len(name) + len(value) + 5)
	b.WriteString(SanitizeName(name))
	b.WriteByte(':')
	b.WriteString(value)
	b.WriteByte('|')
	b.WriteString(kind.Suffix())
	b.WriteByte('\n')
	return Record{line: b.String()}
}

// SanitizeName replaces every whitespace run in name with a single '-'.
func SanitizeName(name string) string {
	return whitespace.ReplaceAllString(name, "-")
}

// Line returns the record without its trailing newline.
func (r Record) Line() string {
	return strings.TrimSuffix(r.line, "\n")
}

// String returns the record including its trailing newline.
func (r Record) String() string {
	return r.line
}

// Len returns the serialized length in bytes, newline included.
func (r Record) Len() int {
	return len(r.line)
}

// Empty returns true for the zero record.
func (r Record) Empty() bool {
	return r.line == ""
}
