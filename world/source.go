package world

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// SourceID identifies an interned source of a World.
type SourceID uint16

func (id SourceID) String() string {
	return fmt.Sprintf("source#%d", uint16(id))
}

// Source is an interned text source. Sources are immutable.
type Source struct {
	id         SourceID
	path       string
	text       string
	lineStarts []int // byte offsets at which lines start; lineStarts[0] == 0
}

func newSource(id SourceID, path, text string) *Source {
	return &Source{
		id:         id,
		path:       path,
		text:       text,
		lineStarts: lineStarts(text),
	}
}

// lineStarts finds the start offsets of all lines. Lines end with
// "\n", "\r\n" or a lone "\r".
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\n':
			starts = append(starts, i+1)
		}
	}
	return starts
}

// ID returns the ID of this source.
func (s *Source) ID() SourceID { return s.id }

// Path returns the canonical path this source was read from.
func (s *Source) Path() string { return s.path }

// Text returns the complete text of this source.
func (s *Source) Text() string { return s.text }

// Len returns the length of the text in bytes.
func (s *Source) Len() int { return len(s.text) }

// LineCount returns the number of lines. An empty source has one (empty) line.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// ByteToLine returns the zero-based line containing a byte offset.
// The offset may equal Len, denoting the end of the text.
func (s *Source) ByteToLine(offset int) (int, bool) {
	if offset < 0 || offset > len(s.text) {
		return 0, false
	}
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	return line, true
}

// ByteToColumn returns the zero-based column of a byte offset, counted in
// runes from the start of its line.
func (s *Source) ByteToColumn(offset int) (int, bool) {
	line, ok := s.ByteToLine(offset)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s.text[s.lineStarts[line]:offset]), true
}

// LineToByte returns the byte offset at which a zero-based line starts.
func (s *Source) LineToByte(line int) (int, bool) {
	if line < 0 || line >= len(s.lineStarts) {
		return 0, false
	}
	return s.lineStarts[line], true
}

// Line returns the text of a zero-based line, without its line terminator.
func (s *Source) Line(line int) (string, bool) {
	start, ok := s.LineToByte(line)
	if !ok {
		return "", false
	}
	end := len(s.text)
	if line+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1]
	}
	text := s.text[start:end]
	for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
	}
	return text, true
}
