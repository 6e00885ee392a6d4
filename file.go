// Copyright 2017-2026 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package comb

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Position describes an arbitrary source position including the file, line,
// and column location.
type Position struct {
	Filename string
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A Source is the immutable input of a parse. All states derived from a
// Source reference it; none of them copies or modifies its text.
//
// Line information is computed on the first call to Position, Line or
// LinePos.
type Source struct {
	name string
	text string
	log  hclog.Logger

	once  sync.Once
	lines []int // byte offset of the first character of each line
}

// NewSource returns a new Source for the given text.
func NewSource(text string, opts ...Option) *Source {
	o := options{log: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Source{
		name: o.name,
		text: text,
		log:  o.log,
	}
}

// Name returns the source name as set by WithName.
func (s *Source) Name() string {
	return s.name
}

// Text returns the source text.
func (s *Source) Text() string {
	return s.text
}

// Len returns the length of the source text in bytes. This is also the EOF
// position.
func (s *Source) Len() int {
	return len(s.text)
}

// Logger returns the logger used for tracing.
func (s *Source) Logger() hclog.Logger {
	return s.log
}

func (s *Source) initLines() {
	s.once.Do(func() {
		s.lines = append(make([]int, 0, strings.Count(s.text, "\n")+1), 0)
		for i := 0; i < len(s.text); i++ {
			if s.text[i] == '\n' {
				s.lines = append(s.lines, i+1)
			}
		}
	})
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset. Out of range positions are
// clamped to [0, Len()].
func (s *Source) Position(pos int) Position {
	s.initLines()
	pos = s.clamp(pos)
	// index of the first line starting after pos
	i := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > pos })
	return Position{s.name, i, pos - s.lines[i-1] + 1}
}

// LinePos returns the offset of the given line, or -1 if there is no such
// line.
func (s *Source) LinePos(line int) int {
	s.initLines()
	if line < 1 || line > len(s.lines) {
		return -1
	}
	return s.lines[line-1]
}

// Line returns the text of the line containing pos, without its line
// terminator.
func (s *Source) Line(pos int) string {
	start := s.LinePos(s.Position(pos).Line)
	l := s.text[start:]
	if i := strings.IndexByte(l, '\n'); i >= 0 {
		l = l[:i]
	}
	return strings.TrimSuffix(l, "\r")
}

func (s *Source) clamp(pos int) int {
	switch {
	case pos < 0:
		return 0
	case pos > len(s.text):
		return len(s.text)
	}
	return pos
}
