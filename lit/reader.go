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

package lit

import "unicode/utf8"

// eof is the rune returned by reader.next at end of input.
const eof = -1

// reader reads runes from the unparsed part of the input. Offsets are
// relative to the start of that text.
type reader struct {
	text string
	pos  int  // offset of the next rune
	cur  int  // offset of the current rune
	c    rune // current rune
}

// next reads and returns the next rune. At end of input it returns eof and
// cur is set to len(text).
func (r *reader) next() rune {
	r.cur = r.pos
	if r.pos >= len(r.text) {
		r.c = eof
		return eof
	}
	c, sz := utf8.DecodeRuneInString(r.text[r.pos:])
	r.pos += sz
	r.c = c
	return c
}

// peek returns the next rune without consuming it.
func (r *reader) peek() rune {
	if r.pos >= len(r.text) {
		return eof
	}
	c, _ := utf8.DecodeRuneInString(r.text[r.pos:])
	return c
}

// backup unreads the current rune. It can only be called once after next.
func (r *reader) backup() {
	r.pos = r.cur
}
