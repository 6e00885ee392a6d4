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
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// Error describes a match failure.
//
// Index is the byte offset in the source where the failure was detected.
// Callers should rely on Index rather than on the wording of Message.
type Error struct {
	Index   int
	Message string
	src     *Source
	cause   error
}

// NewError returns an Error at offset index in src that wraps err. It is
// meant for errors detected after parsing, like evaluation errors, so that
// they can be reported the same way as match failures.
func NewError(src *Source, index int, err error) *Error {
	return &Error{Index: index, Message: err.Error(), src: src, cause: err}
}

// Error implements error. The message is prefixed with the failure position
// in the form name:line:col.
func (e *Error) Error() string {
	if e.src == nil {
		return fmt.Sprintf("%d: %s", e.Index, e.Message)
	}
	return e.Position().String() + ": " + e.Message
}

// Position returns the line/column position of the failure.
func (e *Error) Position() Position {
	if e.src == nil {
		return Position{}
	}
	return e.src.Position(e.Index)
}

// Unwrap returns the error that caused the failure, if any. This is set for
// failures reported by Refine and ChainLeft, and for errors built with
// NewError.
func (e *Error) Unwrap() error {
	return e.cause
}

// Source returns the source the error refers to.
func (e *Error) Source() *Source {
	return e.src
}

// Report writes the error message followed by the offending source line and
// a caret under the failure column:
//
//	input:1:5: expected "+", found "-7"
//	|12 -7
//	|   ^
//
// Caret alignment accounts for East Asian wide characters and assumes a
// monospaced font.
func (e *Error) Report(w io.Writer) error {
	if _, err := fmt.Fprintln(w, e.Error()); err != nil {
		return err
	}
	if e.src == nil {
		return nil
	}
	pos := e.Position()
	l := e.src.Line(e.Index)
	b := pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	_, err := fmt.Fprintf(w, "|%s\n|%s^\n", l, padding(l[:b]))
	return err
}

// padding returns the blank prefix that spans s in text cells. Tabs are kept
// as is so that the caret lines up with the source line above it.
func padding(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		if !unicode.IsGraphic(r) || r == utf8.RuneError {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			b.WriteString("  ")
		default:
			// EastAsianAmbiguous depends on the user locale. 2 if CJK, 1 otherwise.
			b.WriteByte(' ')
		}
	}
	return b.String()
}
