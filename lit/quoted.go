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

import (
	"strings"
	"unicode/utf8"

	"github.com/db47h/comb"
)

const (
	errEnd     = -2
	errRawByte = -1
	errNone    = iota
	errEOL
	errInvalidEscape
	errInvalidRune
	errInvalidHex
	errInvalidOctal
	errOctalRange
	errSize
	errEmpty
)

var msg = [...]string{
	errNone:          "",
	errEOL:           "unterminated %s",
	errInvalidEscape: "unknown escape sequence",
	errInvalidRune:   "escape sequence is invalid Unicode code point",
	errInvalidHex:    "non-hex character in escape sequence: %#U",
	errInvalidOctal:  "non-octal character in escape sequence: %#U",
	errOctalRange:    "octal escape value %d > 255",
	errSize:          "invalid character literal (more than 1 character)",
	errEmpty:         "empty character literal or unescaped %c in character literal",
}

// QuotedString returns a matcher for a string literal delimited by quote. It
// supports the same escape sequences as double-quoted Go string literals, with
// \<quote> as the escape sequence for the delimiter. The value of the match
// is the unquoted string.
//
// String literals cannot span multiple lines.
func QuotedString(quote rune) comb.Matcher[string] {
	open := string(quote)
	return comb.Right(comb.Text(open), func(s comb.State[comb.Unit]) comb.State[string] {
		var b strings.Builder
		rd := reader{text: s.Rest()}
		for {
			r, err := readChar(&rd, quote)
			switch err {
			case errNone:
				b.WriteRune(r)
			case errRawByte:
				b.WriteByte(byte(r))
			case errEnd:
				return comb.Ok(s, s.Pos()+rd.pos, b.String())
			case errEOL:
				return comb.FailAt[string](s, s.Pos()-len(open), msg[errEOL], "string")
			case errInvalidEscape, errInvalidRune:
				return comb.FailAt[string](s, s.Pos()+rd.cur, msg[err])
			case errInvalidHex, errInvalidOctal, errOctalRange:
				return comb.FailAt[string](s, s.Pos()+rd.cur, msg[err], r)
			}
		}
	})
}

// QuotedChar returns a matcher for a Go character literal. The value of the
// match is the unquoted character.
func QuotedChar() comb.Matcher[rune] {
	const quote = '\''
	return comb.Right(comb.Text(string(quote)), func(s comb.State[comb.Unit]) comb.State[rune] {
		rd := reader{text: s.Rest()}
		r, err := readChar(&rd, quote)
		switch err {
		case errNone, errRawByte:
			if rd.next() == quote {
				return comb.Ok(s, s.Pos()+rd.pos, r)
			}
			if rd.c == '\n' || rd.c == eof {
				return comb.FailAt[rune](s, s.Pos()-1, msg[errEOL], "character literal")
			}
			return comb.FailAt[rune](s, s.Pos()+rd.cur, msg[errSize])
		case errEnd:
			return comb.FailAt[rune](s, s.Pos()+rd.cur, msg[errEmpty], quote)
		case errEOL:
			return comb.FailAt[rune](s, s.Pos()-1, msg[errEOL], "character literal")
		case errInvalidEscape, errInvalidRune:
			return comb.FailAt[rune](s, s.Pos()+rd.cur, msg[err])
		case errInvalidHex, errInvalidOctal, errOctalRange:
			return comb.FailAt[rune](s, s.Pos()+rd.cur, msg[err], r)
		default:
			panic("unexpected return value from readChar")
		}
	})
}

// readChar reads a possibly escaped character. On error, r is the offending
// rune or value and rd.cur its offset.
func readChar(rd *reader, quote rune) (r rune, err int) {
	r = rd.next()
	switch r {
	case quote:
		return r, errEnd
	case '\\':
		r = rd.next()
		switch r {
		case 'a':
			return '\a', errNone
		case 'b':
			return '\b', errNone
		case 'f':
			return '\f', errNone
		case 'n':
			return '\n', errNone
		case 'r':
			return '\r', errNone
		case 't':
			return '\t', errNone
		case 'v':
			return '\v', errNone
		case '\\':
			return '\\', errNone
		case quote:
			return r, errNone
		case 'U':
			return readCodePoint(rd, 8)
		case 'u':
			return readCodePoint(rd, 4)
		case 'x':
			r, err = readDigits(rd, 2, 16)
			if err == errNone {
				err = errRawByte
			}
			return r, err
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			rd.backup()
			r, err = readDigits(rd, 3, 8)
			if err == errNone {
				if r > 255 {
					return r, errOctalRange
				}
				err = errRawByte
			}
			return r, err
		case '\n', eof:
			return r, errEOL
		default:
			return r, errInvalidEscape
		}
	case '\n', eof:
		return r, errEOL
	}
	return r, errNone
}

func readCodePoint(rd *reader, n int32) (rune, int) {
	r, err := readDigits(rd, n, 16)
	if err == errNone && !utf8.ValidRune(r) {
		return utf8.RuneError, errInvalidRune
	}
	return r, err
}

// readDigits reads exactly n digits in base b. On error, it returns the
// offending rune.
func readDigits(rd *reader, n, b int32) (v rune, err int) {
	for i := int32(0); i < n; i++ {
		var rl rune
		r := rd.next()
		if r == '\n' || r == eof {
			return r, errEOL
		}
		switch {
		case r >= 'a':
			rl = r - 'a' + 10
		case r >= 'A':
			rl = r - 'A' + 10
		default:
			rl = r - '0'
		}
		if rl < 0 || rl >= b {
			if b == 8 {
				return r, errInvalidOctal
			}
			return r, errInvalidHex
		}
		v = v*b + rl
	}
	return v, errNone
}
