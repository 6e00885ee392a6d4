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

// Package json implements a JSON parser (RFC 8259) with comb.
//
// Values are decoded the same way encoding/json decodes into an interface{}:
//
//	object   map[string]any
//	array    []any
//	string   string
//	number   float64
//	true     bool
//	null     nil
//
// Duplicate object keys are allowed, the last one wins. As with encoding/json,
// invalid UTF-8 bytes in strings are replaced by U+FFFD and arrays and
// objects cannot be nested more than MaxDepth levels deep.
package json

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/db47h/comb"
)

// ErrNumberRange is reported for numbers that cannot be represented as a
// float64.
var ErrNumberRange = errors.New("number out of range")

// MaxDepth is the maximum nesting depth of arrays and objects.
const MaxDepth = 10000

var (
	ws = comb.Regex(`^[ \t\n\r]*`)

	stringLit = comb.Right(comb.Label("string", comb.Text(`"`)), stringBody)

	numberLit = comb.Refine(
		comb.Label("value", comb.Regex(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?`)),
		func(g comb.Groups) (any, error) {
			f, err := strconv.ParseFloat(g[0], 64)
			if err != nil {
				return nil, ErrNumberRange
			}
			return f, nil
		})

	keyword = comb.Map(comb.Label("value", comb.Literals("true", "false", "null")), func(kw string) any {
		switch kw {
		case "true":
			return true
		case "false":
			return false
		}
		return nil
	})
)

// token returns a matcher for m followed by optional whitespace.
func token[T any](m comb.Matcher[T]) comb.Matcher[T] {
	return comb.Left(m, ws)
}

func punct(p string) comb.Matcher[string] {
	return token(comb.Text(p))
}

// stringBody matches the rest of a string literal following the opening
// quote. Errors are reported at the offending character or escape sequence.
func stringBody(s comb.State[comb.Unit]) comb.State[string] {
	rest := s.Rest()
	for i := 0; i < len(rest); {
		switch c := rest[i]; {
		case c == '"':
			return comb.Ok(s, s.Pos()+i+1, unescape(rest[:i]))
		case c == '\\':
			if n := escapeLen(rest[i+1:]); n > 0 {
				i += n + 1
				continue
			}
			return comb.FailAt[string](s, s.Pos()+i, "invalid escape sequence in string")
		case c < 0x20:
			return comb.FailAt[string](s, s.Pos()+i, "invalid character %#U in string", rune(c))
		default:
			i++
		}
	}
	return comb.FailAt[string](s, s.Pos()-1, "unterminated string")
}

// escapeLen returns the length of the escape sequence at the start of s,
// backslash excluded, or 0 if it is not valid.
func escapeLen(s string) int {
	if s == "" {
		return 0
	}
	switch s[0] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 1
	case 'u':
		if len(s) < 5 {
			return 0
		}
		for _, c := range []byte(s[1:5]) {
			if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
				return 0
			}
		}
		return 5
	}
	return 0
}

// unescape decodes the body of a string literal that has already been
// validated. Invalid UTF-8 bytes are replaced by U+FFFD.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 && utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch c = s[i]; c {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r := hex4(s[i+1:])
			i += 4
			if utf16.IsSurrogate(r) {
				// look for the second half of a surrogate pair
				if strings.HasPrefix(s[i+1:], `\u`) {
					if r = utf16.DecodeRune(r, hex4(s[i+3:])); r != utf8.RuneError {
						i += 6
					}
				} else {
					r = utf8.RuneError
				}
			}
			b.WriteRune(r)
		default: // " \ /
			b.WriteByte(c)
		}
		i++
	}
	return b.String()
}

func hex4(s string) rune {
	v, _ := strconv.ParseUint(s[:4], 16, 32)
	return rune(v)
}

// list returns a matcher for zero or more comma separated items, up to but
// excluding the closing delimiter. Unless the list is empty, the first item is
// required so that its errors are reported as is.
func list[T any](item comb.Matcher[T], closing byte) comb.Matcher[[]T] {
	items := comb.SepBy1(item, punct(","))
	return func(s comb.State[comb.Unit]) comb.State[[]T] {
		if rest := s.Rest(); rest != "" && rest[0] == closing {
			return comb.Ok(s, s.Pos(), []T{})
		}
		return items(s)
	}
}

// Value returns a matcher for a JSON value followed by optional whitespace.
// Leading whitespace is not skipped.
//
// The matcher keeps track of the nesting depth of the value being matched and
// must not be used concurrently.
func Value() comb.Matcher[any] {
	var value comb.Matcher[any]
	lazyValue := comb.Lazy(func() comb.Matcher[any] { return value })

	depth := 0
	nested := func(m comb.Matcher[any]) comb.Matcher[any] {
		return func(s comb.State[comb.Unit]) comb.State[any] {
			if depth >= MaxDepth {
				return comb.Fail[any](s, "exceeded max nesting depth %d", MaxDepth)
			}
			depth++
			defer func() { depth-- }()
			return m(s)
		}
	}

	member := comb.Seq3(token(stringLit), punct(":"), lazyValue)
	object := nested(comb.Trace("object", comb.Map(comb.Between(punct("{"), list(member, '}'), punct("}")),
		func(ms []comb.Triple[string, string, any]) any {
			obj := make(map[string]any, len(ms))
			for _, m := range ms {
				obj[m.First] = m.Third
			}
			return obj
		})))
	array := nested(comb.Trace("array", comb.Map(comb.Between(punct("["), list(lazyValue, ']'), punct("]")),
		func(vs []any) any { return vs })))
	str := comb.Erase(token(stringLit))
	number := token(numberLit)
	kw := token(keyword)

	// the first byte of a value determines its type.
	value = func(s comb.State[comb.Unit]) comb.State[any] {
		rest := s.Rest()
		if rest == "" {
			return number(s)
		}
		switch rest[0] {
		case '{':
			return object(s)
		case '[':
			return array(s)
		case '"':
			return str(s)
		case 't', 'f', 'n':
			return kw(s)
		}
		return number(s)
	}
	return value
}

// Parse parses a JSON document. Leading and trailing whitespace is allowed;
// anything else following the top level value is an error.
func Parse(text string, opts ...comb.Option) (any, error) {
	return comb.ParseAll(comb.Right(ws, Value()), text, opts...)
}
