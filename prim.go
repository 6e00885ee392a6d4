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
	"regexp"
	"regexp/syntax"
	"strconv"
	"strings"
	"unicode/utf8"
)

// A Matcher is a grammar rule: a function from an input state to a result
// state.
//
// Matchers are only called with successful input states; the combinators in
// this package and Run take care of short-circuiting failed states. A Matcher
// must not retain or modify anything but the states it returns, so that the
// same matcher can be reused across parses.
type Matcher[T any] func(s State[Unit]) State[T]

// previewLen is the maximum number of runes of input shown in failure
// messages.
const previewLen = 20

// preview returns a quoted excerpt of the input at s, or "end of input".
func preview[T any](s State[T]) string {
	rest := s.Rest()
	if rest == "" {
		return "end of input"
	}
	n := 0
	for i := range rest {
		if n == previewLen {
			return strconv.Quote(rest[:i]) + "…"
		}
		n++
	}
	return strconv.Quote(rest)
}

// Text returns a matcher for the literal string lit. The match is exact and
// case-sensitive. The value of the match is lit.
//
// An empty literal always matches without advancing.
func Text(lit string) Matcher[string] {
	return func(s State[Unit]) State[string] {
		if strings.HasPrefix(s.Rest(), lit) {
			return Ok(s, s.pos+len(lit), lit)
		}
		return Fail[string](s, "expected %q, found %s", lit, preview(s))
	}
}

// Char returns a matcher for any single character. It fails only at end of
// input. Invalid UTF-8 input matches a single byte and yields
// utf8.RuneError.
func Char() Matcher[rune] {
	return func(s State[Unit]) State[rune] {
		if s.AtEOF() {
			return Fail[rune](s, "unexpected end of input")
		}
		r, sz := utf8.DecodeRuneInString(s.Rest())
		return Ok(s, s.pos+sz, r)
	}
}

// Satisfy returns a matcher for a single character for which pred returns
// true. The name describes the expected character class in error messages.
func Satisfy(name string, pred func(r rune) bool) Matcher[rune] {
	return func(s State[Unit]) State[rune] {
		if !s.AtEOF() {
			r, sz := utf8.DecodeRuneInString(s.Rest())
			if pred(r) {
				return Ok(s, s.pos+sz, r)
			}
		}
		return Fail[rune](s, "expected %s, found %s", name, preview(s))
	}
}

// OneOf returns a matcher for any single character in chars.
func OneOf(chars string) Matcher[rune] {
	return Satisfy("one of "+strconv.Quote(chars), func(r rune) bool {
		return strings.ContainsRune(chars, r)
	})
}

// NoneOf returns a matcher for any single character not in chars. It does not
// match at end of input.
func NoneOf(chars string) Matcher[rune] {
	return Satisfy("none of "+strconv.Quote(chars), func(r rune) bool {
		return !strings.ContainsRune(chars, r)
	})
}

// EOF returns a matcher that succeeds only at end of input.
func EOF() Matcher[Unit] {
	return func(s State[Unit]) State[Unit] {
		if s.AtEOF() {
			return s
		}
		return Fail[Unit](s, "expected end of input, found %s", preview(s))
	}
}

// Succeed returns a matcher that always succeeds with value v without
// consuming input.
func Succeed[T any](v T) Matcher[T] {
	return func(s State[Unit]) State[T] {
		return Ok(s, s.pos, v)
	}
}

// Failure returns a matcher that always fails with the given message.
func Failure[T any](msg string) Matcher[T] {
	return func(s State[Unit]) State[T] {
		return Fail[T](s, msg)
	}
}

// Groups holds the result of a regular expression match: the whole match
// followed by one entry per capture group. Groups that did not participate in
// the match are empty.
type Groups []string

// Regex compiles pattern and returns a matcher for it. See RegexOf.
//
// Regex panics if the pattern does not compile.
func Regex(pattern string) Matcher[Groups] {
	return RegexOf(regexp.MustCompile(pattern))
}

// RegexOf returns a matcher for the regular expression re.
//
// The expression must be anchored at the beginning of text, with ^ or \A, and
// must not use multi-line mode for its anchor (i.e. (?m)^ is rejected): it is
// matched against the remainder of the input and must match at its very
// first byte. RegexOf panics otherwise.
func RegexOf(re *regexp.Regexp) Matcher[Groups] {
	mustBeAnchored(re.String())
	return func(s State[Unit]) State[Groups] {
		rest := s.Rest()
		loc := re.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return Fail[Groups](s, "expected match for /%s/, found %s", re, preview(s))
		}
		g := make(Groups, len(loc)/2)
		for i := range g {
			if loc[2*i] >= 0 {
				g[i] = rest[loc[2*i]:loc[2*i+1]]
			}
		}
		return Ok(s, s.pos+loc[1], g)
	}
}

func mustBeAnchored(pattern string) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		panic(err)
	}
	prog, err := syntax.Compile(re.Simplify())
	if err != nil {
		panic(err)
	}
	if prog.StartCond()&syntax.EmptyBeginText == 0 {
		panic(fmt.Sprintf("comb: regular expression /%s/ is not anchored at beginning of text", pattern))
	}
}
