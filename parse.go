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

// Parse runs m on text and returns the value of the match.
//
// Parse does not require m to consume all of the input; use ParseAll, or end
// the grammar with EOF, for that. On failure, the returned error is an
// *Error.
func Parse[T any](m Matcher[T], text string, opts ...Option) (T, error) {
	return result(m(Initial(text, opts...)))
}

// ParseAll is like Parse, but fails if m does not consume the entire input.
func ParseAll[T any](m Matcher[T], text string, opts ...Option) (T, error) {
	return result(Left(m, EOF())(Initial(text, opts...)))
}

// ParseSource runs m on an existing Source.
func ParseSource[T any](m Matcher[T], src *Source) (T, error) {
	return result(m(Start(src)))
}

func result[T any](s State[T]) (T, error) {
	if s.err != nil {
		var zero T
		return zero, s.err
	}
	return s.val, nil
}
