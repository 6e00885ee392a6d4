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

import "fmt"

// Unit is the value type of matchers that produce no meaningful value.
type Unit struct{}

// State is an immutable snapshot of parse progress.
//
// A State is either Ok, in which case Pos is the offset up to which input has
// been matched and Value the matched value, or failed, in which case Err
// describes the failure and Pos is the offset at which the failing matcher
// was entered. Failed states never carry a value.
//
// A State is always bound to the Source it was derived from.
type State[T any] struct {
	src *Source
	pos int
	val T
	err *Error
}

// Initial returns the initial state for parsing text: an Ok state at offset
// 0 bound to a new Source.
func Initial(text string, opts ...Option) State[Unit] {
	return Start(NewSource(text, opts...))
}

// Start returns the initial state for an existing Source.
func Start(src *Source) State[Unit] {
	return State[Unit]{src: src}
}

// Ok returns a success state that advances prev to pos with value v. The
// returned state is bound to the same source as prev.
func Ok[T, U any](prev State[U], pos int, v T) State[T] {
	return State[T]{src: prev.src, pos: pos, val: v}
}

// Fail returns a failed state at prev's position. The message is formatted
// with fmt.Sprintf.
func Fail[T, U any](prev State[U], format string, args ...any) State[T] {
	return FailAt[T](prev, prev.pos, format, args...)
}

// FailAt returns a failed state at prev's position where the failure itself
// was detected at offset index. index is usually greater than prev.Pos() and
// is what gets reported to the user.
func FailAt[T, U any](prev State[U], index int, format string, args ...any) State[T] {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return State[T]{
		src: prev.src,
		pos: prev.pos,
		err: &Error{Index: index, Message: msg, src: prev.src},
	}
}

// Propagate converts the failed state s to a failed state of another value
// type. Pos and Err are left untouched. Calling Propagate on an Ok state
// panics.
func Propagate[T, U any](s State[U]) State[T] {
	if s.err == nil {
		panic("comb: Propagate called on a successful state")
	}
	return State[T]{src: s.src, pos: s.pos, err: s.err}
}

// Backtrack moves the failed state s back to entry's position, keeping its
// error. Ok states are returned unchanged.
func Backtrack[T, U any](entry State[U], s State[T]) State[T] {
	if s.err == nil {
		return s
	}
	return State[T]{src: s.src, pos: entry.pos, err: s.err}
}

// Run applies m to s. If s is a failed state, m is not called and the
// failure is propagated as is.
func Run[T, U any](m Matcher[T], s State[U]) State[T] {
	if s.err != nil {
		return Propagate[T](s)
	}
	return m(s.Discard())
}

// OK returns true if s is a success state.
func (s State[T]) OK() bool {
	return s.err == nil
}

// Pos returns the current offset in the source.
func (s State[T]) Pos() int {
	return s.pos
}

// Value returns the value carried by s. This is the zero value of T for
// failed states.
func (s State[T]) Value() T {
	return s.val
}

// Err returns the error carried by a failed state, nil otherwise.
func (s State[T]) Err() *Error {
	return s.err
}

// Source returns the source s is bound to.
func (s State[T]) Source() *Source {
	return s.src
}

// Rest returns the unparsed part of the source text.
func (s State[T]) Rest() string {
	return s.src.text[s.pos:]
}

// AtEOF returns true if s is positioned at the end of input.
func (s State[T]) AtEOF() bool {
	return s.pos >= len(s.src.text)
}

// Discard returns s without its value.
func (s State[T]) Discard() State[Unit] {
	return State[Unit]{src: s.src, pos: s.pos, err: s.err}
}

func (s State[T]) String() string {
	if s.err != nil {
		return fmt.Sprintf("error@%d: %s", s.pos, s.err)
	}
	return fmt.Sprintf("ok@%d: %v", s.pos, s.val)
}
