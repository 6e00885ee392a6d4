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

	"golang.org/x/exp/slices"
)

// Pair is the value of a Seq2 match.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the value of a Seq3 match.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Map returns a matcher that applies fn to the value of m.
func Map[T, U any](m Matcher[T], fn func(T) U) Matcher[U] {
	return func(s State[Unit]) State[U] {
		r := m(s)
		if r.err != nil {
			return Backtrack(s, Propagate[U](r))
		}
		return Ok(r, r.pos, fn(r.val))
	}
}

// Refine is like Map, except that fn may reject the value of m by returning a
// non-nil error. In that case the match fails at the position where m was
// entered, not where it stopped, and the returned Error wraps the error from
// fn.
func Refine[T, U any](m Matcher[T], fn func(T) (U, error)) Matcher[U] {
	return func(s State[Unit]) State[U] {
		r := m(s)
		if r.err != nil {
			return Backtrack(s, Propagate[U](r))
		}
		v, err := fn(r.val)
		if err != nil {
			return failWith[U](s, s.pos, err)
		}
		return Ok(r, r.pos, v)
	}
}

// Erase returns a matcher that boxes the value of m into an any. It is
// used to build sequences of matchers with different value types.
func Erase[T any](m Matcher[T]) Matcher[any] {
	return Map(m, func(v T) any { return v })
}

// Seq returns a matcher that runs the given matchers in order, each one
// starting where the previous one stopped. The value of the match is the list
// of all values.
//
// If any matcher fails, the sequence fails as a whole: the failed state is
// positioned where the sequence started.
func Seq[T any](ms ...Matcher[T]) Matcher[[]T] {
	return func(s State[Unit]) State[[]T] {
		vs := make([]T, 0, len(ms))
		cur := s
		for _, m := range ms {
			r := m(cur)
			if r.err != nil {
				return Backtrack(s, Propagate[[]T](r))
			}
			vs = append(vs, r.val)
			cur = r.Discard()
		}
		return Ok(cur, cur.pos, vs)
	}
}

// Seq2 is the two-matcher version of Seq for matchers of different types.
func Seq2[A, B any](a Matcher[A], b Matcher[B]) Matcher[Pair[A, B]] {
	return func(s State[Unit]) State[Pair[A, B]] {
		ra := a(s)
		if ra.err != nil {
			return Backtrack(s, Propagate[Pair[A, B]](ra))
		}
		rb := b(ra.Discard())
		if rb.err != nil {
			return Backtrack(s, Propagate[Pair[A, B]](rb))
		}
		return Ok(rb, rb.pos, Pair[A, B]{ra.val, rb.val})
	}
}

// Seq3 is the three-matcher version of Seq for matchers of different types.
func Seq3[A, B, C any](a Matcher[A], b Matcher[B], c Matcher[C]) Matcher[Triple[A, B, C]] {
	return func(s State[Unit]) State[Triple[A, B, C]] {
		ra := a(s)
		if ra.err != nil {
			return Backtrack(s, Propagate[Triple[A, B, C]](ra))
		}
		rb := b(ra.Discard())
		if rb.err != nil {
			return Backtrack(s, Propagate[Triple[A, B, C]](rb))
		}
		rc := c(rb.Discard())
		if rc.err != nil {
			return Backtrack(s, Propagate[Triple[A, B, C]](rc))
		}
		return Ok(rc, rc.pos, Triple[A, B, C]{ra.val, rb.val, rc.val})
	}
}

// Left returns a matcher for m followed by skip. The value of skip is
// discarded.
func Left[T, U any](m Matcher[T], skip Matcher[U]) Matcher[T] {
	return Map(Seq2(m, skip), func(p Pair[T, U]) T { return p.First })
}

// Right returns a matcher for skip followed by m. The value of skip is
// discarded.
func Right[U, T any](skip Matcher[U], m Matcher[T]) Matcher[T] {
	return Map(Seq2(skip, m), func(p Pair[U, T]) T { return p.Second })
}

// Between returns a matcher for m enclosed by open and close, as in
// parenthesized expressions. Only the value of m is kept.
func Between[O, T, C any](open Matcher[O], m Matcher[T], close Matcher[C]) Matcher[T] {
	return Map(Seq3(open, m, close), func(t Triple[O, T, C]) T { return t.Second })
}

// Choice returns a matcher that tries each of ms in order from the same
// position and returns the result of the first one that succeeds. This is a
// prioritized choice: a later alternative is never tried once an earlier one
// has matched, even if it would match more input.
//
// If all alternatives fail, Choice fails with a generic message at the
// position where it was entered. Use Label for a more meaningful message.
//
// Choice panics if ms is empty.
func Choice[T any](ms ...Matcher[T]) Matcher[T] {
	if len(ms) == 0 {
		panic("comb: Choice called without alternatives")
	}
	return func(s State[Unit]) State[T] {
		for _, m := range ms {
			if r := m(s); r.err == nil {
				return r
			}
		}
		return Fail[T](s, "no alternative matched at %s", preview(s))
	}
}

// Many returns a matcher for zero or more repetitions of m. It always
// succeeds; the value of the match is the possibly empty list of values of m.
//
// m must not succeed without consuming input, otherwise Many loops forever.
func Many[T any](m Matcher[T]) Matcher[[]T] {
	return func(s State[Unit]) State[[]T] {
		return many(m, s, make([]T, 0))
	}
}

// Many1 returns a matcher for one or more repetitions of m. It fails with
// the error of m if m does not match at least once.
//
// m must not succeed without consuming input, otherwise Many1 loops forever.
func Many1[T any](m Matcher[T]) Matcher[[]T] {
	return func(s State[Unit]) State[[]T] {
		r := m(s)
		if r.err != nil {
			return Backtrack(s, Propagate[[]T](r))
		}
		return many(m, r.Discard(), []T{r.val})
	}
}

func many[T any](m Matcher[T], s State[Unit], vs []T) State[[]T] {
	for {
		r := m(s)
		if r.err != nil {
			return Ok(s, s.pos, slices.Clip(vs))
		}
		vs = append(vs, r.val)
		s = r.Discard()
	}
}

// Times returns a matcher for exactly n repetitions of m.
//
// Times panics if n is negative.
func Times[T any](n int, m Matcher[T]) Matcher[[]T] {
	if n < 0 {
		panic(fmt.Sprintf("comb: negative repeat count %d", n))
	}
	return func(s State[Unit]) State[[]T] {
		vs := make([]T, 0, n)
		cur := s
		for i := 0; i < n; i++ {
			r := m(cur)
			if r.err != nil {
				return Backtrack(s, Propagate[[]T](r))
			}
			vs = append(vs, r.val)
			cur = r.Discard()
		}
		return Ok(cur, cur.pos, vs)
	}
}

// Optional returns a matcher that never fails: if m fails, it succeeds with
// value def without consuming input.
func Optional[T any](m Matcher[T], def T) Matcher[T] {
	return func(s State[Unit]) State[T] {
		if r := m(s); r.err == nil {
			return r
		}
		return Ok(s, s.pos, def)
	}
}

// Maybe is like Optional, but signals the absence of a match with a nil
// value.
func Maybe[T any](m Matcher[T]) Matcher[*T] {
	return func(s State[Unit]) State[*T] {
		r := m(s)
		if r.err != nil {
			return Ok[*T](s, s.pos, nil)
		}
		v := r.val
		return Ok(r, r.pos, &v)
	}
}

// SepBy returns a matcher for zero or more items separated by sep. The value
// is the list of item values; separator values are discarded.
//
// A trailing separator that is not followed by an item is not consumed.
func SepBy[T, S any](item Matcher[T], sep Matcher[S]) Matcher[[]T] {
	return func(s State[Unit]) State[[]T] {
		r := item(s)
		if r.err != nil {
			return Ok(s, s.pos, make([]T, 0))
		}
		return sepBy(item, sep, r)
	}
}

// SepBy1 is like SepBy, but requires at least one item.
func SepBy1[T, S any](item Matcher[T], sep Matcher[S]) Matcher[[]T] {
	return func(s State[Unit]) State[[]T] {
		r := item(s)
		if r.err != nil {
			return Backtrack(s, Propagate[[]T](r))
		}
		return sepBy(item, sep, r)
	}
}

func sepBy[T, S any](item Matcher[T], sep Matcher[S], first State[T]) State[[]T] {
	vs := []T{first.val}
	cur := first.Discard()
	for {
		rs := sep(cur)
		if rs.err != nil {
			break
		}
		r := item(rs.Discard())
		if r.err != nil {
			break
		}
		vs = append(vs, r.val)
		cur = r.Discard()
	}
	return Ok(cur, cur.pos, slices.Clip(vs))
}

// Lookahead returns a matcher that succeeds with the value of m if m
// matches, but does not consume any input.
func Lookahead[T any](m Matcher[T]) Matcher[T] {
	return func(s State[Unit]) State[T] {
		r := m(s)
		if r.err != nil {
			return Backtrack(s, r)
		}
		return Ok(s, s.pos, r.val)
	}
}

// Not returns a matcher that succeeds without consuming input if m fails, and
// fails if m matches (negative lookahead).
func Not[T any](m Matcher[T]) Matcher[Unit] {
	return func(s State[Unit]) State[Unit] {
		if r := m(s); r.err != nil {
			return s
		}
		return Fail[Unit](s, "unexpected %s", preview(s))
	}
}

// Recognize returns a matcher whose value is the input text consumed by m.
func Recognize[T any](m Matcher[T]) Matcher[string] {
	return func(s State[Unit]) State[string] {
		r := m(s)
		if r.err != nil {
			return Backtrack(s, Propagate[string](r))
		}
		return Ok(r, r.pos, s.src.text[s.pos:r.pos])
	}
}

// Label returns a matcher that replaces the failure message of m with
// "expected name". The failure is reported where m was entered.
func Label[T any](name string, m Matcher[T]) Matcher[T] {
	return func(s State[Unit]) State[T] {
		r := m(s)
		if r.err != nil {
			return Fail[T](s, "expected %s, found %s", name, preview(s))
		}
		return r
	}
}

// ChainLeft returns a matcher for one or more operands separated by
// operators, folded from left to right:
//
//	a op1 b op2 c  =>  fold(fold(a, op1, b), op2, c)
//
// This is the usual way of writing left-associative rules without left
// recursion. If fold returns an error, the match fails at the position of
// the offending operator. An operator that is not followed by an operand is
// not consumed.
func ChainLeft[T, O any](operand Matcher[T], op Matcher[O], fold func(lhs T, op O, rhs T) (T, error)) Matcher[T] {
	return func(s State[Unit]) State[T] {
		r := operand(s)
		if r.err != nil {
			return Backtrack(s, r)
		}
		acc := r.val
		cur := r.Discard()
		for {
			ro := op(cur)
			if ro.err != nil {
				break
			}
			rr := operand(ro.Discard())
			if rr.err != nil {
				break
			}
			v, err := fold(acc, ro.val, rr.val)
			if err != nil {
				return failWith[T](s, cur.pos, err)
			}
			acc = v
			cur = rr.Discard()
		}
		return Ok(cur, cur.pos, acc)
	}
}

// failWith returns a failed state at prev's position, reporting err at index.
func failWith[T, U any](prev State[U], index int, err error) State[T] {
	return State[T]{
		src: prev.src,
		pos: prev.pos,
		err: NewError(prev.src, index, err),
	}
}
