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

// Lazy returns a matcher that calls factory the first time it is used, then
// behaves like the matcher returned by factory. This is what makes recursive
// grammars possible:
//
//	var expr comb.Matcher[int]
//	paren := comb.Between(comb.Text("("), comb.Lazy(func() comb.Matcher[int] { return expr }), comb.Text(")"))
//	expr = comb.Choice(number, paren)
//
// The matcher returned by factory is memoized. The memo is set without any
// synchronization: the first call to the returned matcher must not happen
// concurrently with any other call. Once it has been called, it is safe for
// concurrent use. Lazy panics at parse time if factory returns nil.
func Lazy[T any](factory func() Matcher[T]) Matcher[T] {
	var m Matcher[T]
	return func(s State[Unit]) State[T] {
		if m == nil {
			if m = factory(); m == nil {
				panic("comb: Lazy factory returned a nil matcher")
			}
		}
		return m(s)
	}
}
