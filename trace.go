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

// Trace returns a matcher that logs calls to m under the given rule name.
//
// Logging goes to the logger of the source being parsed (see WithLogger) at
// trace level. Each call logs an "enter" event, then either "match" or
// "fail". When trace level is not enabled, the only overhead is the level
// check.
func Trace[T any](name string, m Matcher[T]) Matcher[T] {
	return func(s State[Unit]) State[T] {
		log := s.src.log
		if !log.IsTrace() {
			return m(s)
		}
		log.Trace("enter", "rule", name, "pos", s.src.Position(s.pos).String())
		r := m(s)
		if r.err != nil {
			log.Trace("fail", "rule", name, "pos", s.src.Position(s.pos).String(), "error", r.err.Error())
		} else {
			log.Trace("match", "rule", name, "pos", s.src.Position(s.pos).String(), "end", s.src.Position(r.pos).String())
		}
		return r
	}
}
