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
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

type nodeList map[rune]*node

// A node is a node in the search tree of a Literals matcher.
type node struct {
	c    nodeList // child nodes
	word string   // non-empty if a word ends at this node
}

// match returns the child node that matches the given rune.
func (n *node) match(r rune) *node {
	return n.c[r]
}

// Literals returns a matcher for the longest word in words that matches the
// input. The value of the match is the matched word.
//
// Contrary to a Choice of Text matchers, the order of words does not matter:
//
//	Literals("<", "<=", "<<")
//
// matches "<=" in "<=3", where Choice(Text("<"), Text("<="), Text("<<")) would
// match "<".
//
// Literals panics if words is empty, if a word is empty or if a word appears
// more than once.
func Literals(words ...string) Matcher[string] {
	if len(words) == 0 {
		panic("comb: Literals called without words")
	}
	root := &node{c: make(nodeList)}
	for _, w := range words {
		if w == "" {
			panic("comb: empty word in Literals")
		}
		n := root
		for _, r := range w {
			i, ok := n.c[r]
			if !ok {
				i = &node{c: make(nodeList)}
				n.c[r] = i
			}
			n = i
		}
		if n.word != "" {
			panic("comb: word " + strconv.Quote(w) + " registered twice")
		}
		n.word = w
	}

	sorted := slices.Clone(words)
	slices.Sort(sorted)
	for i, w := range sorted {
		sorted[i] = strconv.Quote(w)
	}
	expected := "one of " + strings.Join(sorted, ", ")

	return func(s State[Unit]) State[string] {
		var match string
		rest := s.Rest()
		for i, n := 0, root; i < len(rest); {
			r, sz := utf8.DecodeRuneInString(rest[i:])
			if n = n.match(r); n == nil {
				break
			}
			i += sz
			if n.word != "" {
				match = n.word
			}
			if len(n.c) == 0 {
				break
			}
		}
		if match == "" {
			return Fail[string](s, "expected %s, found %s", expected, preview(s))
		}
		return Ok(s, s.pos+len(match), match)
	}
}
