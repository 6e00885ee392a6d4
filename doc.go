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

/*
Package comb provides the core of a backtracking parser built from parser
combinators: small matchers for literal text, single characters and regular
expressions, and functions that combine matchers into larger ones.

Clients of the package only need to describe their grammar by composing
matchers. There is no grammar file and no code generation: a grammar is a set
of Go values.

# Matchers and states

A matcher is a function from a parse state to a new parse state:

	type Matcher[T any] func(s State[Unit]) State[T]

A State is an immutable snapshot of the parse: the source being parsed, an
offset into it and either a value of type T (success) or an *Error (failure).
Matchers never modify their input state. Backtracking is simply a matter of
starting over from an earlier state, there is nothing to rewind.

A parse starts from Initial, which returns a successful state at offset 0:

	s := comb.Initial("12+7")
	r := number(s)

The Parse function does just that and converts the final state into a value
and an error:

	v, err := comb.Parse(expr, "12+7")

# Combinators

Grammar rules are built with:

	Map, Refine       transform (or reject) the value of a match
	Seq, Seq2, Seq3   concatenation
	Choice            prioritized choice (PEG semantics)
	Many, Many1       repetition
	Times             fixed repetition
	Optional, Maybe   optional rules
	SepBy, SepBy1     separated lists
	Lookahead, Not    positive and negative lookahead
	Lazy              recursive rules
	ChainLeft         left-associative operator chains

Choice is ordered: Choice(Text("a"), Text("ab")) matches "a" in "ab". Put the
longest alternatives first, or use Literals.

Repetition combinators must not be given a matcher that can succeed without
consuming input: Many(Optional(x, v)) never terminates.

Left recursion is not supported. A rule like

	expr := expr '+' term | term

must be rewritten with ChainLeft or Many.

# Recursive grammars

Since matchers are values, a rule cannot refer to itself before it has been
built. Lazy breaks the cycle by deferring the construction of a matcher to its
first use:

	var value comb.Matcher[any]
	list := comb.Between(comb.Text("["), comb.SepBy(comb.Lazy(func() comb.Matcher[any] { return value }), comb.Text(",")), comb.Text("]"))
	value = comb.Choice(number, comb.Erase(list))

# Error handling

Match failures are not Go errors, they are ordinary states: a failed state
records the offset at which the failure was detected (Error.Index) and a
human readable message. Every combinator that tries alternatives (Choice,
Optional, Many, Not, ...) simply looks at the state returned by its children.

Misuse of the API while building a grammar, like passing an unanchored
expression to Regex, panics.

Errors returned by Parse are of type *Error. The Report method prints the
message along with the offending source line and a caret under the failure
position.

# Concurrency

Parsing is synchronous. A grammar can be shared by any number of goroutines
once each of its Lazy matchers has been called at least once.
*/
package comb
