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

// Package calc implements a calculator for arithmetic expressions on exact
// rational numbers.
//
// Expressions are made of number literals (see lit.Rat), the binary operators
// + - * /, unary + and - and parentheses. Spaces and tabs are allowed between
// tokens. Binary operators are left-associative, * and / bind tighter than +
// and -, and unary operators bind tighter than any binary operator:
//
//	-2*3+4  ==  ((-2)*3)+4
package calc

import (
	"errors"
	"math/big"
	"sort"

	"github.com/db47h/comb"
	"github.com/db47h/comb/lit"
)

// ErrDivisionByZero is reported by Eval for divisions by zero.
var ErrDivisionByZero = errors.New("division by zero")

type binOpSpec struct {
	prec int
	fn   func(z, x, y *big.Rat) (*big.Rat, error)
}

var binOp = map[string]binOpSpec{
	"+": {1, func(z, x, y *big.Rat) (*big.Rat, error) { return z.Add(x, y), nil }},
	"-": {1, func(z, x, y *big.Rat) (*big.Rat, error) { return z.Sub(x, y), nil }},
	"*": {2, func(z, x, y *big.Rat) (*big.Rat, error) { return z.Mul(x, y), nil }},
	"/": {2, quo},
}

var unaryOp = map[string]func(z, x *big.Rat) *big.Rat{
	"+": (*big.Rat).Set,
	"-": (*big.Rat).Neg,
}

func quo(z, x, y *big.Rat) (*big.Rat, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return z.Quo(x, y), nil
}

// A Node is a node in the syntax tree of an expression. Leaves hold a number
// literal; other nodes hold an operator and its operands.
type Node struct {
	Op    string   // operator, empty for leaves
	Pos   int      // byte offset of the literal or operator
	Value *big.Rat // value of a literal
	Args  []*Node  // operands
}

// String returns the expression as a fully parenthesized string.
func (n *Node) String() string {
	switch len(n.Args) {
	case 0:
		return n.Value.RatString()
	case 1:
		return "(" + n.Op + n.Args[0].String() + ")"
	}
	return "(" + n.Args[0].String() + n.Op + n.Args[1].String() + ")"
}

// eval returns the value of n. On error, it also returns the node where the
// error occurred.
func (n *Node) eval() (*big.Rat, *Node, error) {
	if len(n.Args) == 0 {
		return n.Value, nil, nil
	}
	x, en, err := n.Args[0].eval()
	if err != nil {
		return nil, en, err
	}
	if len(n.Args) == 1 {
		return unaryOp[n.Op](new(big.Rat), x), nil, nil
	}
	y, en, err := n.Args[1].eval()
	if err != nil {
		return nil, en, err
	}
	z, err := binOp[n.Op].fn(new(big.Rat), x, y)
	if err != nil {
		return nil, n, err
	}
	return z, nil, nil
}

// token returns a matcher for m followed by optional blanks.
func token[T any](m comb.Matcher[T]) comb.Matcher[T] {
	return comb.Left(m, blanks)
}

var blanks = comb.Regex(`^[ \t]*`)

// operator returns a matcher for any of the operators in ops. The value of
// the match is a leaf node holding the operator and its position.
func operator(ops []string) comb.Matcher[*Node] {
	literals := comb.Literals(ops...)
	return token(func(s comb.State[comb.Unit]) comb.State[*Node] {
		r := literals(s)
		if !r.OK() {
			return comb.Propagate[*Node](r)
		}
		return comb.Ok(r, r.Pos(), &Node{Op: r.Value(), Pos: s.Pos()})
	})
}

// precedences returns the distinct precedence levels of binary operators in
// ascending order, and the operators at each level.
func precedences() ([]int, map[int][]string) {
	ops := make(map[int][]string)
	for op, spec := range binOp {
		ops[spec.prec] = append(ops[spec.prec], op)
	}
	levels := make([]int, 0, len(ops))
	for p := range ops {
		levels = append(levels, p)
	}
	sort.Ints(levels)
	return levels, ops
}

// Matcher returns a matcher for expressions, surrounding blanks included. The
// value of the match is the syntax tree of the expression.
func Matcher() comb.Matcher[*Node] {
	var expr comb.Matcher[*Node]
	rat := lit.Rat('.')
	number := token(func(s comb.State[comb.Unit]) comb.State[*Node] {
		r := rat(s)
		if !r.OK() {
			return comb.Propagate[*Node](r)
		}
		return comb.Ok(r, r.Pos(), &Node{Pos: s.Pos(), Value: r.Value()})
	})
	paren := comb.Between(token(comb.Text("(")), comb.Lazy(func() comb.Matcher[*Node] { return expr }), token(comb.Text(")")))

	// unary operators apply to operands of the highest precedence level.
	var operand comb.Matcher[*Node]
	unary := comb.Map(comb.Seq2(operator([]string{"+", "-"}), comb.Lazy(func() comb.Matcher[*Node] { return operand })),
		func(p comb.Pair[*Node, *Node]) *Node {
			p.First.Args = []*Node{p.Second}
			return p.First
		})
	operand = comb.Trace("operand", comb.Choice(number, paren, unary))

	// one ChainLeft per precedence level, from the highest to the lowest.
	levels, ops := precedences()
	term := operand
	for i := len(levels) - 1; i >= 0; i-- {
		term = comb.ChainLeft(term, operator(ops[levels[i]]), func(lhs, op, rhs *Node) (*Node, error) {
			return &Node{Op: op.Op, Pos: op.Pos, Args: []*Node{lhs, rhs}}, nil
		})
	}
	expr = comb.Trace("expr", term)
	return comb.Right(blanks, expr)
}

// Parse parses expr and returns its syntax tree. The whole input must be a
// valid expression.
func Parse(expr string, opts ...comb.Option) (*Node, error) {
	return comb.ParseAll(Matcher(), expr, opts...)
}

// Eval parses and evaluates expr.
//
// Errors are of type *comb.Error. A division by zero is reported at the
// position of the division operator and wraps ErrDivisionByZero.
func Eval(expr string, opts ...comb.Option) (*big.Rat, error) {
	src := comb.NewSource(expr, opts...)
	n, err := comb.ParseSource(comb.Left(Matcher(), comb.EOF()), src)
	if err != nil {
		return nil, err
	}
	v, en, err := n.eval()
	if err != nil {
		return nil, comb.NewError(src, en.Pos, err)
	}
	return v, nil
}
