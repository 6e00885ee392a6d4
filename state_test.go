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

package comb_test

import (
	"testing"

	"github.com/db47h/comb"
)

func TestInitial(t *testing.T) {
	for _, in := range []string{"", "abc"} {
		s := comb.Initial(in)
		if !s.OK() || s.Pos() != 0 || s.Err() != nil {
			t.Errorf("Initial(%q): got %v", in, s)
		}
		if s.Source().Text() != in {
			t.Errorf("Initial(%q): source text is %q", in, s.Source().Text())
		}
		if s.AtEOF() != (in == "") {
			t.Errorf("Initial(%q): AtEOF is %v", in, s.AtEOF())
		}
	}
}

func TestOkFail(t *testing.T) {
	s := comb.Initial("hello world")
	ok := comb.Ok(s, 5, "hello")
	if !ok.OK() || ok.Pos() != 5 || ok.Value() != "hello" || ok.Rest() != " world" {
		t.Fatalf("Ok: got %v", ok)
	}
	if ok.Source() != s.Source() {
		t.Fatal("Ok: state bound to another source")
	}

	f := comb.Fail[int](ok, "bad %s", "thing")
	if f.OK() || f.Pos() != 5 || f.Err().Index != 5 || f.Err().Message != "bad thing" {
		t.Fatalf("Fail: got %v", f)
	}
	if f.Value() != 0 {
		t.Errorf("Fail: expected zero value, got %d", f.Value())
	}

	f = comb.FailAt[int](ok, 8, "deeper")
	if f.Pos() != 5 || f.Err().Index != 8 {
		t.Fatalf("FailAt: got pos %d, index %d", f.Pos(), f.Err().Index)
	}
	b := comb.Backtrack(s, f)
	if b.Pos() != 0 || b.Err() != f.Err() {
		t.Fatalf("Backtrack: got pos %d, err %v", b.Pos(), b.Err())
	}
	if p := comb.Propagate[string](f); p.Err() != f.Err() || p.Pos() != f.Pos() {
		t.Fatalf("Propagate: got %v", p)
	}
}

func TestPropagate_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	comb.Propagate[int](comb.Initial("x"))
}

func TestRun(t *testing.T) {
	s := comb.Initial("xy")
	failed := comb.Text("y")(s)
	if failed.OK() {
		t.Fatal("expected failure")
	}
	called := false
	m := func(s comb.State[comb.Unit]) comb.State[int] {
		called = true
		return comb.Ok(s, s.Pos()+1, 42)
	}
	r := comb.Run(m, failed)
	if called {
		t.Error("matcher called on a failed state")
	}
	if r.OK() || r.Err() != failed.Err() {
		t.Errorf("expected failure to be propagated, got %v", r)
	}

	r = comb.Run(m, comb.Text("x")(s))
	if !called || !r.OK() || r.Pos() != 2 || r.Value() != 42 {
		t.Errorf("expected success at 2, got %v", r)
	}
}
