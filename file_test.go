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
	"os"
	"strings"
	"testing"

	"github.com/db47h/comb"
)

func TestSource_Position(t *testing.T) {
	//                         012 345 6
	src := comb.NewSource("ab\ncd\n", comb.WithName("test"))
	data := []struct {
		pos  int
		want string
	}{
		{0, "test:1:1"},
		{2, "test:1:3"},
		{3, "test:2:1"},
		{4, "test:2:2"},
		{6, "test:3:1"},
		{-1, "test:1:1"},
		{100, "test:3:1"},
	}
	for _, d := range data {
		if got := src.Position(d.pos).String(); got != d.want {
			t.Errorf("Position(%d): expected %s, got %s", d.pos, d.want, got)
		}
	}
}

func TestSource_Line(t *testing.T) {
	src := comb.NewSource("first\r\nsecond\n\nlast")
	data := []struct {
		pos  int
		want string
	}{
		{0, "first"},
		{6, "first"},
		{7, "second"},
		{14, ""},
		{15, "last"},
		{19, "last"},
	}
	for _, d := range data {
		if got := src.Line(d.pos); got != d.want {
			t.Errorf("Line(%d): expected %q, got %q", d.pos, d.want, got)
		}
	}
	if p := src.LinePos(3); p != 14 {
		t.Errorf("LinePos(3): expected 14, got %d", p)
	}
	if p := src.LinePos(5); p != -1 {
		t.Errorf("LinePos(5): expected -1, got %d", p)
	}
}

func TestError_Report(t *testing.T) {
	m := comb.Right(comb.Text("\tkey = "), comb.Regex(`^\d+`))
	_, err := comb.Parse(m, "\tkey = none")
	var b strings.Builder
	if e := err.(*comb.Error).Report(&b); e != nil {
		t.Fatal(e)
	}
	want := "1:8: expected match for /^\\d+/, found \"none\"\n" +
		"|\tkey = none\n" +
		"|\t      ^\n"
	if b.String() != want {
		t.Errorf("Got:\n%s\nWant:\n%s", b.String(), want)
	}
}

// This example shows how Error.Report displays the line where a parse failed.
// The following output will display correctly only with monospaced fonts and
// a UTF-8 locale.
func ExampleError_Report() {
	m := comb.Right(comb.Text("世界 = "), comb.Regex(`^\d+`))
	_, err := comb.Parse(m, "世界 = x", comb.WithName("input"))
	if err != nil {
		err.(*comb.Error).Report(os.Stdout)
	}

	// Output:
	// input:1:10: expected match for /^\d+/, found "x"
	// |世界 = x
	// |       ^
}
