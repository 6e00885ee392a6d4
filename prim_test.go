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
	"reflect"
	"strings"
	"testing"
	"unicode"

	"github.com/db47h/comb"
)

// result formats the outcome of m on input in a compact form used by tests:
// "ok@pos: value" or "error@pos: line:col: message".
func result[T any](m comb.Matcher[T], input string) string {
	return comb.Run(m, comb.Initial(input)).String()
}

type testData struct {
	name  string
	input string
	want  string
}

func runTests[T any](t *testing.T, m comb.Matcher[T], td []testData) {
	t.Helper()
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			if got := result(m, d.input); got != d.want {
				t.Errorf("\nGot     : %s\nExpected: %s", got, d.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	runTests(t, comb.Text("abc"), []testData{
		{"match", "abcdef", "ok@3: abc"},
		{"exact", "abc", "ok@3: abc"},
		{"case", "ABC", `error@0: 1:1: expected "abc", found "ABC"`},
		{"short", "ab", `error@0: 1:1: expected "abc", found "ab"`},
		{"eof", "", `error@0: 1:1: expected "abc", found end of input`},
		{"preview", strings.Repeat("x", 30), `error@0: 1:1: expected "abc", found "xxxxxxxxxxxxxxxxxxxx"…`},
	})
	runTests(t, comb.Text(""), []testData{
		{"empty", "abc", "ok@0: "},
		{"empty_eof", "", "ok@0: "},
	})
}

func TestChar(t *testing.T) {
	runTests(t, comb.Char(), []testData{
		{"ascii", "ab", "ok@1: 97"},
		{"utf8", "éa", "ok@2: 233"},
		{"invalid", "\xffa", "ok@1: 65533"},
		{"eof", "", "error@0: 1:1: unexpected end of input"},
	})
}

func TestSatisfy(t *testing.T) {
	runTests(t, comb.Satisfy("letter", unicode.IsLetter), []testData{
		{"letter", "é1", "ok@2: 233"},
		{"digit", "1é", `error@0: 1:1: expected letter, found "1é"`},
		{"eof", "", "error@0: 1:1: expected letter, found end of input"},
	})
	runTests(t, comb.OneOf("+-"), []testData{
		{"plus", "+", "ok@1: 43"},
		{"other", "*", `error@0: 1:1: expected one of "+-", found "*"`},
	})
	runTests(t, comb.NoneOf(`"\`), []testData{
		{"other", "a", "ok@1: 97"},
		{"quote", `"`, `error@0: 1:1: expected none of "\"\\", found "\""`},
		{"eof", "", `error@0: 1:1: expected none of "\"\\", found end of input`},
	})
}

func TestEOF(t *testing.T) {
	runTests(t, comb.EOF(), []testData{
		{"empty", "", "ok@0: {}"},
		{"not_empty", "a", `error@0: 1:1: expected end of input, found "a"`},
	})
	runTests(t, comb.Right(comb.Text("a"), comb.EOF()), []testData{
		{"after", "a", "ok@1: {}"},
		{"trailing", "ab", `error@0: 1:2: expected end of input, found "b"`},
	})
}

func TestRegex(t *testing.T) {
	s := comb.Initial("key=42;")
	r := comb.Regex(`^(\w+)=(\d+)?(x)?`)(s)
	if !r.OK() || r.Pos() != 6 {
		t.Fatalf("got %v", r)
	}
	if want := (comb.Groups{"key=42", "key", "42", ""}); !reflect.DeepEqual(r.Value(), want) {
		t.Errorf("expected %q, got %q", want, r.Value())
	}

	// matching starts at the current position, not at the start of the source
	r2 := comb.Regex(`\A;`)(comb.Ok(s, 6, comb.Unit{}))
	if !r2.OK() || r2.Pos() != 7 {
		t.Fatalf("got %v", r2)
	}

	runTests(t, comb.Regex(`^\d+`), []testData{
		{"match", "123abc", "ok@3: [123]"},
		{"no_match", "abc123", `error@0: 1:1: expected match for /^\d+/, found "abc123"`},
		{"eof", "", `error@0: 1:1: expected match for /^\d+/, found end of input`},
	})
}

func TestRegex_panics(t *testing.T) {
	for _, p := range []string{`\d+`, `(?m)^\d+`, `a|^b`, `^(`} {
		t.Run(p, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Regex(%q): expected panic", p)
				}
			}()
			comb.Regex(p)
		})
	}
	for _, p := range []string{`^\d+`, `\A\d+`, `^(a|b)`, `(?i)^abc`} {
		comb.Regex(p)
	}
}

func TestLiterals(t *testing.T) {
	runTests(t, comb.Literals("<", "<=", "<<", "="), []testData{
		{"longest", "<=3", "ok@2: <="},
		{"shift", "<<=", "ok@2: <<"},
		{"short", "<3", "ok@1: <"},
		{"eof", "<", "ok@1: <"},
		{"single", "=<", "ok@1: ="},
		{"none", ">", `error@0: 1:1: expected one of "<", "<<", "<=", "=", found ">"`},
	})
	runTests(t, comb.Literals("été", "étant"), []testData{
		{"utf8", "étantx", "ok@6: étant"},
		{"prefix", "ét", `error@0: 1:1: expected one of "étant", "été", found "ét"`},
	})
}

func TestLiterals_panics(t *testing.T) {
	for _, words := range [][]string{nil, {"a", ""}, {"a", "b", "a"}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Literals(%q): expected panic", words)
				}
			}()
			comb.Literals(words...)
		}()
	}
}
