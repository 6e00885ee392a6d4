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

package lit_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/db47h/comb"
	"github.com/db47h/comb/lit"
)

type testData struct {
	name string
	in   string
	res  string
}

func runTests[T any](t *testing.T, td []testData, m comb.Matcher[T]) {
	t.Helper()
	for _, sample := range td {
		t.Run(sample.name, func(t *testing.T) {
			got := comb.Run(m, comb.Initial(sample.in)).String()
			if got != sample.res {
				t.Errorf("\nGot     : %v\nExpected: %v", got, sample.res)
			}
		})
	}
}

func Test_QuotedString(t *testing.T) {
	var td = []testData{
		{"str1", `"abcd\"\\\a\b\f\n\r\v\t"`, `ok@24: "abcd\"\\\a\b\f\n\r\v\t"`},
		{"str2", `"\xcC"`, `ok@6: "\xcc"`},
		{"str3", `"\U0010FFFF \u2224"`, `ok@19: "\U0010ffff ∤"`},
		{"str4", `"a\UFFFFFFFF"`, `error@0: 1:12: escape sequence is invalid Unicode code point`},
		{"str4b", `"\ud800 "`, `error@0: 1:7: escape sequence is invalid Unicode code point`},
		{"str5", `"a`, `error@0: 1:1: unterminated string`},
		{"str6", `"\x2X"`, `error@0: 1:5: non-hex character in escape sequence: U+0058 'X'`},
		{"str7", `"\277" x`, `ok@6: "\xbf"`},
		{"str7b", `"\28"`, `error@0: 1:4: non-octal character in escape sequence: U+0038 '8'`},
		{"str7c", `"\777"`, `error@0: 1:5: octal escape value 511 > 255`},
		{"str8", `"\w"`, `error@0: 1:3: unknown escape sequence`},
		{"str9", "\"a\n", `error@0: 1:1: unterminated string`},
		{"str10", "\"a\\\n", `error@0: 1:1: unterminated string`},
		{"str11", "\"\\21\n", `error@0: 1:1: unterminated string`},
		{"utf8", `"été"`, `ok@7: "été"`},
		{"not_a_string", `abc`, `error@0: 1:1: expected "\"", found "abc"`},
	}
	runTests(t, td, comb.Map(lit.QuotedString('"'), strconv.Quote))

	td = []testData{
		{"single", `'it\'s' `, `ok@7: "it's"`},
		{"double", `'say "hi"'`, `ok@10: "say \"hi\""`},
	}
	runTests(t, td, comb.Map(lit.QuotedString('\''), strconv.Quote))
}

func Test_QuotedChar(t *testing.T) {
	var td = []testData{
		{"char1", `'a' ''`, `ok@3: 'a'`},
		{"char1b", `''`, `error@0: 1:2: empty character literal or unescaped ' in character literal`},
		{"char2", `'aa'`, `error@0: 1:3: invalid character literal (more than 1 character)`},
		{"char3", `'\x41'`, `ok@6: 'A'`},
		{"char3b", `'é'`, `ok@4: 'é'`},
		{"char4", `'\z'`, `error@0: 1:3: unknown escape sequence`},
		{"char4b", "'\n", `error@0: 1:1: unterminated character literal`},
		{"char4c", "'a", `error@0: 1:1: unterminated character literal`},
		{"char5", `'\18`, `error@0: 1:4: non-octal character in escape sequence: U+0038 '8'`},
		{"char6", `'\''`, `ok@4: '\''`},
	}
	runTests(t, td, comb.Map(lit.QuotedChar(), strconv.QuoteRune))
}

func Test_Number(t *testing.T) {
	var td = []testData{
		{"int10", "12 0 4", "ok@2: 12"},
		{"zero", "0", "ok@1: 0"},
		{"int2", "0b011", "ok@5: 3"},
		{"int2b", "0b", "error@0: 1:3: malformed base 2 literal"},
		{"int2c", "0b012", "error@0: 1:5: invalid character U+0032 '2' in base 2 literal"},
		{"int16", "0x0f0", "ok@5: 240"},
		{"int16b", "0X101", "ok@5: 257"},
		{"int16c", "0x", "error@0: 1:3: malformed base 16 literal"},
		{"int8", "017", "ok@3: 15"},
		{"int8b", "08", "error@0: 1:2: invalid character U+0038 '8' in base 8 literal"},
		{`float1`, `.23`, "ok@3: 0.23"},
		{`float1b`, `1.23`, "ok@4: 1.23"},
		{`float2`, `10e3`, `ok@4: 10000`},
		{`float2b`, `10.e1`, `ok@5: 100`},
		{`float3`, `10e-2`, `ok@5: 0.1`},
		{`float4`, `a.b`, `error@0: 1:1: expected number, found "a.b"`},
		{`float5`, `.b`, `error@0: 1:1: expected number, found ".b"`},
		{`float6`, `13.23e2`, `ok@7: 1323`},
		{`float7`, `13.23E+2`, `ok@8: 1323`},
		{`float8`, `13.23e-2`, `ok@8: 0.1323`},
		{`float9`, `.23e3`, `ok@5: 230`},
		{`float10`, `0777:123`, `ok@4: 511`},
		{`float11`, `1eB`, `error@0: 1:3: malformed floating-point literal exponent`},
		{`float11b`, `1ee`, `error@0: 1:3: malformed floating-point literal exponent`},
		{`float12`, `0238:`, `error@0: 1:4: invalid character U+0038 '8' in base 8 literal`},
		{`float13`, `0238.5`, `ok@6: 238.5`},
		{`float14`, `7e99999999999999999999`, `error@0: 1:2: floating-point literal exponent out of range`},
	}
	runTests(t, td, lit.Number('.'))

	td = []testData{
		{"comma", "3,14", "ok@4: 3.14"},
		{"dot", "3.14", "ok@1: 3"},
	}
	runTests(t, td, lit.Number(','))
}

func Test_Int(t *testing.T) {
	var td = []testData{
		{"int", "42", "ok@2: 42"},
		{"big", "123456789012345678901234567890", "ok@30: 123456789012345678901234567890"},
		{"hex", "0xff", "ok@4: 255"},
		{"frac", "12.5", "ok@2: 12"},
		{"exp", "12e5", "ok@2: 12"},
		{"octal", "010", "ok@3: 8"},
		{"sep", ".5", `error@0: 1:1: expected integer, found ".5"`},
	}
	runTests(t, td, lit.Int())
}

func Test_FloatRat(t *testing.T) {
	var td = []testData{
		{"int", "42", "ok@2: 42"},
		{"float", "0.5e1", "ok@5: 5"},
		{"huge_exp", "1e2000000", "ok@9: 1e+2000000"},
		{"exp_overflow", "1e99999999999999999999", "error@0: 1:2: floating-point literal exponent out of range"},
		{"exp_overflow_frac", "2.5E-99999999999999999999", "error@0: 1:4: floating-point literal exponent out of range"},
	}
	runTests(t, td, lit.Float('.'))

	td = []testData{
		{"decimal", "0.1", "ok@3: 1/10"},
		{"hex", "0x10", "ok@4: 16/1"},
		{"exp", "25e-2", "ok@5: 1/4"},
		{"exp_range", "1e2000000", "error@0: 1:2: floating-point literal exponent out of range"},
		{"exp_overflow", "1e99999999999999999999", "error@0: 1:2: floating-point literal exponent out of range"},
	}
	runTests(t, td, lit.Rat('.'))
}

func ExampleQuotedString() {
	m := comb.SepBy(lit.QuotedString('"'), comb.Regex(`^\s*,\s*`))
	v, err := comb.ParseAll(m, `"a\tb", "\u00e9t\u00e9"`)
	fmt.Printf("%q %v\n", v, err)

	_, err = comb.Parse(lit.QuotedString('"'), `"ok\q"`)
	fmt.Println(err)

	// Output:
	// ["a\tb" "été"] <nil>
	// 1:5: unknown escape sequence
}
