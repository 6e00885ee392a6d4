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

package lit

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/db47h/comb"
)

const (
	errMalformedInt      = "malformed base %d literal"
	errInvalidNumChar    = "invalid character %#U in base %d literal"
	errMalformedFloat    = "malformed floating-point literal"
	errMalformedExponent = "malformed floating-point literal exponent"
	errExponentRange     = "floating-point literal exponent out of range"
)

// number is a scanned numeric literal. For integers, text holds the digits
// without prefix. exp is the offset of the exponent marker, if any.
type number struct {
	text  string
	base  int
	float bool
	exp   int
}

// A numberScanner scans numbers.
type numberScanner struct {
	reader
	buf        []byte
	decimalSep rune // decimal separator
	intOnly    bool // stop at decimal separators and exponents
}

// scanError is a malformed literal at offset pos.
type scanError struct {
	pos int
	msg string
}

func (sc *numberScanner) errorf(pos int, format string, args ...any) (number, *scanError) {
	return number{}, &scanError{pos: pos, msg: fmt.Sprintf(format, args...)}
}

// scan is the main entry point for numbers. On success, the number ends at
// sc.cur.
func (sc *numberScanner) scan() (number, *scanError) {
	switch r := sc.next(); r {
	case '0':
		switch sc.peek() {
		case 'x', 'X':
			sc.next()
			sc.next()
			return sc.integer(16)
		case 'b', 'B':
			sc.next()
			sc.next()
			return sc.integer(2)
		}
		return sc.integerOrFloat()
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return sc.integerOrFloat()
	case sc.decimalSep:
		if !sc.intOnly {
			return sc.integerOrFloat()
		}
	}
	return sc.errorf(sc.cur, "invalid character %#U in numeric literal", sc.c)
}

// integer scans an integer in the given base, prefix excluded.
func (sc *numberScanner) integer(base int) (number, *scanError) {
	sc.scanDigits(base)
	// for bases < 10, consider digits >= base following the constant to be an error
	if r := sc.c; r >= '0' && r <= '9' {
		return sc.errorf(sc.cur, errInvalidNumChar, r, base)
	}
	if len(sc.buf) == 0 {
		return sc.errorf(sc.cur, errMalformedInt, base)
	}
	return number{text: string(sc.buf), base: base}, nil
}

// base 8 integer, base 10 integer, base 10 integer with exponent, or float.
// i.e. anything of the form [0-9]*\.[0-9]*
func (sc *numberScanner) integerOrFloat() (number, *scanError) {
	var (
		r8 rune // keep track of end-of base 8 literal
		p8 = -1
	)
	if sc.c == '0' {
		sc.scanDigits(8)
		r8 = sc.c
		p8 = sc.cur
	}
	// keep scanning as a base 10 integer, check later
	sc.scanDigits(10)

	if !sc.intOnly {
		switch sc.c {
		case sc.decimalSep:
			return sc.fractional()
		case 'e', 'E':
			return sc.exponent()
		}
	}

	if sc.buf[0] == '0' {
		if p8 != sc.cur {
			return sc.errorf(p8, errInvalidNumChar, r8, 8)
		}
		return number{text: string(sc.buf), base: 8}, nil
	}
	return number{text: string(sc.buf), base: 10}, nil
}

func (sc *numberScanner) fractional() (number, *scanError) {
	sc.buf = append(sc.buf, '.')
	sc.next()
	sc.scanDigits(10)
	if len(sc.buf) == 1 {
		return sc.errorf(sc.cur, errMalformedFloat)
	}
	if sc.c == 'e' || sc.c == 'E' {
		return sc.exponent()
	}
	return number{text: string(sc.buf), base: 10, float: true}, nil
}

func (sc *numberScanner) exponent() (number, *scanError) {
	ep := sc.cur
	sc.buf = append(sc.buf, 'e')
	if r := sc.next(); r == '-' || r == '+' {
		sc.buf = append(sc.buf, byte(r))
		sc.next()
	}
	bl := len(sc.buf)
	sc.scanDigits(10)
	if len(sc.buf) > bl {
		return number{text: string(sc.buf), base: 10, float: true, exp: ep}, nil
	}
	// no digits following 'e'
	return sc.errorf(sc.cur, errMalformedExponent)
}

// scanDigits appends the current rune and the following ones to buf as long as
// they are valid digits in the given base.
func (sc *numberScanner) scanDigits(base int) {
	r := sc.c
	for {
		var rl rune
		switch {
		case r >= 'a':
			rl = r - 'a' + 10
		case r >= 'A':
			rl = r - 'A' + 10
		default:
			rl = r - '0'
		}
		if rl < 0 || int(rl) >= base {
			return
		}
		sc.buf = append(sc.buf, byte(r))
		r = sc.next()
	}
}

// numberOf returns a matcher for numeric literals that converts scanned
// numbers with conv. conv returns false if the value of the number cannot be
// represented, in which case the exponent is reported as out of range.
func numberOf[T any](name string, decimalSep rune, intOnly bool, conv func(number) (T, bool)) comb.Matcher[T] {
	lead := `^[0-9]`
	if !intOnly {
		lead = `^(?:[0-9]|` + regexp.QuoteMeta(string(decimalSep)) + `[0-9])`
	}
	check := comb.Lookahead(comb.Label(name, comb.Regex(lead)))
	return comb.Right(check, func(s comb.State[comb.Unit]) comb.State[T] {
		sc := numberScanner{
			reader:     reader{text: s.Rest()},
			buf:        make([]byte, 0, 64),
			decimalSep: decimalSep,
			intOnly:    intOnly,
		}
		n, err := sc.scan()
		if err != nil {
			return comb.FailAt[T](s, s.Pos()+err.pos, err.msg)
		}
		v, ok := conv(n)
		if !ok {
			return comb.FailAt[T](s, s.Pos()+n.exp, errExponentRange)
		}
		return comb.Ok(s, s.Pos()+sc.cur, v)
	})
}

// Int returns a matcher for integer literals.
//
// The number base is determined by the number prefix. A prefix of “0x” or
// “0X” selects base 16; a “0b” or “0B” prefix selects base 2 and the “0”
// prefix selects base 8. Otherwise the selected base is 10. Digits that are
// not valid in the selected base are reported as errors: “08” does not match
// “0”.
//
// Int stops at decimal separators: it matches “12” in “12.5”.
func Int() comb.Matcher[*big.Int] {
	return numberOf("integer", 0, true, toInt)
}

// Float returns a matcher for integer or floating-point literals. The value is
// always a *big.Float.
//
// Floating-point literals are in base 10, with an optional fractional part
// following decimalSep and an optional exponent introduced by 'e' or 'E'.
// Integer literals follow the same rules as for Int.
func Float(decimalSep rune) comb.Matcher[*big.Float] {
	return numberOf("number", decimalSep, false, toFloat)
}

// Rat is like Float, but converts literals to exact rational numbers.
//
// Exponents are limited to the range accepted by big.Rat.SetString.
func Rat(decimalSep rune) comb.Matcher[*big.Rat] {
	return numberOf("number", decimalSep, false, func(n number) (*big.Rat, bool) {
		if !n.float {
			i, ok := toInt(n)
			if !ok {
				return nil, false
			}
			return new(big.Rat).SetInt(i), true
		}
		return new(big.Rat).SetString(n.text)
	})
}

// Number returns a matcher for integer or floating-point literals. The value
// is a *big.Int for integers and a *big.Float for floating-point literals.
func Number(decimalSep rune) comb.Matcher[fmt.Stringer] {
	return numberOf("number", decimalSep, false, func(n number) (fmt.Stringer, bool) {
		if !n.float {
			return toInt(n)
		}
		return toFloat(n)
	})
}

func toInt(n number) (*big.Int, bool) {
	return new(big.Int).SetString(n.text, n.base)
}

func toFloat(n number) (*big.Float, bool) {
	if !n.float {
		i, ok := toInt(n)
		if !ok {
			return nil, false
		}
		return new(big.Float).SetInt(i), true
	}
	z, ok := new(big.Float).SetString(n.text)
	return z, ok
}
