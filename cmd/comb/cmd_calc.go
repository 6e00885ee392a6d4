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

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/db47h/comb"
	"github.com/db47h/comb/grammar/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd(g *globalFlags) *cobra.Command {
	var digits int

	cmd := &cobra.Command{
		Use:   "calc [expr]",
		Short: "Evaluate arithmetic expressions",
		Long: `Evaluate an arithmetic expression on exact rational numbers.

Without argument, each non-blank line of standard input is evaluated in turn.
Evaluation stops at the first invalid expression.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := g.logger(cmd)
			asFloat := cmd.Flags().Changed("float")

			eval := func(expr string) error {
				log.Debug("evaluating", "expr", expr)
				v, err := calc.Eval(expr, comb.WithLogger(log))
				if err != nil {
					return err
				}
				if asFloat {
					fmt.Fprintln(cmd.OutOrStdout(), v.FloatString(digits))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), v.RatString())
				}
				return nil
			}

			if len(args) == 1 {
				return eval(args[0])
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if strings.TrimSpace(sc.Text()) == "" {
					continue
				}
				if err := eval(sc.Text()); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&digits, "float", 0, "print results as decimal numbers with `N` digits after the decimal point")

	return cmd
}
