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

// Command comb evaluates arithmetic expressions and parses JSON documents
// with the grammars built on the comb package.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/db47h/comb"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status. Parse
// errors are rendered with the offending line and a caret.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var e *comb.Error
		if errors.As(err, &e) {
			e.Report(stderr)
		} else {
			fmt.Fprintln(stderr, "comb:", err)
		}
		return 1
	}
	return 0
}

// globalFlags holds the persistent flags shared by all sub-commands.
type globalFlags struct {
	logLevel string
	trace    bool
}

// logger returns a logger writing to the command's error output.
func (g *globalFlags) logger(cmd *cobra.Command) hclog.Logger {
	level := hclog.LevelFromString(g.logLevel)
	if g.trace {
		level = hclog.Trace
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "comb",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	})
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:           "comb",
		Short:         "Parse and evaluate text with parser combinators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if hclog.LevelFromString(g.logLevel) == hclog.NoLevel {
				return fmt.Errorf("invalid log level %q", g.logLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "off", "log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&g.trace, "trace", false, "trace grammar rules, same as --log-level=trace")

	rootCmd.AddCommand(newCalcCmd(&g))
	rootCmd.AddCommand(newJSONCmd(&g))

	return rootCmd
}
