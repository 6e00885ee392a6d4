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
	stdjson "encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/db47h/comb"
	"github.com/db47h/comb/grammar/json"
	"github.com/spf13/cobra"
)

func newJSONCmd(g *globalFlags) *cobra.Command {
	var indent string
	var check bool

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document and print it re-indented",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := g.logger(cmd)

			name := "<stdin>"
			var data []byte
			var err error
			if len(args) == 1 {
				name = args[0]
				data, err = os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			log.Debug("parsing", "name", name, "size", len(data))
			v, err := json.Parse(string(data), comb.WithName(name), comb.WithLogger(log))
			if err != nil {
				return err
			}
			if check {
				return nil
			}

			out, err := stdjson.MarshalIndent(v, "", indent)
			if err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "  ", "indentation string")
	cmd.Flags().BoolVar(&check, "check", false, "only check the syntax, do not print anything")

	return cmd
}
