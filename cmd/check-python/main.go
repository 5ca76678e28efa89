// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"go.astrophena.name/githooks/checks"
	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/pycheck"
)

func main() { cli.Main(new(app)) }

var errViolationsFound = errors.New("violations found")

type app struct {
	disable string
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.disable, "disable", "", "Comma-separated `list` of checks to disable (available: "+strings.Join(pycheck.Rules, ", ")+").")
	fs.BoolVar(&a.verbose, "verbose", false, "Report progress for each checked file.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) == 0 {
		return fmt.Errorf("%w: at least one file path is required", cli.ErrInvalidArgs)
	}

	var disabled []string
	if a.disable != "" {
		disabled = strings.Split(a.disable, ",")
	}
	for _, d := range disabled {
		if !slices.Contains(pycheck.Rules, strings.TrimSpace(d)) {
			return fmt.Errorf("%w: unknown check %q", cli.ErrInvalidArgs, strings.TrimSpace(d))
		}
	}

	checker := pycheck.New(disabled)
	width := cli.TerminalWidth(env.Stderr)

	var total int
	for i, path := range env.Args {
		if a.verbose {
			env.Logf("%s", checks.Progress(i+1, len(env.Args), path, width))
		}
		violations, err := checker.Check(path)
		if err != nil {
			return err
		}
		for _, v := range violations {
			fmt.Fprintln(env.Stdout, v)
		}
		total += len(violations)
	}

	if total == 0 {
		return nil
	}
	return errViolationsFound
}
