// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"go.astrophena.name/githooks/checks"
	"go.astrophena.name/githooks/cli"
)

func main() { cli.Main(new(app)) }

var errChecksFailed = errors.New("some files failed checks")

type app struct {
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.verbose, "verbose", false, "Report progress for each checked file.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) == 0 {
		return fmt.Errorf("%w: at least one file path is required", cli.ErrInvalidArgs)
	}

	width := cli.TerminalWidth(env.Stderr)

	var problems []checks.Problem
	for i, path := range env.Args {
		if a.verbose {
			env.Logf("%s", checks.Progress(i+1, len(env.Args), path, width))
		}
		p, err := checks.File(path)
		if err != nil {
			return err
		}
		if p != nil {
			problems = append(problems, *p)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	fmt.Fprint(env.Stdout, checks.Report(problems))
	return errChecksFailed
}
