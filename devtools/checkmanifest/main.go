// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/devtools/internal"
	"go.astrophena.name/githooks/hookdef"
)

func main() { cli.Main(cli.AppFunc(realMain)) }

func realMain(ctx context.Context) error {
	internal.EnsureRoot()

	env := cli.GetEnv(ctx)

	hooks, err := hookdef.Load(".pre-commit-hooks.yaml")
	if err != nil {
		return err
	}

	entries, err := os.ReadDir("cmd")
	if err != nil {
		return err
	}
	cmds := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			cmds[e.Name()] = true
		}
	}

	var problems []string
	used := make(map[string]bool)
	for _, h := range hooks {
		if !cmds[h.Entry] {
			problems = append(problems, fmt.Sprintf("hook %q: no cmd/%s directory for its entry", h.ID, h.Entry))
			continue
		}
		used[h.Entry] = true
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "\n"))
	}

	var unlisted []string
	for name := range cmds {
		if !used[name] {
			unlisted = append(unlisted, name)
		}
	}
	slices.Sort(unlisted)
	for _, name := range unlisted {
		env.Logf("Notice: cmd/%s is not listed in .pre-commit-hooks.yaml.", name)
	}
	return nil
}
