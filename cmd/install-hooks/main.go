// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/gitx"
	"go.astrophena.name/githooks/hookdef"
	"go.astrophena.name/githooks/logger"
)

func main() { cli.Main(new(app)) }

const marker = "# Generated by install-hooks. Do not edit."

type app struct {
	manifest string
	force    bool
	verbose  bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.manifest, "manifest", ".pre-commit-hooks.yaml", "Read hook definitions from this `file`.")
	fs.BoolVar(&a.force, "force", false, "Overwrite hook scripts not generated by this tool.")
	fs.BoolVar(&a.verbose, "verbose", false, "Enable verbose logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	ctx = logger.Setup(ctx, env.Stderr, a.verbose)

	repo, err := gitx.Open(".")
	if err != nil {
		return err
	}

	manifestPath := a.manifest
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(repo.Root(), manifestPath)
	}
	hooks, err := hookdef.Load(manifestPath)
	if err != nil {
		return err
	}

	hooksDir, err := repo.HooksDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return err
	}

	byStage := make(map[string][]hookdef.Hook)
	var stages []string
	for _, h := range hooks {
		for _, stage := range h.EffectiveStages() {
			// Manual stage hooks are invoked by hand, git never runs them.
			if stage == "manual" {
				logger.Debug(ctx, "skipping manual stage hook", slog.String("hook", h.ID))
				continue
			}
			if _, ok := byStage[stage]; !ok {
				stages = append(stages, stage)
			}
			byStage[stage] = append(byStage[stage], h)
		}
	}
	slices.Sort(stages)

	for _, stage := range stages {
		script, skipped := stageScript(stage, byStage[stage])
		for _, h := range skipped {
			env.Logf("Skipping hook %s at stage %s: it needs file names, which only the pre-commit stage provides.", h.ID, stage)
		}
		if script == "" {
			continue
		}
		path := filepath.Join(hooksDir, stage)
		if err := writeHook(path, script, a.force); err != nil {
			return err
		}
		logger.Debug(ctx, "wrote hook script", slog.String("path", path))
		fmt.Fprintf(env.Stdout, "Installed %s\n", path)
	}
	return nil
}

// stageScript renders the hook script for a stage. Hooks that want file
// names outside the pre-commit stage are returned in skipped. An empty
// script means there is nothing to install.
func stageScript(stage string, hooks []hookdef.Hook) (script string, skipped []hookdef.Hook) {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	sb.WriteString(marker + "\n")
	sb.WriteString("set -e\n")

	var commands int
	for _, h := range hooks {
		if h.WantsFilenames() && stage != "pre-commit" {
			skipped = append(skipped, h)
			continue
		}
		sb.WriteString("\n# " + h.ID + "\n")
		sb.WriteString(hookCommand(h) + "\n")
		commands++
	}
	if commands == 0 {
		return "", skipped
	}
	return sb.String(), skipped
}

// hookCommand renders the shell command running a single hook. Hooks that
// want file names get the staged ones, filtered by the files pattern.
func hookCommand(h hookdef.Hook) string {
	cmd := shellQuote(h.Entry)
	for _, arg := range h.Args {
		cmd += " " + shellQuote(arg)
	}
	if !h.WantsFilenames() {
		return cmd
	}
	pipeline := "git diff --cached --name-only --diff-filter=ACM"
	if h.Files != "" {
		pipeline += " | grep -E " + shellQuote(h.Files)
	}
	return pipeline + " | xargs -r " + cmd
}

func writeHook(path, script string, force bool) error {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	case !force && !strings.Contains(string(existing), marker):
		return fmt.Errorf("%s already exists and was not generated by install-hooks; use -force to overwrite", path)
	}
	return os.WriteFile(path, []byte(script), 0o755)
}

var safeArg = regexp.MustCompile(`^[A-Za-z0-9._/:=@%,+-]+$`)

func shellQuote(s string) string {
	if s != "" && safeArg.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
