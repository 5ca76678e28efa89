// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.astrophena.name/githooks/changelog"
	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/conventional"
	"go.astrophena.name/githooks/gitx"
	"go.astrophena.name/githooks/logger"
	"go.astrophena.name/githooks/verfile"

	"github.com/Masterminds/semver/v3"
)

func main() { cli.Main(new(app)) }

type app struct {
	config    string
	changelog string
	skipTypes string
	noStage   bool
	verbose   bool

	now func() time.Time // swapped in tests
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.config, "config", "pyproject.toml", "Read and update the version in this `file`.")
	fs.StringVar(&a.changelog, "changelog", "CHANGELOG.md", "Prepend release entries to this `file`.")
	fs.StringVar(&a.skipTypes, "skip-types", "", "Comma-separated `list` of commit types that don't trigger an update.")
	fs.BoolVar(&a.noStage, "no-stage", false, "Don't stage the updated files with git.")
	fs.BoolVar(&a.verbose, "verbose", false, "Enable verbose logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	ctx = logger.Setup(ctx, env.Stderr, a.verbose)
	if a.now == nil {
		a.now = time.Now
	}

	repo, err := gitx.Open(".")
	if err != nil {
		return err
	}

	msg, err := repo.CommitEditMessage()
	if err != nil {
		return err
	}

	c, ok := conventional.Parse(msg)
	if !ok {
		fmt.Fprintln(env.Stdout, "Commit message is not a conventional commit, skipping.")
		return nil
	}

	for typ := range strings.SplitSeq(a.skipTypes, ",") {
		if strings.TrimSpace(typ) == c.Type {
			fmt.Fprintf(env.Stdout, "Commit type %q does not require a changelog update.\n", c.Type)
			return nil
		}
	}

	bump := c.Bump()
	logger.Debug(ctx, "parsed commit message",
		slog.String("type", c.Type),
		slog.Bool("breaking", c.Breaking),
		slog.String("bump", bump.String()),
	)

	configPath := a.resolve(repo, a.config)
	changelogPath := a.resolve(repo, a.changelog)

	cur, err := verfile.Read(configPath)
	if err != nil {
		return err
	}
	ver, err := semver.NewVersion(cur)
	if err != nil {
		return fmt.Errorf("%s: invalid version %q: %w", configPath, cur, err)
	}
	next := bump.Apply(*ver)

	fmt.Fprintf(env.Stdout, "Version: %s -> %s\n", cur, next)

	if err := verfile.Rewrite(configPath, cur, next.String()); err != nil {
		return err
	}
	logger.Debug(ctx, "rewrote version field", slog.String("path", configPath))

	entry := changelog.Entry{
		Version:     next.String(),
		Date:        a.now(),
		Section:     c.Section(),
		Description: c.Description,
		Breaking:    c.Breaking,
	}
	if err := changelog.WriteEntry(changelogPath, entry); err != nil {
		return err
	}
	logger.Debug(ctx, "updated changelog", slog.String("path", changelogPath))

	if !a.noStage {
		if err := repo.Stage(changelogPath, configPath); err != nil {
			return err
		}
		logger.Debug(ctx, "staged files",
			slog.String("changelog", changelogPath),
			slog.String("config", configPath),
		)
	}

	fmt.Fprintf(env.Stdout, "Successfully updated to version %s\n", next)
	return nil
}

// resolve interprets relative paths against the repository root, so the hook
// works anywhere inside the repository.
func (a *app) resolve(repo *gitx.Repo, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repo.Root(), path)
}
