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

	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/gitx"
	"go.astrophena.name/githooks/logger"
	"go.astrophena.name/githooks/verfile"

	gogit "github.com/go-git/go-git/v5"
)

func main() { cli.Main(new(app)) }

const defaultMessage = "Release {tag}\n\nAuto-generated tag from changelog-version hook."

type app struct {
	config         string
	tagPrefix      string
	message        string
	noSkipIfExists bool
	verbose        bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.config, "config", "pyproject.toml", "Read the version from this `file`.")
	fs.StringVar(&a.tagPrefix, "tag-prefix", "v", "Tag name `prefix`.")
	fs.StringVar(&a.message, "message", defaultMessage, "Tag `message`; {version} and {tag} are expanded.")
	fs.BoolVar(&a.noSkipIfExists, "no-skip-if-exists", false, "Fail if the tag already exists instead of skipping.")
	fs.BoolVar(&a.verbose, "verbose", false, "Enable verbose logging.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	ctx = logger.Setup(ctx, env.Stderr, a.verbose)

	repo, err := gitx.Open(".")
	if err != nil {
		return err
	}

	configPath := a.config
	if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(repo.Root(), configPath)
	}

	version, err := verfile.Read(configPath)
	if err != nil {
		return err
	}
	tag := a.tagPrefix + version

	exists, err := repo.TagExists(tag)
	if err != nil {
		return err
	}
	if exists {
		if a.noSkipIfExists {
			return fmt.Errorf("tag %q: %w", tag, gogit.ErrTagExists)
		}
		logger.Debug(ctx, "tag already exists, skipping", slog.String("tag", tag))
		return nil
	}

	head, err := repo.Head()
	if err != nil {
		return err
	}

	message := strings.NewReplacer("{version}", version, "{tag}", tag).Replace(a.message)
	if err := repo.CreateTag(tag, message); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Successfully created tag: %s\n", tag)
	fmt.Fprintf(env.Stdout, "Tag points to commit: %s\n", head)
	return nil
}
