// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gitx wraps the git operations used by the hooks: repository
// discovery, commit message lookup, staging and tagging.
package gitx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is an open git repository with a worktree.
type Repo struct {
	repo *gogit.Repository
	wt   *gogit.Worktree
	root string
}

// Open opens the repository containing dir, searching parent directories for
// the .git directory the same way git itself does.
func Open(dir string) (*Repo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository in %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &Repo{
		repo: repo,
		wt:   wt,
		root: wt.Filesystem.Root(),
	}, nil
}

// Root returns the absolute path of the repository root.
func (r *Repo) Root() string { return r.root }

// Head returns the hash of the commit HEAD points to.
func (r *Repo) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	return ref.Hash().String(), nil
}

// CommitEditMessage reads the message of the in-progress commit from
// .git/COMMIT_EDITMSG, with surrounding whitespace trimmed.
func (r *Repo) CommitEditMessage() (string, error) {
	dir, err := gitDir(r.root)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, "COMMIT_EDITMSG"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// HooksDir returns the directory git looks up hooks in.
func (r *Repo) HooksDir() (string, error) {
	dir, err := gitDir(r.root)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hooks"), nil
}

// gitDir resolves the git directory of the repository rooted at root,
// following the gitdir pointer if .git is a file, as in linked worktrees.
func gitDir(root string) (string, error) {
	path := filepath.Join(root, ".git")
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return path, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	dir, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir: ")
	if !ok {
		return "", fmt.Errorf("unexpected format of %s", path)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}

// TagExists reports whether the repository has a tag with the given name.
func (r *Repo) TagExists(name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if err == nil {
		return true, nil
	}
	if err == gogit.ErrTagNotFound {
		return false, nil
	}
	return false, err
}

// CreateTag creates an annotated tag pointing at HEAD. The tagger identity
// comes from the git configuration, with a fallback when none is set.
func (r *Repo) CreateTag(name, message string) error {
	ref, err := r.repo.Head()
	if err != nil {
		return err
	}
	_, err = r.repo.CreateTag(name, ref.Hash(), &gogit.CreateTagOptions{
		Message: message,
		Tagger:  r.tagger(),
	})
	return err
}

func (r *Repo) tagger() *object.Signature {
	sig := &object.Signature{
		Name:  "auto-tag",
		Email: "auto-tag@localhost",
		When:  time.Now(),
	}
	cfg, err := r.repo.ConfigScoped(config.SystemScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

// Stage adds the given files to the index. Paths can be absolute or relative
// to the current directory.
func (r *Repo) Stage(paths ...string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(r.root, abs)
		if err != nil {
			return err
		}
		if _, err := r.wt.Add(filepath.ToSlash(rel)); err != nil {
			return fmt.Errorf("staging %s: %w", p, err)
		}
	}
	return nil
}
