// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Changelog-version bumps the project version and updates the changelog when
a commit is made.

It is designed to run as a commit-msg hook. It reads the message of the
commit in progress from .git/COMMIT_EDITMSG and parses it as a
conventional commit. Messages that don't follow the format are skipped
without an error, so ordinary commits are unaffected.

The commit determines the version bump: breaking changes (a "!" after the
type or a "BREAKING CHANGE" note in the message) bump the major version,
feat bumps the minor version and every other type bumps the patch version.

The version field in pyproject.toml, or the file given with -config, is
rewritten in place, preserving the rest of the file byte-for-byte. A new
release entry is prepended to CHANGELOG.md, or the file given with
-changelog, which is created with a Keep a Changelog preamble if it
doesn't exist. Both files are then staged with git so that they become
part of the commit being made; -no-stage leaves them unstaged.

Commit types listed in -skip-types don't trigger an update:

	changelog-version -skip-types chore,ci,docs
*/
package main

import (
	_ "embed"

	"go.astrophena.name/githooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
