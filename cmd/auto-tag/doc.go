// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Auto-tag creates a git tag for the current project version.

It is designed to run as a post-commit hook, after changelog-version has
bumped the project version. It reads the version from pyproject.toml, or
the file given with -config, and creates an annotated tag named after it,
prefixed with -tag-prefix ("v" by default, producing tags like v1.2.3).

If the tag already exists, the hook does nothing and exits successfully,
so it can safely run after every commit. With -no-skip-if-exists an
existing tag is an error instead.

The tag message can be customized with -message; the {version} and {tag}
placeholders are expanded:

	auto-tag -message "Release {tag}"
*/
package main

import (
	_ "embed"

	"go.astrophena.name/githooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
