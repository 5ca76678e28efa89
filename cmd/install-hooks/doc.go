// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Install-hooks installs the hooks from a .pre-commit-hooks.yaml manifest
as plain git hooks, so no framework is needed at commit time.

For every stage that appears in the manifest it generates a script in
.git/hooks that runs the stage's hooks in order. Hooks that take file
names receive the files staged for the commit, filtered by the hook's
files pattern; such hooks are only supported at the pre-commit stage and
are skipped elsewhere with a notice. Hook entries are looked up in PATH,
so install the binaries first:

	go install go.astrophena.name/githooks/cmd/...@latest

Existing hook scripts that were not generated by this tool are left
alone unless -force is given.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/githooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
