// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Checkmanifest verifies that the hook manifest matches the commands this
repository ships.

Every hook in .pre-commit-hooks.yaml must name an entry that exists as a
directory under cmd/, and the manifest itself must be valid. Commands not
listed in the manifest only produce a notice, since not every command is
a hook.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/githooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
