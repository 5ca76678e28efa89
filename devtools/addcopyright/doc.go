// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addcopyright adds a copyright header to source files that lack one.

It walks the repository and checks if a file, based on its extension,
should have a copyright header. If the header is missing, the tool
prepends a copyright notice rendered from a template, with the year taken
from the file's modification time.

The tool is configured through an .addcopyright.txtar file in the
repository root. This file is a txtar archive and can contain the
following files:

  - exclusions.json: a JSON array of path fragments; files whose path
    contains one of them are left alone.
  - template.{ext}: the header template for a file extension (like
    template.go). It can contain a %d formatting verb for the year.
  - header.{ext}: a string that identifies an existing header for a file
    extension. If a file starts with this string, it is considered to
    already have a copyright header.

The -dry flag prints what would change without touching any files.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/githooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
