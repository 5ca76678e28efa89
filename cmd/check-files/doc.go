// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Check-files verifies that files exist and are not empty.

It accepts a list of file paths as arguments and prints a diagnostic line
for each file that is missing, empty or not a regular file:

	config/app.yaml: missing file
	README.md: empty file

It exits with a non-zero status if any problem was found.

The -verbose flag enables per-file progress reporting on stderr.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/githooks/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
