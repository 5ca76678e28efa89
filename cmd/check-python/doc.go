// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Check-python runs shallow checks on Python source files.

It accepts a list of file paths as arguments and prints a diagnostic line
for each violation it finds:

	app.py:3: untyped-def: parameter "x" of "f" lacks a type annotation

The checks are textual and deliberately shallow. They catch missing type
annotations, mutable default values, bare except clauses and leftover
debugging artifacts such as breakpoint() calls. All files are checked and
all violations are reported before the program exits.

It exits with a non-zero status if any violation was found.

Individual checks can be turned off with the -disable flag:

	check-python -disable untyped-def,bare-except app.py

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
