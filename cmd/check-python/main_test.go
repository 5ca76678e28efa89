// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/cli/clitest"
)

const cleanSrc = `def add(a: int, b: int) -> int:
    return a + b
`

const messySrc = `def add(a, b):
    try:
        return a + b
    except:
        breakpoint()
`

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cleanFile := filepath.Join(dir, "clean.py")
	if err := os.WriteFile(cleanFile, []byte(cleanSrc), 0o644); err != nil {
		t.Fatal(err)
	}
	messyFile := filepath.Join(dir, "messy.py")
	if err := os.WriteFile(messyFile, []byte(messySrc), 0o644); err != nil {
		t.Fatal(err)
	}
	otherMessyFile := filepath.Join(dir, "other.py")
	if err := os.WriteFile(otherMessyFile, []byte(messySrc), 0o644); err != nil {
		t.Fatal(err)
	}

	clitest.Run(t, func(t *testing.T) *app { return new(app) }, map[string]clitest.Case[*app]{
		"no arguments": {
			WantErr: cli.ErrInvalidArgs,
		},
		"clean file": {
			Args:               []string{cleanFile},
			WantNothingPrinted: true,
		},
		"messy file": {
			Args:         []string{messyFile},
			WantErr:      errViolationsFound,
			WantInStdout: messyFile + `:4: bare-except: bare except clause`,
		},
		"reports all violations across files": {
			Args:         []string{messyFile, cleanFile, otherMessyFile},
			WantErr:      errViolationsFound,
			WantInStdout: otherMessyFile + `:5: debug-artifact: breakpoint() call left in code`,
		},
		"disabled checks": {
			Args:               []string{"-disable", "untyped-def,bare-except,debug-artifact", messyFile},
			WantNothingPrinted: true,
		},
		"unknown check": {
			Args:    []string{"-disable", "nonsense", messyFile},
			WantErr: cli.ErrInvalidArgs,
		},
		"verbose progress": {
			Args:         []string{"-verbose", cleanFile},
			WantInStderr: "[1/1] Checking " + cleanFile,
		},
		"missing file": {
			Args:    []string{filepath.Join(dir, "nonexistent.py")},
			WantErr: fs.ErrNotExist,
		},
	})
}
