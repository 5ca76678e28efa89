// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains shared helpers for this repository's development
// tools.
package internal

import (
	"log"
	"os"
	"path/filepath"
)

// EnsureRoot changes the current directory to the repository root, so the
// tools can run from anywhere inside the repository.
func EnsureRoot() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			if err := os.Chdir(dir); err != nil {
				log.Fatal(err)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Fatal("unable to find the repository root: no go.mod in any parent directory")
		}
		dir = parent
	}
}
