// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package checks validates that files exist and are non-empty.
package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Kind classifies a failed file check.
type Kind int

const (
	Missing   Kind = iota // file does not exist
	Empty                 // file has zero size
	Irregular             // not a regular file, like a directory
)

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	switch k {
	case Missing:
		return "missing file"
	case Empty:
		return "empty file"
	case Irregular:
		return "not a regular file"
	}
	return "unknown"
}

// Problem is a single failed check.
type Problem struct {
	Path string
	Kind Kind
}

// String implements the [fmt.Stringer] interface.
func (p Problem) String() string { return p.Path + ": " + p.Kind.String() }

// File checks that path points to an existing, non-empty regular file. It
// returns a nil Problem if the check passes. The error is non-nil only for
// I/O failures other than non-existence.
func File(path string) (*Problem, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Problem{Path: path, Kind: Missing}, nil
	}
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return &Problem{Path: path, Kind: Irregular}, nil
	}
	if info.Size() == 0 {
		return &Problem{Path: path, Kind: Empty}, nil
	}
	return nil, nil
}

// Files checks every path and returns all problems found, in input order.
func Files(paths []string) ([]Problem, error) {
	var problems []Problem
	for _, path := range paths {
		p, err := File(path)
		if err != nil {
			return nil, err
		}
		if p != nil {
			problems = append(problems, *p)
		}
	}
	return problems, nil
}

// Progress returns a single-line progress message for checking path, shortened
// to fit into a terminal of the given width. A width of zero or less disables
// shortening.
func Progress(current, total int, path string, width int) string {
	prefix := fmt.Sprintf("[%d/%d] Checking ", current, total)
	msg := prefix + path
	if width <= 0 || len(msg) <= width {
		return msg
	}
	if width <= len(prefix) {
		return prefix
	}
	avail := width - len(prefix)
	if avail <= 3 {
		return prefix + path[:avail]
	}
	return prefix + path[:avail-3] + "..."
}

// Report formats problems as one diagnostic line each.
func Report(problems []Problem) string {
	var sb strings.Builder
	for _, p := range problems {
		sb.WriteString(p.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
