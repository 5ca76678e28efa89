// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package conventional parses conventional commit messages and maps them to
// semantic version bumps.
package conventional

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// headerRe matches the first line of a conventional commit message: a type
// token, an optional parenthesized scope, an optional breaking change marker
// and a description after the colon.
var headerRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_-]*)(?:\(([^)]*)\))?\s*(!?)\s*:\s*(.*\S)\s*$`)

// Commit is a parsed conventional commit message.
type Commit struct {
	Type        string // lowercased type token, like "feat" or "fix"
	Scope       string // scope without the parentheses, if any
	Description string // text after the colon on the first line
	Breaking    bool   // set by the "!" marker or a BREAKING CHANGE note
}

// Parse parses a commit message. It reports ok == false if the first line of
// the message doesn't follow the "type: description" form.
//
// The type token is matched case-insensitively and is not restricted to a
// fixed list. A breaking change is indicated either by a "!" before the colon
// or by a "BREAKING CHANGE" (also spelled "BREAKING-CHANGE") note anywhere in
// the message.
func Parse(message string) (c Commit, ok bool) {
	first, _, _ := strings.Cut(message, "\n")
	m := headerRe.FindStringSubmatch(first)
	if m == nil {
		return Commit{}, false
	}
	return Commit{
		Type:        strings.ToLower(m[1]),
		Scope:       m[2],
		Description: m[4],
		Breaking: m[3] == "!" ||
			strings.Contains(message, "BREAKING CHANGE") ||
			strings.Contains(message, "BREAKING-CHANGE"),
	}, true
}

// Bump is a semantic version increment.
type Bump int

// Version bumps, from the lowest to the highest.
const (
	Patch Bump = iota
	Minor
	Major
)

// String implements the [fmt.Stringer] interface.
func (b Bump) String() string {
	switch b {
	case Patch:
		return "patch"
	case Minor:
		return "minor"
	case Major:
		return "major"
	}
	return "unknown"
}

// Apply returns v incremented according to b. Lower version components are
// reset to zero.
func (b Bump) Apply(v semver.Version) semver.Version {
	switch b {
	case Major:
		return v.IncMajor()
	case Minor:
		return v.IncMinor()
	}
	return v.IncPatch()
}

// Bump returns the version bump the commit calls for. Breaking changes bump
// the major version, features the minor one, and everything else, including
// unrecognized commit types, the patch one.
func (c Commit) Bump() Bump {
	switch {
	case c.Breaking:
		return Major
	case c.Type == "feat":
		return Minor
	}
	return Patch
}

// Section returns the Keep a Changelog section name for the commit.
func (c Commit) Section() string {
	switch c.Type {
	case "feat":
		return "Added"
	case "fix":
		return "Fixed"
	}
	return "Changed"
}
