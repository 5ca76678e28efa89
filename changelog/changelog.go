// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package changelog creates and updates changelog files in the Keep a
// Changelog format.
package changelog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"
)

// Header is the preamble of a newly created changelog file.
const Header = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

`

// Entry is a single release entry of a changelog.
type Entry struct {
	Version     string    // released version, without a prefix
	Date        time.Time // release date, only the day is used
	Section     string    // Keep a Changelog section, like "Added" or "Fixed"
	Description string    // single change description
	Breaking    bool      // whether the release contains a breaking change
}

// Format renders the entry as a changelog section.
func (e Entry) Format() []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## [%s] - %s\n\n### %s\n- %s\n", e.Version, e.Date.Format("2006-01-02"), e.Section, e.Description)
	if e.Breaking {
		sb.WriteString("- **BREAKING CHANGE**: This is a breaking change.\n")
	}
	return []byte(sb.String())
}

// New returns the contents of a new changelog file containing a single entry.
func New(e Entry) []byte {
	return append([]byte(Header), e.Format()...)
}

// Prepend inserts the entry before the first existing release entry, keeping
// everything else byte-for-byte intact. If the changelog has no entries yet,
// the new one is appended at the end.
func Prepend(existing []byte, e Entry) []byte {
	entry := e.Format()

	idx := entryStart(existing)
	if idx < 0 {
		out := existing
		if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n")) {
			out = append(out, '\n')
		}
		if len(out) > 0 && !bytes.HasSuffix(out, []byte("\n\n")) {
			out = append(out, '\n')
		}
		return append(out, entry...)
	}

	out := make([]byte, 0, len(existing)+len(entry)+1)
	out = append(out, existing[:idx]...)
	out = append(out, entry...)
	out = append(out, '\n')
	return append(out, existing[idx:]...)
}

// entryStart returns the offset of the first release entry heading, or -1 if
// there is none.
func entryStart(b []byte) int {
	if bytes.HasPrefix(b, []byte("## [")) {
		return 0
	}
	i := bytes.Index(b, []byte("\n## ["))
	if i < 0 {
		return -1
	}
	return i + 1
}

// WriteEntry adds the entry to the changelog file at path, creating the file
// with [Header] if it doesn't exist. The file mode of an existing changelog is
// preserved.
func WriteEntry(path string, e Entry) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(path, New(e), 0o644)
	}
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, Prepend(data, e), info.Mode().Perm())
}
