// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides information about the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/githooks/syncx"
)

var lazy syncx.Lazy[Info]

// Version returns the version information of the running binary.
func Version() Info { return lazy.Get(load) }

// Info contains information about the running binary.
type Info struct {
	Name    string // base name of the binary
	Version string // module version, or "devel" if built from a working tree
	Commit  string // VCS revision from which the binary was built
	Dirty   bool   // whether the working tree had uncommitted changes
	Go      string // Go toolchain version
	OS      string // target operating system
	Arch    string // target architecture
}

// String implements the [fmt.Stringer] interface.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&sb, " (%s", commit)
		if i.Dirty {
			sb.WriteString("-dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\nbuilt with %s, %s/%s\n", i.Go, i.OS, i.Arch)
	return sb.String()
}

func load() Info {
	i := Info{
		Name:    CmdName(),
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}

var cmdName syncx.Lazy[string]

// CmdName returns the base name of the running binary.
func CmdName() string {
	return cmdName.Get(func() string {
		exe, err := os.Executable()
		if err != nil {
			return "unknown"
		}
		return strings.TrimSuffix(filepath.Base(exe), ".exe")
	})
}
