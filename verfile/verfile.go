// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package verfile reads and updates the version field of a TOML config file,
// such as pyproject.toml.
package verfile

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// ErrNoVersion is returned when a config file has no version field.
var ErrNoVersion = errors.New("no version field found")

// Read reads the version from the config file at path. It looks for a version
// field in the [project] table first, then at the top level.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	version, err := Parse(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return version, nil
}

// Parse extracts the version from TOML data. See [Read] for the lookup order.
func Parse(data []byte) (string, error) {
	var cfg struct {
		Project struct {
			Version string `toml:"version"`
		} `toml:"project"`
		Version string `toml:"version"`
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return "", err
	}
	version := cfg.Project.Version
	if version == "" {
		version = cfg.Version
	}
	if version == "" {
		return "", ErrNoVersion
	}
	return version, nil
}

// Rewrite replaces old with new in the first version field of the config file
// at path, leaving the rest of the file byte-for-byte intact. The file mode is
// preserved.
func Rewrite(path, old, new string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	re := regexp.MustCompile(`(?m)^(\s*version\s*=\s*)(['"])` + regexp.QuoteMeta(old) + `(['"])`)
	loc := re.FindSubmatchIndex(data)
	if loc == nil {
		return fmt.Errorf("%s: version %q not found", path, old)
	}

	// loc[5] is the end of the opening quote, loc[6] is the start of the
	// closing one.
	out := make([]byte, 0, len(data)+len(new)-len(old))
	out = append(out, data[:loc[5]]...)
	out = append(out, new...)
	out = append(out, data[loc[6]:]...)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, info.Mode().Perm())
}
