// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/githooks/cli"
	"go.astrophena.name/githooks/devtools/internal"
	"go.astrophena.name/githooks/txtar"
)

type config struct {
	exclusions []string
	headers    map[string]string // by file extension
	templates  map[string]string // by file extension
}

func (c *config) excluded(path string) bool {
	slash := filepath.ToSlash(path)
	for _, e := range c.exclusions {
		if strings.Contains(slash, e) {
			return true
		}
	}
	return false
}

func loadConfig() (*config, error) {
	ar, err := txtar.ParseFile(".addcopyright.txtar")
	if err != nil {
		return nil, err
	}

	cfg := &config{
		headers:   make(map[string]string),
		templates: make(map[string]string),
	}
	for _, f := range ar.Files {
		switch {
		case f.Name == "exclusions.json":
			if err := json.Unmarshal(f.Data, &cfg.exclusions); err != nil {
				return nil, err
			}
		case strings.HasPrefix(f.Name, "header"):
			cfg.headers[filepath.Ext(f.Name)] = strings.TrimSuffix(string(f.Data), "\n")
		case strings.HasPrefix(f.Name, "template"):
			cfg.templates[filepath.Ext(f.Name)] = string(f.Data)
		}
	}
	return cfg, nil
}

func main() { cli.Main(new(app)) }

type app struct {
	dry bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would have a copyright header added, without making changes.")
}

func (a *app) Run(ctx context.Context) error {
	internal.EnsureRoot()

	env := cli.GetEnv(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	return filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.excluded(path) {
			return nil
		}

		ext := filepath.Ext(path)
		tmpl, ok := cfg.templates[ext]
		if !ok {
			return nil
		}
		header := cfg.headers[ext]
		if header == "" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(content, []byte(header)) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr := fmt.Sprintf(tmpl, info.ModTime().Year())

		if a.dry {
			env.Logf("Would add copyright header to %s:\n%s", path, hdr)
			return nil
		}
		return os.WriteFile(path, append([]byte(hdr), content...), 0o644)
	})
}
