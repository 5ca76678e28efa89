// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package hookdef loads hook definitions in the .pre-commit-hooks.yaml
// format.
package hookdef

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Hook is a single hook definition.
type Hook struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description,omitempty"`
	Entry         string   `yaml:"entry"`
	Language      string   `yaml:"language"`
	Files         string   `yaml:"files,omitempty"`
	Stages        []string `yaml:"stages,omitempty"`
	Args          []string `yaml:"args,omitempty"`
	PassFilenames *bool    `yaml:"pass_filenames,omitempty"`
	AlwaysRun     bool     `yaml:"always_run,omitempty"`
}

// WantsFilenames reports whether the hook runner should pass matched file
// names to the hook. Like in the pre-commit framework, it defaults to true.
func (h Hook) WantsFilenames() bool {
	if h.PassFilenames == nil {
		return true
	}
	return *h.PassFilenames
}

// EffectiveStages returns the stages the hook runs at, defaulting to
// pre-commit when none are declared.
func (h Hook) EffectiveStages() []string {
	if len(h.Stages) == 0 {
		return []string{"pre-commit"}
	}
	return h.Stages
}

// knownStages are the hook stages the pre-commit framework defines.
var knownStages = []string{
	"commit-msg",
	"manual",
	"post-checkout",
	"post-commit",
	"post-merge",
	"post-rewrite",
	"pre-auto-gc",
	"pre-commit",
	"pre-merge-commit",
	"pre-push",
	"pre-rebase",
	"prepare-commit-msg",
}

// Load reads hook definitions from the YAML file at path.
func Load(path string) ([]Hook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	hooks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hooks, nil
}

// Parse parses and validates hook definitions. All validation problems are
// reported together.
func Parse(data []byte) ([]Hook, error) {
	var hooks []Hook
	if err := yaml.Unmarshal(data, &hooks); err != nil {
		return nil, err
	}

	var errs []error
	seen := make(map[string]bool)
	for _, h := range hooks {
		if err := h.validate(); err != nil {
			errs = append(errs, err)
		}
		if h.ID != "" && seen[h.ID] {
			errs = append(errs, fmt.Errorf("hook %q: duplicate id", h.ID))
		}
		seen[h.ID] = true
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (h Hook) validate() error {
	var errs []error
	if h.ID == "" {
		errs = append(errs, errors.New("hook has no id"))
	}
	if h.Name == "" {
		errs = append(errs, fmt.Errorf("hook %q: no name", h.ID))
	}
	if h.Entry == "" {
		errs = append(errs, fmt.Errorf("hook %q: no entry", h.ID))
	}
	if h.Language == "" {
		errs = append(errs, fmt.Errorf("hook %q: no language", h.ID))
	}
	for _, s := range h.Stages {
		if !slices.Contains(knownStages, s) {
			errs = append(errs, fmt.Errorf("hook %q: unknown stage %q", h.ID, s))
		}
	}
	return errors.Join(errs...)
}
