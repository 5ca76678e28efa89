// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package pycheck performs shallow textual checks over Python source files.
//
// The checks are deliberately line-based and do not parse Python: multi-line
// function signatures are skipped, and string literals and comments are
// stripped before matching. Every violation is collected and reported, a
// failing check never short-circuits the remaining ones.
package pycheck

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Rule names.
const (
	RuleUntypedDef     = "untyped-def"     // parameters or return values without type annotations
	RuleMutableDefault = "mutable-default" // mutable parameter default values
	RuleBareExcept     = "bare-except"     // except clauses that catch everything
	RuleDebugArtifact  = "debug-artifact"  // leftover debugging helpers
)

// Rules lists all known rule names.
var Rules = []string{RuleUntypedDef, RuleMutableDefault, RuleBareExcept, RuleDebugArtifact}

// Violation is a single failed check.
type Violation struct {
	Path   string // checked file
	Line   int    // 1-based line number
	Rule   string // rule name, see Rules
	Detail string // human-readable explanation
}

// String implements the [fmt.Stringer] interface.
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", v.Path, v.Line, v.Rule, v.Detail)
}

// Checker checks Python source files.
type Checker struct {
	disabled map[string]bool
}

// New creates a Checker with the given rules disabled.
func New(disabled []string) *Checker {
	c := &Checker{disabled: make(map[string]bool)}
	for _, rule := range disabled {
		c.disabled[strings.TrimSpace(rule)] = true
	}
	return c
}

// Check checks the Python source file at path.
func (c *Checker) Check(path string) ([]Violation, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.CheckSource(path, src), nil
}

var (
	defRe        = regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\((.*)\)\s*(->.*)?:`)
	bareExceptRe = regexp.MustCompile(`^\s*except\s*:`)
)

var debugArtifacts = []struct {
	re   *regexp.Regexp
	what string
}{
	{regexp.MustCompile(`\bbreakpoint\(\)`), "breakpoint() call"},
	{regexp.MustCompile(`\bpdb\.set_trace\(\)`), "pdb.set_trace() call"},
	{regexp.MustCompile(`^\s*(?:import\s+pdb\b|from\s+pdb\s+import\b)`), "pdb import"},
}

// CheckSource checks Python source code. The path is used only for reporting.
func (c *Checker) CheckSource(path string, src []byte) []Violation {
	var (
		violations []Violation
		state      string
	)

	add := func(line int, rule, format string, args ...any) {
		if c.disabled[rule] {
			return
		}
		violations = append(violations, Violation{
			Path:   path,
			Line:   line,
			Rule:   rule,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	for i, raw := range strings.Split(string(src), "\n") {
		line := i + 1

		var code string
		code, state = scanLine(raw, state)
		if strings.TrimSpace(code) == "" {
			continue
		}

		if bareExceptRe.MatchString(code) {
			add(line, RuleBareExcept, "bare except clause")
		}

		for _, artifact := range debugArtifacts {
			if artifact.re.MatchString(code) {
				add(line, RuleDebugArtifact, "%s left in code", artifact.what)
			}
		}

		m := defRe.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		name, params, returns := m[1], m[2], m[3]

		for _, param := range splitParams(params) {
			param = strings.TrimSpace(param)
			if param == "" || param == "*" || param == "/" {
				continue
			}
			pname, annotated, value := parseParam(param)
			if isMutableDefault(value) {
				add(line, RuleMutableDefault, "parameter %q of %q defaults to a mutable value", pname, name)
			}
			if pname == "self" || pname == "cls" {
				continue
			}
			if !annotated {
				add(line, RuleUntypedDef, "parameter %q of %q lacks a type annotation", pname, name)
			}
		}

		if returns == "" && !isDunder(name) {
			add(line, RuleUntypedDef, "function %q lacks a return type annotation", name)
		}
	}

	return violations
}

// scanLine returns the code portion of a line, with comments and the contents
// of string literals removed. state carries an open triple-quoted string
// delimiter across lines; it is empty outside of one.
func scanLine(line, state string) (code, newState string) {
	var sb strings.Builder
	i := 0
	for i < len(line) {
		if state != "" {
			end := strings.Index(line[i:], state)
			if end < 0 {
				return sb.String(), state
			}
			i += end + len(state)
			state = ""
			continue
		}
		if strings.HasPrefix(line[i:], `"""`) || strings.HasPrefix(line[i:], "'''") {
			state = line[i : i+3]
			i += 3
			continue
		}
		switch c := line[i]; c {
		case '"', '\'':
			j := i + 1
			for j < len(line) {
				if line[j] == '\\' {
					j += 2
					continue
				}
				if line[j] == c {
					break
				}
				j++
			}
			if j >= len(line) {
				// Unterminated string, ignore the rest of the line.
				return sb.String(), ""
			}
			i = j + 1
		case '#':
			return sb.String(), ""
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), state
}

// splitParams splits a parameter list on commas outside of brackets.
func splitParams(s string) []string {
	var (
		params []string
		depth  int
		start  int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, s[start:i])
				start = i + 1
			}
		}
	}
	if start < len(s) {
		params = append(params, s[start:])
	}
	return params
}

// parseParam splits a single parameter into its name, whether it has a type
// annotation and its default value, if any.
func parseParam(p string) (name string, annotated bool, value string) {
	if i := topLevelIndex(p, '='); i >= 0 {
		value = strings.TrimSpace(p[i+1:])
		p = p[:i]
	}
	name, _, annotated = strings.Cut(p, ":")
	name = strings.TrimSpace(strings.TrimLeft(name, "*"))
	return name, annotated, value
}

// topLevelIndex returns the index of the first c in s outside of brackets, or
// -1 if there is none.
func topLevelIndex(s string, c byte) int {
	var depth int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if s[i] == c && depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isMutableDefault(value string) bool {
	switch value {
	case "[]", "{}", "set()", "list()", "dict()":
		return true
	}
	return false
}

func isDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
