// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package verfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/githooks/testutil"
)

const pyproject = `[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"

[project]
name = "example"
version = "1.2.3"
description = "An example project."

[tool.ruff]
line-length = 100
`

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in      string
		want    string
		wantErr error
	}{
		"project table": {
			in:   pyproject,
			want: "1.2.3",
		},
		"top level": {
			in:   "version = \"0.1.0\"\n",
			want: "0.1.0",
		},
		"single quotes": {
			in:   "[project]\nname = 'example'\nversion = '2.0.0'\n",
			want: "2.0.0",
		},
		"project table wins": {
			in:   "version = \"9.9.9\"\n\n[project]\nversion = \"1.0.0\"\n",
			want: "1.0.0",
		},
		"no version": {
			in:      "[project]\nname = \"example\"\n",
			wantErr: ErrNoVersion,
		},
		"empty": {
			in:      "",
			wantErr: ErrNoVersion,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tc.in))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			testutil.AssertEqual(t, err, nil)
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestParseInvalidTOML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("version = \n"))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pyproject.toml")
	if err := os.WriteFile(path, []byte(pyproject), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, got, "1.2.3")

	_, err = Read(filepath.Join(t.TempDir(), "missing.toml"))
	if !os.IsNotExist(err) {
		t.Fatalf("want a not-exist error, got %v", err)
	}
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in      string
		old     string
		new     string
		want    string
		wantErr bool
	}{
		"project table": {
			in:   "[project]\nname = \"example\"\nversion = \"1.2.3\"\n",
			old:  "1.2.3",
			new:  "1.3.0",
			want: "[project]\nname = \"example\"\nversion = \"1.3.0\"\n",
		},
		"preserves single quotes": {
			in:   "version = '1.2.3'\n",
			old:  "1.2.3",
			new:  "2.0.0",
			want: "version = '2.0.0'\n",
		},
		"preserves spacing": {
			in:   "version   =   \"1.2.3\"\n",
			old:  "1.2.3",
			new:  "1.2.4",
			want: "version   =   \"1.2.4\"\n",
		},
		"first match only": {
			in:   "[project]\nversion = \"1.2.3\"\n\n[tool.other]\nversion = \"1.2.3\"\n",
			old:  "1.2.3",
			new:  "1.3.0",
			want: "[project]\nversion = \"1.3.0\"\n\n[tool.other]\nversion = \"1.2.3\"\n",
		},
		"leaves other fields alone": {
			in:   "[project]\ndescription = \"version = 1.2.3\"\nversion = \"1.2.3\"\n",
			old:  "1.2.3",
			new:  "1.2.4",
			want: "[project]\ndescription = \"version = 1.2.3\"\nversion = \"1.2.4\"\n",
		},
		"not found": {
			in:      "[project]\nname = \"example\"\n",
			old:     "1.2.3",
			new:     "1.3.0",
			wantErr: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "pyproject.toml")
			if err := os.WriteFile(path, []byte(tc.in), 0o644); err != nil {
				t.Fatal(err)
			}

			err := Rewrite(path, tc.old, tc.new)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			testutil.AssertEqual(t, err, nil)

			got, err := os.ReadFile(path)
			testutil.AssertEqual(t, err, nil)
			testutil.AssertEqual(t, string(got), tc.want)
		})
	}
}
