// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides utilities for testing command-line applications
// built with the [cli] package.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/githooks/cli"
)

// Case describes a single test case for a command-line application.
type Case[App cli.App] struct {
	// Args are the command-line arguments of the application.
	Args []string
	// Stdin is the standard input of the application.
	Stdin io.Reader
	// Env are the environment variables visible to the application.
	Env map[string]string

	// WantErr, if non-nil, asserts that the application returned an error
	// matching it with errors.Is.
	WantErr error
	// WantErrType, if non-nil, asserts that the application returned an error
	// whose type matches it with errors.As.
	WantErrType any
	// WantInStdout asserts that the standard output contains this string.
	WantInStdout string
	// WantInStderr asserts that the standard error contains this string.
	WantInStderr string
	// WantNothingPrinted asserts that the application printed nothing.
	WantNothingPrinted bool

	// CheckFunc, if non-nil, is invoked after the application run to make
	// additional assertions on its state.
	CheckFunc func(*testing.T, App)
}

// Run runs each case as a subtest against a fresh application value obtained
// from setup.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}

			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}
			ctx := cli.WithEnv(context.Background(), env)

			err := cli.Run(ctx, app)

			switch {
			case tc.WantErr != nil:
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("want error %v, got %v", tc.WantErr, err)
				}
			case tc.WantErrType != nil:
				target := reflect.New(reflect.TypeOf(tc.WantErrType)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("want error of type %T, got %v (type %T)", tc.WantErrType, err, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}

			if tc.WantNothingPrinted {
				if stdout.String() != "" {
					t.Errorf("stdout must be empty, got: %q", stdout.String())
				}
				if stderr.String() != "" {
					t.Errorf("stderr must be empty, got: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}
