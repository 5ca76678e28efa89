// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package unwrap provides functions for handling errors by panicking.
package unwrap

// Value returns v, panicking if err is not nil.
func Value[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}
