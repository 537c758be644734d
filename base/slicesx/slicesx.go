// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

// SetLength sets the length of the given slice,
// re-using and preserving existing values to the extent possible.
func SetLength[E any](s []E, n int) []E {
	if len(s) == n {
		return s
	}
	if s == nil {
		return make([]E, n)
	}
	if cap(s) < n {
		s = s[:cap(s)]
		s = append(s, make([]E, n-len(s))...)
	}
	return s[:n]
}
