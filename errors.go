// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import "errors"

var (
	// ErrNotFound is returned when a name has no icon registered.
	ErrNotFound = errors.New("lucide: icon not found")

	// ErrNilIcon is returned when wrapping a nil icon.
	ErrNilIcon = errors.New("lucide: nil icon")

	// ErrInvalidName is returned for icon names that do not satisfy
	// [ValidName].
	ErrInvalidName = errors.New("lucide: invalid icon name")
)
