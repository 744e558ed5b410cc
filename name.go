// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lucide

import "regexp"

// icon names start with a letter, followed by letters, digits,
// underscores, or hyphens
var nameRegexp = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidName reports whether name is a well-formed icon name.
func ValidName(name string) bool {
	return nameRegexp.MatchString(name)
}
