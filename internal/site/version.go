// Copyright 2026 The Docpub Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package site

import (
	"sort"

	"golang.org/x/mod/semver"
)

// IsVersion reports whether name is a doc version folder name.
//
// Doc version folders are named after the bare SDK release version, e.g.
// "5.0.1" or "6.0.0-rc.1", without the "v" prefix that semver tooling
// expects. The full MAJOR.MINOR.PATCH form is required; shortened forms
// like "5.0" show up in ordinary asset paths and are not versions.
func IsVersion(name string) bool {
	v := "v" + name
	return name != "" && semver.IsValid(v) && semver.Canonical(v) == v
}

// Compare orders two version folder names. It returns -1, 0 or +1 like
// semver.Compare.
func Compare(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// SortDescending sorts version folder names in place, newest first.
//
// Prereleases sort below the release they precede, so "6.0.0-rc.1" comes
// after "6.0.0" but before "5.9.9".
func SortDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		return Compare(versions[i], versions[j]) > 0
	})
}

// TutorialDir returns the Jekyll collection source folder name paired
// with a doc version folder, e.g. "_5.0.1" for "5.0.1".
func TutorialDir(version string) string {
	return "_" + version
}
