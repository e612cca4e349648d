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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsVersion(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		want bool
	}{
		{"5.0.1", true},
		{"6.0.0-rc.1", true},
		{"10.20.30", true},
		{"", false},
		{"5.0", false},
		{"5", false},
		{"5.0.1+build.7", false},
		{"v5.0.1", false},
		{"tutorials", false},
		{"assets", false},
		{"index.html", false},
		{"5.0.1 ", false},
		{"5..1", false},
	}
	for _, line := range data {
		if got := IsVersion(line.name); got != line.want {
			t.Errorf("IsVersion(%q) = %t, want %t", line.name, got, line.want)
		}
	}
}

func TestSortDescending(t *testing.T) {
	t.Parallel()
	got := []string{"5.0.1", "10.0.0", "6.0.0-rc.1", "6.0.0", "5.10.0", "5.2.0"}
	SortDescending(got)
	want := []string{"10.0.0", "6.0.0", "6.0.0-rc.1", "5.10.0", "5.2.0", "5.0.1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTutorialDir(t *testing.T) {
	t.Parallel()
	if got := TutorialDir("5.0.1"); got != "_5.0.1" {
		t.Fatal(got)
	}
}
