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

package tutorial

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// testReport collects findings for assertions.
type testReport struct {
	mu        sync.Mutex
	findings  []string
	completed []string
}

func (r *testReport) EmitFinding(ctx context.Context, check string, level Level, message, root, file string, s Span) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findings = append(r.findings, fmt.Sprintf("[%s/%s] %s: %s", check, level, file, message))
	return nil
}

func (r *testReport) CheckCompleted(ctx context.Context, check string, d time.Duration, level Level, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, check)
}

func (r *testReport) Print(ctx context.Context, file string, line int, message string) {
}

func (r *testReport) sorted() ([]string, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sort.Strings(r.findings)
	sort.Strings(r.completed)
	return r.findings, r.completed
}

func TestRun_Clean(t *testing.T) {
	t.Parallel()
	s := makeSite(t, map[string]string{
		"docs/5.0.1/index.html":            "<html></html>",
		"docs/tutorials/_5.0.1/a-start.md": goodPage,
		"docs/tutorials/_5.0.1/b-cache.md": "---\ntitle: Caching\npermalink: /caching\n---\nSee [the reference](../../5.0.1/index.html).\n",
	})
	r := &testReport{}
	if err := Run(context.Background(), &Options{Site: s, Report: r}); err != nil {
		t.Fatal(err)
	}
	findings, completed := r.sorted()
	if len(findings) != 0 {
		t.Fatal(findings)
	}
	want := []string{"frontmatter", "markdown", "permalinks", "version-links"}
	if diff := cmp.Diff(want, completed); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Findings(t *testing.T) {
	t.Parallel()
	s := makeSite(t, map[string]string{
		"docs/6.0.0/index.html": "<html></html>",
		// Missing title.
		"docs/tutorials/_6.0.0/a.md": "---\nnav_order: 1\n---\nbody\n",
		// Unparsable frontmatter.
		"docs/tutorials/_6.0.0/b.md": "---\ntitle: [unclosed\n---\nbody\n",
		// Link into a pruned version.
		"docs/tutorials/_6.0.0/c.md": "---\ntitle: C\npermalink: /c\n---\n[old](../../5.0.1/index.html)\n",
		// Duplicate permalink, same version.
		"docs/tutorials/_6.0.0/d.md": "---\ntitle: D\npermalink: /c\n---\nbody\n",
	})
	r := &testReport{}
	if err := Run(context.Background(), &Options{Site: s, Report: r}); !errors.Is(err, ErrCheckFailed) {
		t.Fatal(err)
	}
	findings, _ := r.sorted()
	want := []string{
		"[frontmatter/error] docs/tutorials/_6.0.0/a.md: missing title in frontmatter",
		"[frontmatter/error] docs/tutorials/_6.0.0/b.md: frontmatter does not parse",
		"[permalinks/error] docs/tutorials/_6.0.0/d.md: permalink /c already used by docs/tutorials/_6.0.0/c.md",
		"[version-links/warning] docs/tutorials/_6.0.0/c.md: links to doc version 5.0.1, which is not retained",
	}
	if len(findings) != len(want) {
		t.Fatalf("got %d findings:\n%v", len(findings), findings)
	}
	for i, prefix := range want {
		if got := findings[i]; !strings.HasPrefix(got, prefix) {
			t.Errorf("finding #%d:\ngot  %q\nwant prefix %q", i, got, prefix)
		}
	}
}

func TestRun_WarningOnly(t *testing.T) {
	t.Parallel()
	s := makeSite(t, map[string]string{
		"docs/6.0.0/index.html":      "<html></html>",
		"docs/tutorials/_6.0.0/a.md": "---\ntitle: A\n---\n[old](../../5.0.1/index.html)\n",
	})
	r := &testReport{}
	// Warnings alone don't fail the run.
	if err := Run(context.Background(), &Options{Site: s, Report: r}); err != nil {
		t.Fatal(err)
	}
	if findings, _ := r.sorted(); len(findings) != 1 {
		t.Fatal(findings)
	}
}

func TestMissingVersion(t *testing.T) {
	t.Parallel()
	retained := map[string]struct{}{"6.0.0": {}}
	data := []struct {
		dest string
		want string
	}{
		{"../../6.0.0/index.html", ""},
		{"../../5.0.1/index.html", "5.0.1"},
		{"/docs/5.0.1/api.html", "5.0.1"},
		{"../_5.0.1/page.md", "5.0.1"},
		{"../../5.0.1/index.html#anchor", "5.0.1"},
		{"https://example.com/5.0.1/index.html", ""},
		{"mailto:sdk@example.com", ""},
		{"getting-started.html", ""},
		// Shortened numeric segments are ordinary path names, not
		// versions.
		{"../assets/images/2.0/figure.png", ""},
		{"charts/v2/data.json", ""},
	}
	for _, line := range data {
		if got := missingVersion(line.dest, retained); got != line.want {
			t.Errorf("missingVersion(%q) = %q, want %q", line.dest, got, line.want)
		}
	}
}
