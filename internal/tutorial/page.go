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
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/docpub-project/docpub/internal/site"
)

// FrontMatter is the YAML header Jekyll expects on every tutorial page.
type FrontMatter struct {
	Title     string `yaml:"title"`
	NavOrder  int    `yaml:"nav_order"`
	Permalink string `yaml:"permalink"`
	// Extra keeps whatever else the page declares; layouts vary between
	// doc versions.
	Extra map[string]any `yaml:",inline"`
}

// Page is one markdown tutorial source file.
type Page struct {
	// Path is the file path relative to the site root, slash separated.
	Path string
	// Version is the doc version the page belongs to.
	Version string
	// Meta is the parsed frontmatter. Zero when ParseErr is set.
	Meta FrontMatter
	// Body is the markdown content without the frontmatter header.
	Body []byte
	// ParseErr is the frontmatter parse failure, if any. The page is
	// still listed so checks can report on it.
	ParseErr error
}

// Load reads every tutorial page of every version present under the
// site's tutorials tree, sorted by path.
//
// Only "_<version>" collection folders are considered; files matching
// the site config's ignore patterns are skipped.
func Load(s *site.Site) ([]*Page, error) {
	var patterns []gitignore.Pattern
	for _, p := range s.Config.Ignore {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}
	matcher := gitignore.NewMatcher(patterns)

	entries, err := os.ReadDir(s.TutorialsPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pages []*Page
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasPrefix(name, "_") || !site.IsVersion(name[1:]) {
			continue
		}
		version := name[1:]
		root := s.TutorialPath(version)
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(p, ".md") {
				return err
			}
			rel, err := filepath.Rel(s.Root, p)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if matcher.Match(strings.Split(rel, "/"), false) {
				return nil
			}
			page, err := loadPage(p, rel, version)
			if err != nil {
				return err
			}
			pages = append(pages, page)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].Path < pages[j].Path
	})
	return pages, nil
}

func loadPage(path, rel, version string) (*Page, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Page{Path: rel, Version: version}
	p.Body, p.ParseErr = parseFrontMatter(b, &p.Meta)
	return p, nil
}

// parseFrontMatter extracts the YAML header and returns the remaining
// markdown body.
func parseFrontMatter(b []byte, meta *FrontMatter) ([]byte, error) {
	body, err := frontmatter.Parse(bytes.NewReader(b), meta)
	if err != nil {
		return b, err
	}
	return body, nil
}
