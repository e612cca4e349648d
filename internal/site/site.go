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

// Package site models a versioned Jekyll documentation site: a docs/
// tree holding one generated API reference folder per released semantic
// version, paired with one tutorial collection folder per version.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Site is a checkout of the documentation site.
type Site struct {
	// Root is the absolute path of the site checkout.
	Root string
	// Config is the loaded docpub.yml, or defaults.
	Config *Config
}

// Open loads the site rooted at dir.
func Open(dir string) (*Site, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err = isDir(root); err != nil {
		return nil, err
	}
	c, err := LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return &Site{Root: root, Config: c}, nil
}

// DocsPath is the absolute path of the version folder tree.
func (s *Site) DocsPath() string {
	return filepath.Join(s.Root, s.Config.DocsDir)
}

// TutorialsPath is the absolute path of the tutorial collection tree.
func (s *Site) TutorialsPath() string {
	return filepath.Join(s.Root, s.Config.TutorialsDir)
}

// VersionPath is the absolute path of one version's API reference.
func (s *Site) VersionPath(version string) string {
	return filepath.Join(s.DocsPath(), version)
}

// TutorialPath is the absolute path of one version's tutorial sources.
func (s *Site) TutorialPath(version string) string {
	return filepath.Join(s.TutorialsPath(), TutorialDir(version))
}

// Discover enumerates the doc version folders under docs/, sorted
// newest first.
//
// Entries that are not directories or whose name is not a valid version
// ("tutorials", "assets", "index.html", ...) are never considered. A
// missing docs/ directory yields zero versions, not an error; the tree
// may legitimately be empty before the first fetch.
func (s *Site) Discover() ([]string, error) {
	entries, err := os.ReadDir(s.DocsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() && IsVersion(e.Name()) {
			versions = append(versions, e.Name())
		}
	}
	SortDescending(versions)
	return versions, nil
}

// isDir returns an error if the path is not a directory.
func isDir(d string) error {
	s, err := os.Stat(d)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("path %s is missing", d)
	}
	if err != nil {
		return err
	}
	if !s.IsDir() {
		return fmt.Errorf("path %s is not a directory", d)
	}
	return nil
}
