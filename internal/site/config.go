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
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// ConfigName is the tool configuration file looked up at the site root.
const ConfigName = "docpub.yml"

// Config is the docpub.yml document.
//
// All fields are optional; Load fills in defaults. Commands that talk to
// GitHub (fetch) or to a remote (publish) validate the fields they need
// at execution time instead, so a prune-only checkout doesn't have to
// declare a repository.
type Config struct {
	// Title and Description feed the generated index.html and
	// _config.yml.
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	// Owner and Repo identify the GitHub repository that publishes the
	// docs.zip release assets.
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	// Branch is the branch the generated site is pushed to.
	Branch string `yaml:"branch"`
	// DocsDir holds one generated API reference folder per version.
	DocsDir string `yaml:"docs_dir"`
	// TutorialsDir holds one "_<version>" Jekyll collection folder per
	// version.
	TutorialsDir string `yaml:"tutorials_dir"`
	// Ignore holds gitignore-style patterns for tutorial sources the
	// check command skips, e.g. vendored snippets.
	Ignore []string `yaml:"ignore"`
}

// DefaultConfig returns the configuration used when docpub.yml is
// absent.
func DefaultConfig() *Config {
	return &Config{
		Branch:       "gh_pages",
		DocsDir:      "docs",
		TutorialsDir: "docs/tutorials",
	}
}

// LoadConfig reads docpub.yml from root, falling back to defaults when
// the file doesn't exist.
func LoadConfig(root string) (*Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(filepath.Join(root, ConfigName))
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.UnmarshalStrict(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigName, err)
	}
	if c.Branch == "" {
		c.Branch = "gh_pages"
	}
	if c.DocsDir == "" {
		c.DocsDir = "docs"
	}
	if c.TutorialsDir == "" {
		c.TutorialsDir = "docs/tutorials"
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigName, err)
	}
	return c, nil
}

// Validate verifies a docpub.yml document is valid.
func (c *Config) Validate() error {
	for _, d := range [...]string{c.DocsDir, c.TutorialsDir} {
		if d == "" {
			continue
		}
		if filepath.IsAbs(d) {
			return fmt.Errorf("directory %s must be relative to the site root", d)
		}
		if path.Clean(d) != d || strings.HasPrefix(d, "..") {
			return fmt.Errorf("directory %s is not clean", d)
		}
	}
	if strings.ContainsAny(c.Branch, " ~^:?*[\\") {
		return fmt.Errorf("branch %q is invalid", c.Branch)
	}
	if (c.Owner == "") != (c.Repo == "") {
		return errors.New("owner and repo must be set together")
	}
	for _, p := range c.Ignore {
		if p == "" {
			return errors.New("ignore patterns cannot be empty strings")
		}
	}
	return nil
}
