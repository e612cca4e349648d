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
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	yaml "gopkg.in/yaml.v2"
)

//go:embed templates/index.html.tmpl templates/_config.yml.tmpl
var defaultTemplates embed.FS

// TemplatesDir is the folder under docs/ where a site can override the
// built-in templates for the generated files.
const TemplatesDir = "_templates"

// siteData is the data passed to both site file templates.
type siteData struct {
	Title       string
	Description string
	// Versions are the retained versions, newest first.
	Versions []string
}

var templateFuncs = template.FuncMap{
	// Version folder names start with a digit, which a bare YAML scalar
	// tolerates but a quoted one never surprises.
	"yamlquote": strconv.Quote,
}

// WriteSiteFiles regenerates docs/index.html and docs/_config.yml with
// one entry per retained version, in the given (descending) order.
//
// Each file is rendered from docs/_templates/<name>.tmpl when the site
// provides one, else from the embedded default. The rendered _config.yml
// is parsed back before anything is written; a template override that
// breaks the Jekyll config should fail the run, not the Pages build.
func (s *Site) WriteSiteFiles(versions []string) error {
	data := siteData{
		Title:       s.Config.Title,
		Description: s.Config.Description,
		Versions:    versions,
	}
	if data.Title == "" {
		data.Title = "API Documentation"
	}
	index, err := s.renderSiteFile("index.html.tmpl", data)
	if err != nil {
		return err
	}
	config, err := s.renderSiteFile("_config.yml.tmpl", data)
	if err != nil {
		return err
	}
	if err = validateConfigYAML(config, versions); err != nil {
		return fmt.Errorf("_config.yml.tmpl: %w", err)
	}
	if err = os.MkdirAll(s.DocsPath(), 0o755); err != nil {
		return err
	}
	if err = os.WriteFile(filepath.Join(s.DocsPath(), "index.html"), index, 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.DocsPath(), "_config.yml"), config, 0o644)
}

func (s *Site) renderSiteFile(name string, data siteData) ([]byte, error) {
	src, err := os.ReadFile(filepath.Join(s.DocsPath(), TemplatesDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		src, err = defaultTemplates.ReadFile("templates/" + name)
	}
	if err != nil {
		return nil, err
	}
	t, err := template.New(name).Funcs(templateFuncs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	b := &bytes.Buffer{}
	if err = t.Execute(b, data); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b.Bytes(), nil
}

// validateConfigYAML checks the rendered Jekyll config parses and
// declares one collection per retained version.
func validateConfigYAML(b []byte, versions []string) error {
	var doc struct {
		Collections map[string]any `yaml:"collections"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	if len(doc.Collections) != len(versions) {
		return fmt.Errorf("declares %d collections, want %d", len(doc.Collections), len(versions))
	}
	for _, v := range versions {
		if _, ok := doc.Collections[v]; !ok {
			return fmt.Errorf("missing collection for version %s", v)
		}
	}
	return nil
}
