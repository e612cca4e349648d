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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	yaml "gopkg.in/yaml.v2"
)

func TestWriteSiteFiles(t *testing.T) {
	t.Parallel()
	s := makeSite(t, nil)
	s.Config.Title = "AdSDK"
	s.Config.Description = "Android advertising SDK"
	versions := []string{"6.0.0", "5.2.0", "5.0.1"}
	if err := s.WriteSiteFiles(versions); err != nil {
		t.Fatal(err)
	}

	index, err := os.ReadFile(filepath.Join(s.DocsPath(), "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	// One link per retained version, in descending order.
	last := 0
	for _, v := range versions {
		i := strings.Index(string(index), `href="`+v+`/index.html"`)
		if i < 0 {
			t.Fatalf("index.html misses a link to %s:\n%s", v, index)
		}
		if i < last {
			t.Fatalf("index.html lists %s out of order:\n%s", v, index)
		}
		last = i
	}
	if !strings.Contains(string(index), "(latest)") {
		t.Fatalf("index.html misses the latest marker:\n%s", index)
	}

	config, err := os.ReadFile(filepath.Join(s.DocsPath(), "_config.yml"))
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Title       string         `yaml:"title"`
		Collections map[string]any `yaml:"collections"`
	}
	if err = yaml.Unmarshal(config, &doc); err != nil {
		t.Fatalf("generated _config.yml is invalid: %s\n%s", err, config)
	}
	if doc.Title != "AdSDK" {
		t.Fatal(doc.Title)
	}
	var got []string
	for v := range doc.Collections {
		got = append(got, v)
	}
	SortDescending(got)
	if diff := cmp.Diff(versions, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSiteFiles_Empty(t *testing.T) {
	t.Parallel()
	s := makeSite(t, nil)
	if err := s.WriteSiteFiles(nil); err != nil {
		t.Fatal(err)
	}
	config, err := os.ReadFile(filepath.Join(s.DocsPath(), "_config.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if err = yaml.Unmarshal(config, &map[string]any{}); err != nil {
		t.Fatalf("generated _config.yml is invalid: %s\n%s", err, config)
	}
}

func TestWriteSiteFiles_Override(t *testing.T) {
	t.Parallel()
	s := makeSite(t, nil)
	writeFile(t, filepath.Join(s.DocsPath(), TemplatesDir, "index.html.tmpl"),
		"<html>{{range .Versions}}<a>{{.}}</a>{{end}}</html>\n")
	if err := s.WriteSiteFiles([]string{"5.0.1"}); err != nil {
		t.Fatal(err)
	}
	index, err := os.ReadFile(filepath.Join(s.DocsPath(), "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(index); got != "<html><a>5.0.1</a></html>\n" {
		t.Fatal(got)
	}
}

func TestWriteSiteFiles_BadOverride(t *testing.T) {
	t.Parallel()
	s := makeSite(t, nil)
	// A config override that drops the collections would break the Pages
	// build; it must fail here instead, without writing anything.
	writeFile(t, filepath.Join(s.DocsPath(), TemplatesDir, "_config.yml.tmpl"), "title: x\n")
	if err := s.WriteSiteFiles([]string{"5.0.1"}); err == nil {
		t.Fatal("expected error")
	} else if !strings.Contains(err.Error(), "collections") {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(s.DocsPath(), "_config.yml")); err == nil {
		t.Fatal("_config.yml was written")
	}
}
