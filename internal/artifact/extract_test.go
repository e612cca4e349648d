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

package artifact

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"index.html":            "<html></html>",
		"api/classes.html":      "classes",
		"api/packages.html":     "packages",
		"assets/css/styles.css": "body {}",
	}
	dir := t.TempDir()
	p := filepath.Join(dir, "docs.zip")
	if err := os.WriteFile(p, makeZip(t, files), 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "5.0.1")
	if err := Extract(context.Background(), p, dest); err != nil {
		t.Fatal(err)
	}
	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(name)))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
	}
}

func TestExtract_Escape(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	p := filepath.Join(dir, "docs.zip")
	if err := os.WriteFile(p, makeZip(t, map[string]string{"../evil.html": "x"}), 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "5.0.1")
	if err := Extract(context.Background(), p, dest); err == nil {
		t.Fatal("expected error")
	} else if !strings.Contains(err.Error(), "escapes the destination") {
		t.Fatal(err)
	}
	// Nothing was written, not even the destination folder.
	if _, err := os.Stat(dest); err == nil {
		t.Fatal("destination was created")
	}
}

func TestExtract_CorruptEntry(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// One good entry plus one whose checksum can never match, so the
	// archive opens fine but extraction fails partway through.
	b := &bytes.Buffer{}
	zw := zip.NewWriter(b)
	w, err := zw.Create("index.html")
	if err != nil {
		t.Fatal(err)
	}
	if _, err = w.Write([]byte("<html></html>")); err != nil {
		t.Fatal(err)
	}
	raw, err := zw.CreateRaw(&zip.FileHeader{
		Name:               "api/classes.html",
		Method:             zip.Store,
		CRC32:              0xdeadbeef,
		CompressedSize64:   7,
		UncompressedSize64: 7,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = raw.Write([]byte("classes")); err != nil {
		t.Fatal(err)
	}
	if err = zw.Close(); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, "docs.zip")
	if err = os.WriteFile(p, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "5.0.1")
	if err = Extract(context.Background(), p, dest); err == nil {
		t.Fatal("expected error")
	} else if !strings.Contains(err.Error(), "api/classes.html") {
		t.Fatal(err)
	}
	// The failed extraction must not leave a partial version folder.
	if _, err = os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("partial destination left behind: %v", err)
	}
	// Nor a stray staging directory next to it.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "docs.zip" {
		t.Fatalf("unexpected leftovers: %v", entries)
	}
}

func TestExtract_ReplacesExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dest := filepath.Join(dir, "5.0.1")
	if err := os.MkdirAll(filepath.Join(dest, "api"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dest, "stale.html"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, "docs.zip")
	if err := os.WriteFile(p, makeZip(t, map[string]string{"index.html": "new"}), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Extract(context.Background(), p, dest); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dest, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Fatalf("got %q", got)
	}
	if _, err = os.Stat(filepath.Join(dest, "stale.html")); !os.IsNotExist(err) {
		t.Fatalf("stale file survived the swap: %v", err)
	}
}

func TestExtract_BadArchive(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	p := filepath.Join(dir, "docs.zip")
	if err := os.WriteFile(p, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Extract(context.Background(), p, filepath.Join(dir, "out")); err == nil {
		t.Fatal("expected error")
	}
}
