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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Extract unpacks the archive at zipPath into dest, replacing any
// existing tree at dest.
//
// Entry names must stay local to dest; an archive trying to escape it is
// rejected as a whole before anything is written. The archive is
// unpacked into a temporary sibling directory and renamed into place
// only once every file extracted, so a malformed archive never leaves a
// partial version folder behind and never destroys the tree it
// replaces. File contents are written in parallel since doc trees are
// thousands of small HTML files.
func Extract(ctx context.Context, zipPath, dest string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()
	for _, f := range zr.File {
		if !filepath.IsLocal(filepath.FromSlash(f.Name)) {
			return fmt.Errorf("archive entry %q escapes the destination", f.Name)
		}
	}
	if err = os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	tmp, err := os.MkdirTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)
	// Directories first, serially, so the parallel file writes never race
	// on MkdirAll.
	for _, f := range zr.File {
		p := filepath.Join(tmp, filepath.FromSlash(f.Name))
		if f.Mode().IsDir() {
			if err = os.MkdirAll(p, 0o755); err != nil {
				return err
			}
		} else if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
	}
	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(extractConcurrency)
	for _, f := range zr.File {
		if f.Mode().IsDir() {
			continue
		}
		f := f
		eg.Go(func() error {
			return extractFile(f, filepath.Join(tmp, filepath.FromSlash(f.Name)))
		})
	}
	if err = eg.Wait(); err != nil {
		return err
	}
	if err = os.RemoveAll(dest); err != nil {
		return err
	}
	return os.Rename(tmp, dest)
}

func extractFile(f *zip.File, p string) error {
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	defer src.Close()
	dst, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	return dst.Close()
}

// Overridden in unit testing.
var extractConcurrency = 8
