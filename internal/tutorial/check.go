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
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/sync/errgroup"

	"github.com/docpub-project/docpub/internal/site"
)

// Options is the set of options for Run.
type Options struct {
	// Site is the documentation site checkout to validate.
	Site *site.Site
	// Report gets the findings as they are emitted.
	Report Report
}

// Run runs all tutorial checks and returns ErrCheckFailed if at least
// one emitted an error-level finding.
func Run(ctx context.Context, o *Options) error {
	pages, err := Load(o.Site)
	if err != nil {
		return err
	}
	versions, err := o.Site.Discover()
	if err != nil {
		return err
	}
	retained := make(map[string]struct{}, len(versions))
	for _, v := range versions {
		retained[v] = struct{}{}
	}
	checks := []struct {
		name string
		fn   func(ctx context.Context, c *checkState) error
	}{
		{"frontmatter", checkFrontMatter},
		{"markdown", checkMarkdown},
		{"version-links", checkVersionLinks},
		{"permalinks", checkPermalinks},
	}
	states := make([]*checkState, len(checks))
	eg, ctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		check := check
		c := &checkState{
			name:     check.name,
			root:     o.Site.Root,
			pages:    pages,
			retained: retained,
			r:        o.Report,
		}
		states[i] = c
		eg.Go(func() error {
			start := time.Now()
			err := check.fn(ctx, c)
			o.Report.CheckCompleted(ctx, c.name, time.Since(start), c.highest(), err)
			return err
		})
	}
	if err = eg.Wait(); err != nil {
		return err
	}
	for _, c := range states {
		if c.highest() == Error {
			return ErrCheckFailed
		}
	}
	return nil
}

// checkState is the state of one check while it runs.
type checkState struct {
	name     string
	root     string
	pages    []*Page
	retained map[string]struct{}
	r        Report

	mu  sync.Mutex
	max Level
}

// emit forwards a finding to the report and records the highest level
// seen.
func (c *checkState) emit(ctx context.Context, level Level, message, file string, s Span) error {
	c.mu.Lock()
	if levelRank(level) > levelRank(c.max) {
		c.max = level
	}
	c.mu.Unlock()
	return c.r.EmitFinding(ctx, c.name, level, message, c.root, file, s)
}

func (c *checkState) highest() Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.max
}

func levelRank(l Level) int {
	switch l {
	case Warning:
		return 1
	case Error:
		return 2
	default:
		return 0
	}
}

// checkFrontMatter verifies every page carries a parsable YAML header
// with a non-empty title; Jekyll silently skips pages without one.
func checkFrontMatter(ctx context.Context, c *checkState) error {
	for _, p := range c.pages {
		if p.ParseErr != nil {
			if err := c.emit(ctx, Error, fmt.Sprintf("frontmatter does not parse: %s", p.ParseErr), p.Path, Span{}); err != nil {
				return err
			}
			continue
		}
		if strings.TrimSpace(p.Meta.Title) == "" {
			if err := c.emit(ctx, Error, "missing title in frontmatter", p.Path, Span{Start: Cursor{Line: 1}}); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkMarkdown renders every page body to catch malformed markdown.
func checkMarkdown(ctx context.Context, c *checkState) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	for _, p := range c.pages {
		b := buffers.get()
		err := md.Convert(p.Body, b)
		buffers.push(b)
		if err != nil {
			if err = c.emit(ctx, Error, fmt.Sprintf("markdown does not render: %s", err), p.Path, Span{}); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkVersionLinks flags links into doc version folders that are no
// longer retained, the usual breakage after a prune.
func checkVersionLinks(ctx context.Context, c *checkState) error {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	for _, p := range c.pages {
		doc := md.Parser().Parse(text.NewReader(p.Body))
		var emitErr error
		walkErr := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering {
				return ast.WalkContinue, nil
			}
			var dest string
			switch v := n.(type) {
			case *ast.Link:
				dest = string(v.Destination)
			case *ast.Image:
				dest = string(v.Destination)
			default:
				return ast.WalkContinue, nil
			}
			if v := missingVersion(dest, c.retained); v != "" {
				msg := fmt.Sprintf("links to doc version %s, which is not retained", v)
				if emitErr = c.emit(ctx, Warning, msg, p.Path, Span{}); emitErr != nil {
					return ast.WalkStop, emitErr
				}
			}
			return ast.WalkContinue, nil
		})
		if emitErr != nil {
			return emitErr
		}
		if walkErr != nil {
			return walkErr
		}
	}
	return nil
}

// missingVersion returns the version folder a relative link points at
// when that version is not retained, else "".
func missingVersion(dest string, retained map[string]struct{}) string {
	// External links are out of scope; they may point at archived docs.
	if strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return ""
	}
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	for _, seg := range strings.Split(dest, "/") {
		name := strings.TrimPrefix(seg, "_")
		if site.IsVersion(name) {
			if _, ok := retained[name]; !ok {
				return name
			}
		}
	}
	return ""
}

// checkPermalinks flags pages of one version sharing a permalink; Jekyll
// would let the last one win.
func checkPermalinks(ctx context.Context, c *checkState) error {
	seen := map[string]string{}
	for _, p := range c.pages {
		if p.Meta.Permalink == "" {
			continue
		}
		key := p.Version + " " + p.Meta.Permalink
		if first, ok := seen[key]; ok {
			msg := fmt.Sprintf("permalink %s already used by %s", p.Meta.Permalink, first)
			if err := c.emit(ctx, Error, msg, p.Path, Span{}); err != nil {
				return err
			}
			continue
		}
		seen[key] = p.Path
	}
	return nil
}
