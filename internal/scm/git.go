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

// Package scm wraps the git operations docpub needs: resolving the site
// checkout and publishing the generated tree to the pages branch.
package scm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNothingToPublish is returned by Publish when the staged paths carry
// no changes. CI treats this as success; interactive users want to know.
var ErrNothingToPublish = errors.New("nothing to publish")

// Checkout represents the git checkout holding the documentation site.
type Checkout struct {
	// head is the hex encoded commit digest.
	head string
	root string
	env  []string
	err  error
}

// Open resolves the git checkout containing dir.
func Open(ctx context.Context, dir string) (*Checkout, error) {
	c := &Checkout{root: dir}
	c.root = c.run(ctx, "rev-parse", "--show-toplevel")
	c.head = c.run(ctx, "rev-parse", "HEAD")
	if c.err != nil {
		return nil, c.err
	}
	return c, nil
}

// Root is the top level directory of the checkout.
func (c *Checkout) Root() string {
	return c.root
}

// HEAD returns the current commit hash.
func (c *Checkout) HEAD() string {
	return c.head
}

// run runs a git command in the checkout, accumulating the first error.
func (c *Checkout) run(ctx context.Context, args ...string) string {
	if c.err != nil {
		return ""
	}
	if c.env == nil {
		// First is for git version before 2.32, the rest are to skip the
		// user and system config.
		c.env = append(os.Environ(), "GIT_CONFIG_NOGLOBAL=true", "GIT_CONFIG_GLOBAL=", "GIT_CONFIG_SYSTEM=")
	}
	out, err := gitCommand(ctx, c.root, c.env, args...)
	if err != nil {
		c.err = fmt.Errorf("error running git %s: %s", strings.Join(args, " "), out)
	}
	return strings.TrimSpace(out)
}

// gitReal runs git and returns its combined output.
func gitReal(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Overridden in unit testing.
var gitCommand = gitReal
