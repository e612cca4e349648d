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

package scm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// PublishOptions controls Publish.
type PublishOptions struct {
	// Branch is the remote branch to push to, e.g. "gh_pages".
	Branch string
	// Paths are the paths to stage, relative to the checkout root.
	Paths []string
	// Message is the commit message.
	Message string
	// Remote defaults to "origin".
	Remote string
	// Force overwrites the remote branch history.
	Force bool
	// DryRun stops after reporting what would be committed.
	DryRun bool
}

// Publish stages the given paths, commits them and pushes HEAD to the
// remote branch. With DryRun it only reports the pending changes.
//
// Unlike the read-only queries in Open, publishing runs git with the
// user's full configuration; pushing typically needs url rewrites or
// credential helpers from it, and committing needs an identity.
func (c *Checkout) Publish(ctx context.Context, o *PublishOptions) (string, error) {
	if o.Branch == "" {
		return "", fmt.Errorf("branch is required")
	}
	remote := o.Remote
	if remote == "" {
		remote = "origin"
	}
	env := os.Environ()
	args := append([]string{"add", "--"}, o.Paths...)
	if out, err := gitCommand(ctx, c.root, env, args...); err != nil {
		return "", fmt.Errorf("git add: %s", strings.TrimSpace(out))
	}
	args = append([]string{"status", "--porcelain", "--untracked-files=no", "--"}, o.Paths...)
	status, err := gitCommand(ctx, c.root, env, args...)
	if err != nil {
		return "", fmt.Errorf("git status: %s", strings.TrimSpace(status))
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return "", ErrNothingToPublish
	}
	if o.DryRun {
		return status, nil
	}
	if out, err := gitCommand(ctx, c.root, env, "commit", "-m", o.Message); err != nil {
		return status, fmt.Errorf("git commit: %s", strings.TrimSpace(out))
	}
	args = []string{"push", remote, "HEAD:refs/heads/" + o.Branch}
	if o.Force {
		args = append(args, "--force")
	}
	if out, err := gitCommand(ctx, c.root, env, args...); err != nil {
		// Push conflicts surface git's own message; retrying is the
		// surrounding CI's job.
		return status, fmt.Errorf("git push: %s", strings.TrimSpace(out))
	}
	return status, nil
}
