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

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/docpub-project/docpub/internal/scm"
)

type publishCmd struct {
	commandBase
	message string
	remote  string
	force   bool
	dryRun  bool
}

func (*publishCmd) Name() string {
	return "publish"
}

func (*publishCmd) Description() string {
	return "Commit the docs tree and push it to the pages branch."
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	f.StringVarP(&c.message, "message", "m", "", "commit message, defaults to the list of published versions")
	f.StringVar(&c.remote, "remote", "origin", "git remote to push to")
	f.BoolVar(&c.force, "force", false, "force push, replacing the branch history")
	f.BoolVar(&c.dryRun, "dry-run", false, "show what would be committed without pushing")
}

func (c *publishCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	s, err := c.site()
	if err != nil {
		return err
	}
	versions, err := s.Discover()
	if err != nil {
		return err
	}
	msg := c.message
	if msg == "" {
		msg = "Publish docs: " + strings.Join(versions, ", ")
	}
	co, err := scm.Open(ctx, s.Root)
	if err != nil {
		return err
	}
	status, err := co.Publish(ctx, &scm.PublishOptions{
		Branch:  s.Config.Branch,
		Paths:   []string{s.Config.DocsDir},
		Message: msg,
		Remote:  c.remote,
		Force:   c.force,
		DryRun:  c.dryRun,
	})
	if errors.Is(err, scm.ErrNothingToPublish) {
		fmt.Fprintf(stdout, "nothing to publish\n")
		return nil
	}
	if err != nil {
		return err
	}
	if c.dryRun {
		fmt.Fprintf(stdout, "would publish to %s:\n%s\n", s.Config.Branch, status)
		return nil
	}
	fmt.Fprintf(stdout, "published to %s\n", s.Config.Branch)
	return nil
}
